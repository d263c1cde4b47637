// Package vcs queries the version-control tool for a revision identifier
// used to stamp compiled documents.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Status identifies the revision a compiled document was built from.
type Status struct {
	Commit string
	Dirty  bool
}

// String renders the revision stamp, marking uncommitted changes.
func (s Status) String() string {
	if s.Dirty {
		return s.Commit + " (dirty)"
	}
	return s.Commit
}

// Describe queries git for the current revision of dir. An error means no
// usable repository; callers degrade by omitting the revision stamp rather
// than failing.
func Describe(ctx context.Context, dir string) (Status, error) {
	commit, err := run(ctx, dir, "rev-parse", "@")
	if err != nil {
		return Status{}, err
	}
	porcelain, err := run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return Status{}, err
	}
	return Status{
		Commit: strings.TrimSpace(commit),
		Dirty:  strings.TrimSpace(porcelain) != "",
	}, nil
}

func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}
