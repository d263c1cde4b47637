package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay coalesces the burst of events an editor save produces
// into a single reformat.
const debounceDelay = 200 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reformat manuscript files as they change",
		Long: `Watch the source directory and reformat any .txt file that changes.

Formatting is idempotent and skips the write when a file is already
formatted, so the watcher does not react to its own output. Stop with
Ctrl-C.`,
		Example: `  # Keep the manuscript formatted while writing
  prosekit watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd)
		},
	}

	return cmd
}

func runWatch(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cfg.SourceDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.SourceDir, err)
	}

	cmdCtx.Renderer.Printf("Watching %s\n", cfg.SourceDir)

	var mu sync.Mutex
	pending := make(map[string]*time.Timer)
	ctx := cmd.Context()

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, timer := range pending {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := event.Name
			if !strings.EqualFold(filepath.Ext(path), ".txt") {
				continue
			}

			mu.Lock()
			if timer, exists := pending[path]; exists {
				timer.Stop()
			}
			pending[path] = time.AfterFunc(debounceDelay, func() {
				mu.Lock()
				delete(pending, path)
				mu.Unlock()

				changed, err := formatFile(cfg, path, false)
				switch {
				case err != nil:
					logger.Error("format failed", "path", path, "error", err)
					cmdCtx.Renderer.Error(fmt.Sprintf("%s: %v", path, err))
				case changed:
					logger.Info("reformatted", "path", path)
					cmdCtx.Renderer.StatusLine(path, "reformatted")
				default:
					logger.Debug("unchanged", "path", path)
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", err)
		}
	}
}
