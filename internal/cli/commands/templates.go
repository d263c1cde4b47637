package commands

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var templateFS embed.FS

// installTemplate materializes an embedded project template under targetDir
// and returns the relative paths of the files it walked, for display. Files
// that already exist are left alone unless force is set. Dotfiles are stored
// without the leading dot so the embedder picks them up; see dotfileName.
func installTemplate(templateName, targetDir string, force bool) ([]string, error) {
	root := path.Join("templates", templateName)

	var installed []string
	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, root+"/")
		if p == root {
			return nil
		}

		target := filepath.Join(targetDir, filepath.FromSlash(dotfileName(rel)))

		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}

		installed = append(installed, dotfileName(rel))

		if !force {
			if _, err := os.Stat(target); err == nil {
				return nil
			}
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, content, 0o600)
	})
	if err != nil {
		return nil, err
	}
	return installed, nil
}

// dotfileName restores the leading dot on files stored undotted in the
// template tree ("gitignore" becomes ".gitignore").
func dotfileName(rel string) string {
	dir, base := path.Split(rel)
	switch base {
	case "gitignore":
		return dir + ".gitignore"
	default:
		return rel
	}
}
