// Package scaffold writes template files into a target project
// directory, pulling each file's contents through a source content
// reader.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// GitignoreFile is merged into an existing file instead of being
// overwritten.
const GitignoreFile = ".gitignore"

// FileReader serves template file contents by name. source.ContentReader
// satisfies it.
type FileReader interface {
	ReadFile(name string) (string, error)
}

// Result reports what a scaffold run did.
type Result struct {
	Written []string
	Skipped []string
}

// Run scaffolds the named files into dir. Existing files are skipped
// unless listed in overwrite; .gitignore is always merged, appending
// template entries the existing file lacks. Template contents come
// from r, which already handles the bundled-default fallback.
func Run(dir string, files []string, overwrite map[string]bool, r FileReader) (*Result, error) {
	res := &Result{}

	for _, name := range files {
		contents, err := r.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}

		if name == GitignoreFile {
			added, err := mergeGitignore(dir, contents)
			if err != nil {
				return nil, err
			}
			if len(added) > 0 {
				res.Written = append(res.Written, name)
			} else {
				res.Skipped = append(res.Skipped, name)
			}
			continue
		}

		dest := filepath.Join(dir, name)
		if _, err := os.Stat(dest); err == nil && !overwrite[name] {
			res.Skipped = append(res.Skipped, name)
			continue
		}

		if err := os.WriteFile(dest, []byte(contents), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dest, err)
		}
		res.Written = append(res.Written, name)
	}

	return res, nil
}

// Existing returns which of the named files already exist in dir.
// .gitignore is excluded since it is merged, never clobbered.
func Existing(dir string, files []string) []string {
	var existing []string
	for _, name := range files {
		if name == GitignoreFile {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			existing = append(existing, name)
		}
	}
	return existing
}
