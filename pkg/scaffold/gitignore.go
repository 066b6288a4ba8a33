package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// mergeGitignore ensures every entry of the template appears in the
// .gitignore within dir. A missing file is created with the template
// verbatim; otherwise only absent entries are appended. Returns the
// entries that were actually added.
func mergeGitignore(dir, template string) ([]string, error) {
	path := filepath.Join(dir, GitignoreFile)

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		return gitignoreEntries(template), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var toAdd []string
	for _, entry := range gitignoreEntries(template) {
		if !present[entry] {
			toAdd = append(toAdd, entry)
		}
	}

	if len(toAdd) == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// Start on a new line if the file doesn't end with one.
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			return nil, err
		}
	}

	for _, entry := range toAdd {
		if _, err := f.WriteString(entry + "\n"); err != nil {
			return nil, fmt.Errorf("appending to %s: %w", path, err)
		}
	}

	return toAdd, nil
}

// gitignoreEntries extracts the ignore patterns from a template,
// dropping blank lines and comments.
func gitignoreEntries(template string) []string {
	var entries []string
	for _, line := range strings.Split(template, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
