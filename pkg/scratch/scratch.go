package scratch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is an exclusively owned temporary directory. It exists so that a
// clone destination has a single cleanup path: whoever holds the Dir
// calls Remove exactly once when done, whether or not anything was ever
// written into it.
type Dir struct {
	root string
}

// New creates a fresh temporary directory under the system temp root.
func New(pattern string) (*Dir, error) {
	root, err := os.MkdirTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("creating temporary directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Root returns the absolute path of the directory.
func (d *Dir) Root() string {
	return d.root
}

// Path returns the absolute path for the given segments joined under
// the directory root. Does not create or verify the path.
func (d *Dir) Path(segments ...string) string {
	return filepath.Join(append([]string{d.root}, segments...)...)
}

// Exists reports whether the path at the given segments exists.
func (d *Dir) Exists(segments ...string) (bool, error) {
	_, err := os.Stat(d.Path(segments...))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove deletes the directory and everything under it. Safe to call
// more than once.
func (d *Dir) Remove() error {
	return os.RemoveAll(d.root)
}
