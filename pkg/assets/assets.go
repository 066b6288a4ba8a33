// Package assets carries the default template set shipped with rfe.
// The templates are embedded at build time and served as a read-only
// fallback when a template source does not provide a requested file.
package assets

import (
	"embed"
	"io/fs"
)

// The all: prefix is required so dotfiles (.envrc, .gitignore) are
// included in the embedded tree.
//
//go:embed all:templates
var templates embed.FS

// Bundle is a read-only set of named file contents. The zero value is
// an empty bundle.
type Bundle struct {
	fsys fs.FS
}

// Default returns the bundle of templates embedded in the binary.
func Default() Bundle {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		// The embedded tree is fixed at build time; a missing
		// templates directory is a packaging bug.
		panic(err)
	}
	return Bundle{fsys: sub}
}

// New returns a bundle backed by an arbitrary filesystem. Tests use
// this to inject fake bundles.
func New(fsys fs.FS) Bundle {
	return Bundle{fsys: fsys}
}

// ReadFile returns the contents of the named file and whether the
// bundle contains it.
func (b Bundle) ReadFile(name string) (string, bool) {
	if b.fsys == nil {
		return "", false
	}
	data, err := fs.ReadFile(b.fsys, name)
	if err != nil {
		return "", false
	}
	return string(data), true
}
