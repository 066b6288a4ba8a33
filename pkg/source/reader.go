package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/mrityunjaygr8/rfe/pkg/scratch"
)

// Bundle is the read-only fallback asset set consulted when a file is
// absent from the resolved location. assets.Bundle satisfies it; tests
// inject fakes.
type Bundle interface {
	ReadFile(name string) (string, bool)
}

// ContentReader serves file contents from a resolved source location,
// falling back to a bundle of defaults. Resolution happens once at
// construction: a remote git source is cloned eagerly, so every
// subsequent ReadFile is a plain filesystem lookup. Callers own the
// reader and must Close it to release the clone directory.
type ContentReader struct {
	source   string
	kind     Kind
	location string
	tmp      *scratch.Dir
	bundle   Bundle
}

// NewContentReader classifies src and materializes it. A remote git
// URL is cloned into a fresh scratch directory; a clone failure aborts
// construction with ErrSourceUnavailable and leaves nothing on disk.
// An unclassifiable src never fails here — reads fall back to the
// bundle and error per-call instead.
func NewContentReader(ctx context.Context, src string, bundle Bundle) (*ContentReader, error) {
	kind := Classify(src)

	location, tmp, err := resolve(ctx, src, kind)
	if err != nil {
		return nil, err
	}

	return &ContentReader{
		source:   src,
		kind:     kind,
		location: location,
		tmp:      tmp,
		bundle:   bundle,
	}, nil
}

// Kind returns the classification determined at construction.
func (r *ContentReader) Kind() Kind {
	return r.kind
}

// Location returns the resolved filesystem location and whether one
// exists. Unknown sources have no location.
func (r *ContentReader) Location() (string, bool) {
	return r.location, r.location != ""
}

// ReadFile returns the contents of filename, preferring the resolved
// location over the bundle. A file missing from the location falls
// through to the bundle; a file missing from both is ErrFileNotFound.
// Contents are re-read on every call.
func (r *ContentReader) ReadFile(filename string) (string, error) {
	if r.location != "" {
		path := filepath.Join(r.location, filename)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return string(data), nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("reading %s: %w: %w", path, ErrReadFailure, err)
		}
	}

	if r.bundle != nil {
		if body, ok := r.bundle.ReadFile(filename); ok {
			return body, nil
		}
	}

	return "", fmt.Errorf("%q: %w", filename, ErrFileNotFound)
}

// Close removes the scratch clone directory, if any. Safe to call more
// than once.
func (r *ContentReader) Close() error {
	if r.tmp == nil {
		return nil
	}
	return r.tmp.Remove()
}

// resolve materializes a classified source into a filesystem location.
// For git sources the scratch directory is allocated before deciding
// whether a clone is needed, so ownership and cleanup are identical on
// both branches.
func resolve(ctx context.Context, src string, kind Kind) (string, *scratch.Dir, error) {
	switch kind {
	case KindLocalDirectory:
		return src, nil, nil

	case KindGitRepository:
		tmp, err := scratch.New("rfe-src-")
		if err != nil {
			return "", nil, err
		}

		// A local checkout is used in place; the scratch dir stays
		// empty but is still owned and removed at Close.
		if isLocalDirectory(src) {
			return src, tmp, nil
		}

		if _, err := git.PlainCloneContext(ctx, tmp.Root(), false, &git.CloneOptions{URL: src}); err != nil {
			tmp.Remove()
			return "", nil, fmt.Errorf("cloning %s: %w: %w", src, ErrSourceUnavailable, err)
		}
		return tmp.Root(), tmp, nil

	default:
		return "", nil, nil
	}
}
