// Package source resolves a template source reference — a local
// directory, a local git checkout, or a remote git URL — into a
// concrete on-disk location and serves file contents from it, falling
// back to a bundled default when the file is absent.
package source

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the classification of a source reference.
type Kind int

const (
	KindUnknown Kind = iota
	KindLocalDirectory
	KindGitRepository
)

func (k Kind) String() string {
	switch k {
	case KindLocalDirectory:
		return "local directory"
	case KindGitRepository:
		return "git repository"
	default:
		return "unknown"
	}
}

// gitHosts is the allow-list of remote git hosting domains.
var gitHosts = []string{"github.com", "gitlab.com", "bitbucket.org"}

// Classify determines what kind of source the given reference is.
// Checks run in strict order and the first match wins: an existing
// directory is always a local directory, even when it contains a .git
// entry. The result depends only on the reference string and the
// filesystem state at call time; callers cache it for the lifetime of
// a ContentReader.
func Classify(src string) Kind {
	if isLocalDirectory(src) {
		return KindLocalDirectory
	}
	if isGitRepository(src) {
		return KindGitRepository
	}
	return KindUnknown
}

// isLocalDirectory reports whether src is an existing directory.
func isLocalDirectory(src string) bool {
	info, err := os.Stat(src)
	return err == nil && info.IsDir()
}

// isGitRepository reports whether src is a remote git URL on an
// allow-listed host, or a local path containing a .git entry.
func isGitRepository(src string) bool {
	if u, err := url.Parse(src); err == nil && isGitURL(u) {
		return true
	}

	if _, err := os.Stat(src); err != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(src, ".git"))
	return err == nil
}

// isGitURL reports whether u qualifies as a remote git repository
// reference: https scheme, allow-listed host, and a path that ends in
// .git or has at least one segment beyond the host. The path rule is
// deliberately permissive; tightening it is a product decision, not an
// implementation one.
func isGitURL(u *url.URL) bool {
	if u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	allowed := false
	for _, h := range gitHosts {
		if host == h {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	return strings.HasSuffix(u.Path, ".git") || strings.Contains(u.Path, "/")
}
