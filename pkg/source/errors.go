package source

import "errors"

var (
	// ErrSourceUnavailable indicates a remote repository could not be
	// cloned. Construction fails entirely; no reader is returned.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrReadFailure indicates a file that exists at the resolved
	// location could not be read. It is never masked by the bundle
	// fallback, which applies only to files that do not exist.
	ErrReadFailure = errors.New("read failure")

	// ErrFileNotFound indicates the requested filename is absent from
	// both the resolved location and the default bundle. The reader
	// remains usable for other filenames.
	ErrFileNotFound = errors.New("file not found")
)
