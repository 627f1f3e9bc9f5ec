package pages

import "errors"

var (
	// ErrPageNotFound is returned when no <name>.html exists.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidName is returned for names that are not a single path element.
	ErrInvalidName = errors.New("invalid page name")

	// ErrWatch is returned when the file watcher cannot be started.
	ErrWatch = errors.New("failed to watch pages")
)
