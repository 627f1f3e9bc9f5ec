package dom

import "errors"

var (
	// ErrParse is returned when the input cannot be parsed as HTML.
	ErrParse = errors.New("failed to parse HTML document")

	// ErrInvalidSelector is returned when a CSS selector cannot be compiled.
	ErrInvalidSelector = errors.New("invalid CSS selector")
)
