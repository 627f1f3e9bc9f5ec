package contact

import "errors"

var (
	// ErrFormNotFound is returned when the page has no #contact-form.
	ErrFormNotFound = errors.New("contact form not found")

	// ErrUnknownField is returned for ids that have no validation rule.
	ErrUnknownField = errors.New("unknown contact field")
)
