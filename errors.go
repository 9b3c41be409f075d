package validate

import "errors"

var (
	// ErrInvalidMessageCatalog is returned when a message catalog document
	// cannot be parsed or maps a rule to a non-string template.
	ErrInvalidMessageCatalog = errors.New("invalid message catalog")

	// ErrMalformedForm is returned when submitted form data cannot be parsed
	// into a field map.
	ErrMalformedForm = errors.New("malformed form data")
)
