package analyzer

import "errors"

var (
	// ErrSyntax is returned when the source cannot be parsed as JavaScript/JSX
	ErrSyntax = errors.New("javascript syntax error")
	// ErrSourceTooLarge is returned when the source exceeds the configured size limit
	ErrSourceTooLarge = errors.New("source too large")
	// ErrInvalidContent is returned when the source is not valid UTF-8
	ErrInvalidContent = errors.New("source is not valid UTF-8")
)
