package models

import "errors"

var (
	// ErrInvalidRequest indicates a request map missing or mistyping a
	// required field. Surfaced to API callers as a 400.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingKey indicates a derived row without its (date, brand) key,
	// which means a loader or builder broke its contract. Not user-recoverable.
	ErrMissingKey = errors.New("missing date/brand key")
)
