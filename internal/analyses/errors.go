package analyses

import "errors"

var (
	// ErrNotFound is returned when an analysis does not exist for the caller.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidInput is returned for missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStorageUnavailable is returned when the object store cannot accept or
	// serve the uploaded document. Scoring itself never errors; this is the one
	// failure kind that propagates to the caller.
	ErrStorageUnavailable = errors.New("document storage unavailable")
)
