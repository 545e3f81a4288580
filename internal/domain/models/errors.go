package models

import "errors"

// Error kinds shared by the generator, the graph state machine and the HTTP layer.
// Callers wrap them with context via fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	// ErrInvalidArgument reports a bad symbol, visualization type or request field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrGenerationFailure reports an unexpected fault while building a series.
	ErrGenerationFailure = errors.New("generation failure")

	// ErrNotFound reports a missing watchlist entry or graph session.
	ErrNotFound = errors.New("not found")
)
