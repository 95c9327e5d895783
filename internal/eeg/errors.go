package eeg

import "errors"

// Domain errors for the eeg package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, eeg.ErrNotConfigured) {
//	    // server misconfiguration, not a transient failure
//	}
var (
	// ErrNotConfigured is returned when a command is attempted without a
	// vendor API key. This is a fatal server misconfiguration, surfaced
	// distinctly from transient request failures.
	ErrNotConfigured = errors.New("eeg: api key not configured")

	// ErrInvalidAction is returned when a command action is neither start
	// nor stop. This is a caller programming error and is never retried.
	ErrInvalidAction = errors.New("eeg: invalid action")
)
