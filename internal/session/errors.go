package session

import "errors"

// Domain errors for the session package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, session.ErrTokenInvalid) {
//	    // treat as locked
//	}
var (
	// ErrTokenInvalid is returned when a session token fails signature,
	// expiry, or structural validation.
	ErrTokenInvalid = errors.New("session: invalid token")

	// ErrInvalidPINHash is returned when the configured PIN hash cannot be
	// parsed as an argon2id PHC string.
	ErrInvalidPINHash = errors.New("session: invalid pin hash")
)
