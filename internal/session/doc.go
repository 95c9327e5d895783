// Package session implements the PIN gate protecting every Lexi Control
// operation.
//
// The model is deliberately simple: one shared PIN, one session cookie, no
// per-user identity. A correct PIN yields a short-lived signed token carried
// in an HttpOnly cookie; locking overwrites the cookie. Possession of a
// token that validates against the configured secret is the only
// authorisation signal.
//
// # Key Operations
//
//   - Gate.CheckPIN: constant-time comparison against the configured PIN,
//     or argon2id verification when only a hash is configured
//   - Gate.IssueToken / Gate.Authorized: HS256 JWT issue and validation
//   - Gate.UnlockCookie / Gate.LockCookie: the two cookie transitions
//
// Authorisation failure is a normal branch, not an error: callers short-
// circuit to the lock screen (pages) or a structured "locked" response
// (JSON) before any vendor call is made.
package session
