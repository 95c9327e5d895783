package session

import (
	"net/http"
	"time"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

// CookieName is the session cookie carried by the browser after a
// successful PIN entry.
const CookieName = "lexi_session"

// defaultSessionTTL bounds token lifetime when no TTL is configured.
const defaultSessionTTL = 12 * time.Hour

// Gate performs PIN checks and session token validation.
//
// A Gate is stateless: there is no server-side session store. All state
// lives in the signed token held by the client.
type Gate struct {
	pin     string
	pinHash string
	secret  string
	ttl     time.Duration
}

// NewGate creates a Gate from the security configuration.
func NewGate(cfg config.SecurityConfig) *Gate {
	ttl := time.Duration(cfg.JWT.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Gate{
		pin:     cfg.PIN,
		pinHash: cfg.PINHash,
		secret:  cfg.JWT.Secret,
		ttl:     ttl,
	}
}

// CheckPIN compares a user-submitted PIN against the configured secret.
//
// When a PIN hash is configured it takes precedence over the plaintext PIN.
// Comparison is constant-time in both forms.
func (g *Gate) CheckPIN(submitted string) bool {
	if g.pinHash != "" {
		ok, err := verifyPINHash(submitted, g.pinHash)
		if err != nil {
			return false
		}
		return ok
	}
	if g.pin == "" {
		return false
	}
	return constantTimeEqual(submitted, g.pin)
}

// Authorized reports whether the request carries a valid session token.
//
// A missing cookie, an empty value (the locked state), or a token that fails
// validation all report false. This is a normal branch, never an error.
func (g *Gate) Authorized(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = g.parseToken(cookie.Value)
	return err == nil
}

// UnlockCookie builds the cookie set after a successful PIN entry.
//
// HttpOnly and SameSite=Lax match the original deployment; no Max-Age is set
// so the cookie lives until the browser discards it, while the token inside
// carries its own expiry.
func (g *Gate) UnlockCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// LockCookie builds the cookie that clears the session on explicit lock.
func (g *Gate) LockCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
