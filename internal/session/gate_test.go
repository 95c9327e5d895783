package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

const testSecret = "test-secret-key-for-session-tokens!!"

func testGate(t *testing.T) *Gate {
	t.Helper()
	return NewGate(config.SecurityConfig{
		PIN: "2065",
		JWT: config.JWTConfig{
			Secret:          testSecret,
			SessionTTLHours: 1,
		},
	})
}

func TestCheckPIN(t *testing.T) {
	gate := testGate(t)

	if !gate.CheckPIN("2065") {
		t.Error("CheckPIN() = false for correct PIN")
	}
	if gate.CheckPIN("0000") {
		t.Error("CheckPIN() = true for wrong PIN")
	}
	if gate.CheckPIN("") {
		t.Error("CheckPIN() = true for empty PIN")
	}
	if gate.CheckPIN("20650") {
		t.Error("CheckPIN() = true for PIN with trailing characters")
	}
}

func TestCheckPIN_NoneConfigured(t *testing.T) {
	gate := NewGate(config.SecurityConfig{
		JWT: config.JWTConfig{Secret: testSecret},
	})

	// No PIN and no hash must never authorise, not even an empty submission.
	if gate.CheckPIN("") {
		t.Error("CheckPIN(\"\") = true with no PIN configured")
	}
}

func TestCheckPIN_Hashed(t *testing.T) {
	hash, err := HashPIN("2065")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	gate := NewGate(config.SecurityConfig{
		PINHash: hash,
		JWT:     config.JWTConfig{Secret: testSecret},
	})

	if !gate.CheckPIN("2065") {
		t.Error("CheckPIN() = false for correct PIN against hash")
	}
	if gate.CheckPIN("2064") {
		t.Error("CheckPIN() = true for wrong PIN against hash")
	}
}

func TestCheckPIN_HashTakesPrecedence(t *testing.T) {
	hash, err := HashPIN("1111")
	if err != nil {
		t.Fatalf("HashPIN() error = %v", err)
	}

	gate := NewGate(config.SecurityConfig{
		PIN:     "2065",
		PINHash: hash,
		JWT:     config.JWTConfig{Secret: testSecret},
	})

	if gate.CheckPIN("2065") {
		t.Error("CheckPIN() should ignore plaintext PIN when hash is set")
	}
	if !gate.CheckPIN("1111") {
		t.Error("CheckPIN() = false for PIN matching configured hash")
	}
}

func TestCheckPIN_MalformedHash(t *testing.T) {
	gate := NewGate(config.SecurityConfig{
		PINHash: "$argon2id$bogus",
		JWT:     config.JWTConfig{Secret: testSecret},
	})

	if gate.CheckPIN("2065") {
		t.Error("CheckPIN() = true with malformed hash")
	}
}

func TestAuthorized_ValidToken(t *testing.T) {
	gate := testGate(t)

	token, err := gate.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(gate.UnlockCookie(token))

	if !gate.Authorized(r) {
		t.Error("Authorized() = false for valid session cookie")
	}
}

func TestAuthorized_NoCookie(t *testing.T) {
	gate := testGate(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if gate.Authorized(r) {
		t.Error("Authorized() = true with no cookie")
	}
}

func TestAuthorized_EmptyCookie(t *testing.T) {
	gate := testGate(t)

	// The locked state: cookie present but overwritten with an empty value.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: ""})

	if gate.Authorized(r) {
		t.Error("Authorized() = true with empty cookie value")
	}
}

func TestAuthorized_GarbageToken(t *testing.T) {
	gate := testGate(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "yes"})

	if gate.Authorized(r) {
		t.Error("Authorized() = true for unsigned literal value")
	}
}

func TestAuthorized_WrongSecret(t *testing.T) {
	gate := testGate(t)

	other := NewGate(config.SecurityConfig{
		PIN: "2065",
		JWT: config.JWTConfig{Secret: "another-secret-key-of-sufficient-len"},
	})
	token, err := other.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	if gate.Authorized(r) {
		t.Error("Authorized() = true for token signed with a different secret")
	}
}

func TestLockCookie_ClearsSession(t *testing.T) {
	gate := testGate(t)

	cookie := gate.LockCookie()
	if cookie.Value != "" {
		t.Errorf("LockCookie().Value = %q, want empty", cookie.Value)
	}
	if cookie.MaxAge != -1 {
		t.Errorf("LockCookie().MaxAge = %d, want -1", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("LockCookie() must be HttpOnly")
	}
}

func TestUnlockCookie_Attributes(t *testing.T) {
	gate := testGate(t)

	cookie := gate.UnlockCookie("token-value")
	if !cookie.HttpOnly {
		t.Error("UnlockCookie() must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("UnlockCookie().SameSite = %v, want Lax", cookie.SameSite)
	}
	if cookie.MaxAge != 0 {
		t.Errorf("UnlockCookie().MaxAge = %d, want 0 (session cookie)", cookie.MaxAge)
	}
}

func TestIssueToken_Expiry(t *testing.T) {
	gate := testGate(t)

	token, err := gate.IssueToken()
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	claims, err := gate.parseToken(token)
	if err != nil {
		t.Fatalf("parseToken() error = %v", err)
	}

	if claims.ExpiresAt == nil {
		t.Fatal("token must carry an expiry")
	}
	if claims.ID == "" {
		t.Error("JTI (ID) should not be empty")
	}
}
