package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calebmartin/wishlist-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "secret",
		Issuer:     "wishlist-backend",
		TTLMinutes: 30,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintSessionToken(cfg, now, "alice")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}

	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %s", claims.Subject)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(30 * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp, claims.ExpiresAt.UTC(), diff)
	}
}

func TestMintSessionTokenValidation(t *testing.T) {
	cfg := testJWTConfig()
	if _, err := MintSessionToken(cfg, time.Now(), "  "); err == nil {
		t.Fatal("expected error for blank subject")
	}

	cfg.Secret = ""
	if _, err := MintSessionToken(cfg, time.Now(), "alice"); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestParseSessionTokenInvalidSignature(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintSessionToken(cfg, time.Now().UTC(), "alice")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintSessionToken(cfg, time.Now().UTC().Add(-2*time.Hour), "alice")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseSessionTokenRejectsUnsignedAlg(t *testing.T) {
	cfg := testJWTConfig()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected alg=none token to be rejected")
	}
}

func TestTokenFromCookieValue(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"  Bearer abc.def.ghi  ", "abc.def.ghi"},
		{"abc.def.ghi", "abc.def.ghi"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := TokenFromCookieValue(tc.raw); got != tc.want {
			t.Fatalf("TokenFromCookieValue(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionCookieLifecycle(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "abc.def.ghi")

	cookie := findCookie(t, rec, SessionCookieName)
	if cookie.Value != "Bearer abc.def.ghi" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Fatalf("expected Path=/, got %q", cookie.Path)
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Fatal("session cookie must not carry its own expiry")
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	cleared := findCookie(t, rec, SessionCookieName)
	if cleared.MaxAge >= 0 {
		t.Fatalf("expected negative MaxAge, got %d", cleared.MaxAge)
	}
}
