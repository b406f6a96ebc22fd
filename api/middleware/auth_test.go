package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calebmartin/wishlist-backend/internal/auth"
	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
)

type stubResolver struct {
	identity auth.VerifiedIdentity
	err      error

	gotRawCookie string
}

func (s *stubResolver) Resolve(_ context.Context, rawCookie string) (auth.VerifiedIdentity, error) {
	s.gotRawCookie = rawCookie
	return s.identity, s.err
}

func TestSessionAuthSeedsIdentity(t *testing.T) {
	resolver := &stubResolver{identity: auth.VerifiedIdentity{UserID: 7, Username: "alice"}}

	var seen auth.VerifiedIdentity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = IdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/wishlists", nil)
	req.AddCookie(&http.Cookie{Name: pkgAuth.SessionCookieName, Value: "Bearer some.jwt.value"})
	rec := httptest.NewRecorder()

	SessionAuth(resolver, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !ok {
		t.Fatal("identity missing from downstream context")
	}
	if seen.UserID != 7 || seen.Username != "alice" {
		t.Fatalf("unexpected identity %+v", seen)
	}
	if resolver.gotRawCookie != "Bearer some.jwt.value" {
		t.Fatalf("raw cookie not forwarded, got %q", resolver.gotRawCookie)
	}
}

func TestSessionAuthMissingCookie(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/wishlists", nil)
	rec := httptest.NewRecorder()

	SessionAuth(&stubResolver{}, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if called {
		t.Fatal("next handler must not run without a session")
	}
}

func TestSessionAuthRejectedCookie(t *testing.T) {
	resolver := &stubResolver{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "could not validate credentials")}
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodPost, "/api/wishlists", nil)
	req.AddCookie(&http.Cookie{Name: pkgAuth.SessionCookieName, Value: "Bearer tampered"})
	rec := httptest.NewRecorder()

	SessionAuth(resolver, nil)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if called {
		t.Fatal("next handler must not run for a rejected session")
	}
}

func TestRoleClaimDefaultsToViewer(t *testing.T) {
	var seen auth.UnverifiedRoleClaim
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RoleClaimFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/viewer", nil)
	rec := httptest.NewRecorder()
	RoleClaim()(next).ServeHTTP(rec, req)

	if seen != auth.RoleViewer {
		t.Fatalf("expected viewer default, got %q", seen)
	}
}

func TestRoleClaimReadsCookie(t *testing.T) {
	var seen auth.UnverifiedRoleClaim
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RoleClaimFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/creator", nil)
	req.AddCookie(&http.Cookie{Name: roleCookieName, Value: "creator"})
	rec := httptest.NewRecorder()
	RoleClaim()(next).ServeHTTP(rec, req)

	if seen != auth.RoleCreator {
		t.Fatalf("expected creator claim, got %q", seen)
	}
}

func TestSetRoleCookieIsScriptReadable(t *testing.T) {
	rec := httptest.NewRecorder()
	SetRoleCookie(rec, auth.RoleCreator)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != roleCookieName || cookie.Value != "creator" {
		t.Fatalf("unexpected cookie %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.HttpOnly {
		t.Fatal("role cookie must stay readable by the UI scripts")
	}
}
