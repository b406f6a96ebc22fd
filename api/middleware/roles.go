package middleware

import (
	"net/http"

	"github.com/calebmartin/wishlist-backend/internal/auth"
)

const roleCookieName = "role"

// RoleClaim reads the legacy plaintext role cookie into the context. The
// claim is unverified and never authorizes API mutations; the page layer
// only uses it to pick which view to render.
func RoleClaim() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claim := auth.RoleViewer
			if cookie, err := r.Cookie(roleCookieName); err == nil {
				claim = auth.ParseRoleClaim(cookie.Value)
			}
			next.ServeHTTP(w, r.WithContext(WithRoleClaim(r.Context(), claim)))
		})
	}
}

// SetRoleCookie writes the legacy role cookie. Unlike the session cookie
// it is intentionally script-readable so the UI can mirror it.
func SetRoleCookie(w http.ResponseWriter, claim auth.UnverifiedRoleClaim) {
	http.SetCookie(w, &http.Cookie{
		Name:     roleCookieName,
		Value:    string(claim),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}
