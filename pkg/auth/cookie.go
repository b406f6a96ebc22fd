package auth

import (
	"net/http"
	"strings"
)

// SessionCookieName matches the cookie the browser clients expect.
const SessionCookieName = "access_token"

const bearerPrefix = "Bearer "

// SetSessionCookie writes the HTTP-only session cookie. The value keeps
// the "Bearer " prefix for compatibility with existing clients; the
// cookie is session-scoped and the token carries its own expiry.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    bearerPrefix + token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// TokenFromCookieValue strips the optional "Bearer " prefix from the raw
// cookie value.
func TokenFromCookieValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, bearerPrefix) {
		return strings.TrimSpace(raw[len(bearerPrefix):])
	}
	return raw
}
