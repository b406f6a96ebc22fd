package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the typed JWT stored in the session cookie. The
// subject carries the username.
type SessionClaims struct {
	jwt.RegisteredClaims
}
