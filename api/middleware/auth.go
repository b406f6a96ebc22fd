package middleware

import (
	"context"
	"net/http"

	"github.com/calebmartin/wishlist-backend/api/responses"
	"github.com/calebmartin/wishlist-backend/internal/auth"
	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"github.com/calebmartin/wishlist-backend/pkg/logger"
)

// IdentityResolver validates a raw session cookie value.
type IdentityResolver interface {
	Resolve(ctx context.Context, rawCookie string) (auth.VerifiedIdentity, error)
}

// SessionAuth validates the session cookie and seeds the request context
// with the verified identity. Requests without a valid session get the
// uniform unauthorized response.
func SessionAuth(resolver IdentityResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(pkgAuth.SessionCookieName)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			identity, err := resolver.Resolve(r.Context(), cookie.Value)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":  identity.UserID,
					"username": identity.Username,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
