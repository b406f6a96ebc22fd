package middleware

import (
	"context"

	"github.com/calebmartin/wishlist-backend/internal/auth"
)

type contextKey string

const (
	ctxIdentity  contextKey = "identity"
	ctxRoleClaim contextKey = "role_claim"
)

// IdentityFromContext returns the verified identity seeded by SessionAuth.
func IdentityFromContext(ctx context.Context) (auth.VerifiedIdentity, bool) {
	if ctx == nil {
		return auth.VerifiedIdentity{}, false
	}
	identity, ok := ctx.Value(ctxIdentity).(auth.VerifiedIdentity)
	return identity, ok
}

// WithIdentity injects a verified identity into the context.
func WithIdentity(ctx context.Context, identity auth.VerifiedIdentity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}

// RoleClaimFromContext returns the legacy unverified role cookie claim.
func RoleClaimFromContext(ctx context.Context) auth.UnverifiedRoleClaim {
	if ctx == nil {
		return auth.RoleViewer
	}
	if claim, ok := ctx.Value(ctxRoleClaim).(auth.UnverifiedRoleClaim); ok {
		return claim
	}
	return auth.RoleViewer
}

// WithRoleClaim injects the unverified role claim into the context.
func WithRoleClaim(ctx context.Context, claim auth.UnverifiedRoleClaim) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRoleClaim, claim)
}
