package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	"github.com/calebmartin/wishlist-backend/pkg/config"
	"github.com/calebmartin/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"github.com/calebmartin/wishlist-backend/pkg/logger"
	"gorm.io/gorm"
)

// FailureReason classifies internally why a credential was rejected. The
// reason is logged for diagnosability but every failure collapses to the
// same unauthorized error at the boundary, so callers cannot distinguish
// a tampered token from an unknown user.
type FailureReason string

const (
	FailureMissingCredential FailureReason = "missing_credential"
	FailureMalformedToken    FailureReason = "malformed_token"
	FailureMissingSubject    FailureReason = "missing_subject"
	FailureExpired           FailureReason = "expired"
	FailureUnknownUser       FailureReason = "unknown_user"
	FailureInactiveUser      FailureReason = "inactive_user"
	FailureStorage           FailureReason = "storage"
)

// FailureError keeps the reason attached for internal logging while the
// wrapping typed error carries the uniform public message.
type FailureError struct {
	Reason FailureReason
	Cause  error
}

func (e *FailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("auth failure (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("auth failure (%s)", e.Reason)
}

func (e *FailureError) Unwrap() error {
	return e.Cause
}

// Resolver turns a raw session cookie value back into a verified identity.
type Resolver struct {
	users  resolverUserRepository
	jwtCfg config.JWTConfig
	logg   *logger.Logger
	now    func() time.Time
}

type resolverUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// ResolverParams bundles the resolver dependencies.
type ResolverParams struct {
	UserRepo  resolverUserRepository
	JWTConfig config.JWTConfig
	Logger    *logger.Logger
	Now       func() time.Time
}

// NewResolver constructs a token resolver.
func NewResolver(params ResolverParams) (*Resolver, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		users:  params.UserRepo,
		jwtCfg: params.JWTConfig,
		logg:   params.Logger,
		now:    now,
	}, nil
}

// Resolve validates the raw cookie value and loads the subject user. Any
// failure at any step yields the same unauthorized error.
func (r *Resolver) Resolve(ctx context.Context, rawCookie string) (VerifiedIdentity, error) {
	token := pkgAuth.TokenFromCookieValue(rawCookie)
	if token == "" {
		return r.reject(ctx, FailureMissingCredential, nil)
	}

	claims, err := pkgAuth.ParseSessionToken(r.jwtCfg, token)
	if err != nil {
		return r.reject(ctx, FailureMalformedToken, err)
	}
	if claims.Subject == "" {
		return r.reject(ctx, FailureMissingSubject, nil)
	}

	// The parser already validates exp; re-check against our own clock so
	// expiry policy does not hinge on the signing library alone.
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(r.now().UTC()) {
		return r.reject(ctx, FailureExpired, nil)
	}

	user, err := r.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.reject(ctx, FailureUnknownUser, nil)
		}
		return r.reject(ctx, FailureStorage, err)
	}
	if !user.IsActive {
		return r.reject(ctx, FailureInactiveUser, nil)
	}

	return VerifiedIdentity{UserID: user.ID, Username: user.Username}, nil
}

func (r *Resolver) reject(ctx context.Context, reason FailureReason, cause error) (VerifiedIdentity, error) {
	failure := &FailureError{Reason: reason, Cause: cause}
	if r.logg != nil {
		ctx = r.logg.WithField(ctx, "auth_failure", string(reason))
		r.logg.Debug(ctx, "session credential rejected")
	}
	return VerifiedIdentity{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, failure, "could not validate credentials")
}
