package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgAuth "github.com/calebmartin/wishlist-backend/pkg/auth"
	"github.com/calebmartin/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
)

func newTestResolver(t *testing.T, repo resolverUserRepository, now func() time.Time) *Resolver {
	t.Helper()
	resolver, err := NewResolver(ResolverParams{
		UserRepo:  repo,
		JWTConfig: testJWTConfig(),
		Now:       now,
	})
	require.NoError(t, err)
	return resolver
}

func mintTestToken(t *testing.T, subject string, issuedAt time.Time) string {
	t.Helper()
	token, err := pkgAuth.MintSessionToken(testJWTConfig(), issuedAt, subject)
	require.NoError(t, err)
	return token
}

func TestResolveValidCookie(t *testing.T) {
	user := &models.User{ID: 7, Username: "alice", IsActive: true}
	repo := &stubUserRepo{users: map[string]*models.User{"alice": user}}
	resolver := newTestResolver(t, repo, nil)

	token := mintTestToken(t, "alice", time.Now().UTC())

	identity, err := resolver.Resolve(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestResolveAcceptsBareToken(t *testing.T) {
	user := &models.User{ID: 7, Username: "alice", IsActive: true}
	repo := &stubUserRepo{users: map[string]*models.User{"alice": user}}
	resolver := newTestResolver(t, repo, nil)

	token := mintTestToken(t, "alice", time.Now().UTC())

	_, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
}

func TestResolveFailuresCollapseToUniformError(t *testing.T) {
	active := &models.User{ID: 7, Username: "alice", IsActive: true}
	inactive := &models.User{ID: 8, Username: "bob", IsActive: false}
	repo := &stubUserRepo{users: map[string]*models.User{
		"alice": active,
		"bob":   inactive,
	}}

	freshToken := mintTestToken(t, "alice", time.Now().UTC())
	ghostToken := mintTestToken(t, "ghost", time.Now().UTC())
	inactiveToken := mintTestToken(t, "bob", time.Now().UTC())
	expiredToken := mintTestToken(t, "alice", time.Now().UTC().Add(-48*time.Hour))

	otherSecret := testJWTConfig()
	otherSecret.Secret = "some-other-secret"
	forgedToken, err := pkgAuth.MintSessionToken(otherSecret, time.Now().UTC(), "alice")
	require.NoError(t, err)

	cases := []struct {
		name      string
		rawCookie string
		reason    FailureReason
	}{
		{"empty cookie", "", FailureMissingCredential},
		{"whitespace cookie", "   ", FailureMissingCredential},
		{"garbage token", "Bearer not.a.jwt", FailureMalformedToken},
		{"wrong secret", "Bearer " + forgedToken, FailureMalformedToken},
		{"expired token", "Bearer " + expiredToken, FailureMalformedToken},
		{"unknown subject", "Bearer " + ghostToken, FailureUnknownUser},
		{"inactive subject", "Bearer " + inactiveToken, FailureInactiveUser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := newTestResolver(t, repo, nil)
			_, err := resolver.Resolve(context.Background(), tc.rawCookie)
			require.Error(t, err)

			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
			assert.Equal(t, "could not validate credentials", typed.Message())

			var failure *FailureError
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, tc.reason, failure.Reason)
		})
	}

	// The same token rejected only because the resolver clock moved past
	// its expiry window.
	t.Run("expired by resolver clock", func(t *testing.T) {
		future := func() time.Time { return time.Now().UTC().Add(25 * time.Hour) }
		resolver := newTestResolver(t, repo, future)
		_, err := resolver.Resolve(context.Background(), "Bearer "+freshToken)
		require.Error(t, err)
		assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
	})
}

func TestResolveStorageFailure(t *testing.T) {
	repo := &stubUserRepo{err: errors.New("disk on fire")}
	resolver := newTestResolver(t, repo, nil)

	token := mintTestToken(t, "alice", time.Now().UTC())

	_, err := resolver.Resolve(context.Background(), "Bearer "+token)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())

	var failure *FailureError
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, FailureStorage, failure.Reason)
}

func TestParseRoleClaim(t *testing.T) {
	assert.Equal(t, RoleCreator, ParseRoleClaim("creator"))
	assert.Equal(t, RoleCreator, ParseRoleClaim("  CREATOR  "))
	assert.Equal(t, RoleViewer, ParseRoleClaim("viewer"))
	assert.Equal(t, RoleViewer, ParseRoleClaim(""))
	assert.Equal(t, RoleViewer, ParseRoleClaim("admin"))
}
