package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmartin/wishlist-backend/pkg/config"
	"github.com/calebmartin/wishlist-backend/pkg/db"
	"github.com/calebmartin/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/calebmartin/wishlist-backend/pkg/errors"
	"github.com/calebmartin/wishlist-backend/pkg/security"
)

func setupRegisterTestDB(t *testing.T) *db.Client {
	t.Helper()

	client, err := db.New(context.Background(), config.DBConfig{
		Path: filepath.Join(t.TempDir(), "register.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.DB().AutoMigrate(&models.User{}))
	return client
}

func newRegisterService(t *testing.T, client *db.Client) RegisterService {
	t.Helper()
	svc, err := NewRegisterService(RegisterServiceParams{
		DB:             client,
		PasswordConfig: config.PasswordConfig{BcryptCost: 4},
	})
	require.NoError(t, err)
	return svc
}

func TestRegisterCreatesUser(t *testing.T) {
	client := setupRegisterTestDB(t)
	svc := newRegisterService(t, client)

	email := "Alice@Example.COM"
	dto, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "s3cret",
		Email:    &email,
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.Equal(t, "alice", dto.Username)
	require.NotNil(t, dto.Email)
	assert.Equal(t, "alice@example.com", *dto.Email, "email must be normalized to lowercase")
	assert.True(t, dto.IsActive)

	var stored models.User
	require.NoError(t, client.DB().First(&stored, "username = ?", "alice").Error)
	assert.NotEqual(t, "s3cret", stored.PasswordHash, "password must never be stored in plaintext")
	assert.True(t, security.VerifyPassword("s3cret", stored.PasswordHash))
}

func TestRegisterTrimsUsernameAndDropsBlankEmail(t *testing.T) {
	client := setupRegisterTestDB(t)
	svc := newRegisterService(t, client)

	blank := "   "
	dto, err := svc.Register(context.Background(), RegisterRequest{
		Username: "  alice  ",
		Password: "s3cret",
		Email:    &blank,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
	assert.Nil(t, dto.Email)
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	client := setupRegisterTestDB(t)
	svc := newRegisterService(t, client)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Username: "alice", Password: "other"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	var count int64
	require.NoError(t, client.DB().Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterValidation(t *testing.T) {
	client := setupRegisterTestDB(t)
	svc := newRegisterService(t, client)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "  ", Password: "s3cret"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = svc.Register(ctx, RegisterRequest{Username: "alice", Password: ""})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
