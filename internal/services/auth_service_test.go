package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cloud-media-platform/internal/auth"
	"cloud-media-platform/internal/models"
)

func newTestAuthService() (*AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(newFakeUserRepo(), tokens, bcrypt.MinCost, zap.NewNop().Sugar()), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.NotEmpty(t, res.User.ID)
	assert.False(t, res.User.CreatedAt.IsZero())

	claims, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)

	login, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{
		Username: "mallory", Email: "a@x.com", Password: "other",
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "ALREADY_EXISTS", codeOf(err))
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	// wrong password and unknown email are indistinguishable
	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(err))
}
