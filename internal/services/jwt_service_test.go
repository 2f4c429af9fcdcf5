package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/middleware"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newJWTFixture(t *testing.T) (JWTService, *fakeTokenRepo, *fakeUserRepo, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cfg := &config.Config{
		RSAPrivateKey:      key,
		RSAPublicKey:       &key.PublicKey,
		TokenExpiry:        15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
	tokenRepo := newFakeTokenRepo()
	userRepo := newFakeUserRepo()
	return NewJWTService(cfg, tokenRepo, userRepo), tokenRepo, userRepo, &key.PublicKey
}

func seedActiveUser(t *testing.T, userRepo *fakeUserRepo, staff bool) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.New(),
		Email:    "hunter@example.com",
		Role:     models.RoleHunter,
		IsStaff:  staff,
		IsActive: true,
	}
	require.NoError(t, userRepo.Create(context.Background(), u))
	return u
}

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc, _, userRepo, pub := newJWTFixture(t)
	user := seedActiveUser(t, userRepo, true)

	tokenString, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	token, err := middleware.ValidateToken(tokenString, pub)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, middleware.TokenIssuer, claims["iss"])
	require.Equal(t, user.ID.String(), claims["sub"])
	require.Equal(t, string(models.RoleHunter), claims["role"])
	require.Equal(t, true, claims["is_staff"])
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc, _, userRepo, _ := newJWTFixture(t)
	user := seedActiveUser(t, userRepo, false)

	tokenString, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = middleware.ValidateToken(tokenString, &otherKey.PublicKey)
	require.Error(t, err)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, tokenRepo, userRepo, _ := newJWTFixture(t)
	ctx := context.Background()
	user := seedActiveUser(t, userRepo, false)

	rt, err := svc.GenerateRefreshToken(ctx, user.ID)
	require.NoError(t, err)

	access, newRefresh, err := svc.RefreshToken(ctx, rt.Token)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEqual(t, rt.Token, newRefresh)

	// the old token is revoked and cannot be replayed
	old, err := tokenRepo.GetRefreshToken(ctx, rt.Token)
	require.NoError(t, err)
	require.True(t, old.Revoked)

	_, _, err = svc.RefreshToken(ctx, rt.Token)
	require.ErrorIs(t, err, utils.ErrInvalidToken)

	// the rotated token still works
	_, _, err = svc.RefreshToken(ctx, newRefresh)
	require.NoError(t, err)
}

func TestRefreshTokenInactiveUser(t *testing.T) {
	svc, _, userRepo, _ := newJWTFixture(t)
	ctx := context.Background()
	user := seedActiveUser(t, userRepo, false)

	rt, err := svc.GenerateRefreshToken(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, userRepo.SetActive(ctx, user.ID, false))

	_, _, err = svc.RefreshToken(ctx, rt.Token)
	require.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, tokenRepo, userRepo, _ := newJWTFixture(t)
	ctx := context.Background()
	user := seedActiveUser(t, userRepo, false)

	rt, err := svc.GenerateRefreshToken(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, rt.Token))

	stored, err := tokenRepo.GetRefreshToken(ctx, rt.Token)
	require.NoError(t, err)
	require.True(t, stored.Revoked)

	// logging out an unknown token is a no-op
	require.NoError(t, svc.Logout(ctx, "never-issued"))
}
