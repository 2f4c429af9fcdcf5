package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/middleware"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateAccessToken(ctx context.Context, user *models.User) (string, error)
	GenerateRefreshToken(ctx context.Context, subjectID uuid.UUID) (*models.RefreshToken, error)

	// RefreshToken rotates the pair: the old refresh token is revoked and a
	// new access/refresh pair is issued.
	RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error)

	Logout(ctx context.Context, refreshTokenString string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	privateKey    *rsa.PrivateKey
	publicKey     *rsa.PublicKey
	tokenExpiry   time.Duration
	refreshExpiry time.Duration
	tokenRepo     repositories.TokenRepository
	userRepo      repositories.UserRepository
}

func NewJWTService(cfg *config.Config, tokenRepo repositories.TokenRepository, userRepo repositories.UserRepository) JWTService {
	return &jwtService{
		privateKey:    cfg.RSAPrivateKey,
		publicKey:     cfg.RSAPublicKey,
		tokenExpiry:   cfg.TokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
		tokenRepo:     tokenRepo,
		userRepo:      userRepo,
	}
}

func (j *jwtService) GenerateAccessToken(ctx context.Context, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"iss":      middleware.TokenIssuer,
		"sub":      user.ID.String(),
		"exp":      time.Now().Add(j.tokenExpiry).Unix(),
		"iat":      time.Now().Unix(),
		"jti":      uuid.NewString(),
		"role":     string(user.Role),
		"is_staff": user.IsStaff,
	}
	return j.signClaims(claims)
}

func (j *jwtService) GenerateRefreshToken(ctx context.Context, subjectID uuid.UUID) (*models.RefreshToken, error) {
	if j.tokenRepo == nil {
		return nil, errors.New("jwtService has nil tokenRepo")
	}

	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    subjectID,
		Token:     generateSecureToken(64),
		ExpiresAt: time.Now().Add(j.refreshExpiry),
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	if err := j.tokenRepo.CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (j *jwtService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	if j.tokenRepo == nil {
		return "", "", errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil || oldToken == nil || oldToken.Revoked {
		utils.Logger.WithError(err).Error("invalid or missing refresh token in jwtService.RefreshToken")
		return "", "", utils.ErrInvalidToken
	}

	if oldToken.IsExpired() {
		utils.Logger.Error("refresh token expired in jwtService.RefreshToken")
		return "", "", utils.ErrInvalidToken
	}

	user, err := j.userRepo.GetByID(ctx, oldToken.UserID)
	if err != nil || user == nil || !user.IsActive {
		return "", "", utils.ErrInvalidToken
	}

	if err := j.tokenRepo.RevokeRefreshToken(ctx, oldToken.Token); err != nil {
		utils.Logger.WithError(err).Error("failed to revoke old refresh token in jwtService.RefreshToken")
		return "", "", errors.New("failed to rotate token")
	}

	newAccess, aErr := j.GenerateAccessToken(ctx, user)
	if aErr != nil {
		return "", "", aErr
	}

	newRT, rErr := j.GenerateRefreshToken(ctx, oldToken.UserID)
	if rErr != nil {
		return "", "", rErr
	}

	return newAccess, newRT.Token, nil
}

func (j *jwtService) Logout(ctx context.Context, refreshTokenString string) error {
	if j.tokenRepo == nil {
		return errors.New("jwtService has nil tokenRepo")
	}

	oldToken, err := j.tokenRepo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("logout fetch refresh token error in jwtService")
		return errors.New("logout server error")
	}
	if oldToken == nil {
		// already not found => no-op
		return nil
	}

	if err := j.tokenRepo.RevokeRefreshToken(ctx, oldToken.Token); err != nil {
		utils.Logger.WithError(err).Error("failed to revoke token in jwtService.Logout")
		return errors.New("logout server error")
	}
	return nil
}

func (j *jwtService) signClaims(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}

// ---------------------------------------------------------------------
// Secure random generator
// ---------------------------------------------------------------------

func generateSecureToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[secureRandomInt(len(charset))]
	}
	return string(b)
}

func secureRandomInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}
