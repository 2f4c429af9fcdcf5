package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// RegisterInput is what we need from a new account.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        models.RoleType
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, string, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) (bool, error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type authService struct {
	cfg          *config.Config
	userRepo     repositories.UserRepository
	resetRepo    repositories.PasswordResetRepository
	jwtService   JWTService
	emailService EmailService
}

func NewAuthService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	resetRepo repositories.PasswordResetRepository,
	jwtService JWTService,
	emailService EmailService,
) AuthService {
	return &authService{
		cfg:          cfg,
		userRepo:     userRepo,
		resetRepo:    resetRepo,
		jwtService:   jwtService,
		emailService: emailService,
	}
}

// Register creates the account and signs the user in. The welcome email is
// best-effort: a delivery failure never fails the registration.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, string, string, error) {
	if len(in.Password) < constants.MinPasswordLength {
		return nil, "", "", utils.ErrWeakPassword
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", "", err
	}
	if existing != nil {
		return nil, "", "", utils.ErrEmailExists
	}

	var phone *string
	if in.PhoneNumber != "" {
		normalized, nErr := utils.NormalizeMSISDN(in.PhoneNumber)
		if nErr != nil {
			return nil, "", "", nErr
		}
		phone = &normalized
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", "", err
	}

	role := in.Role
	if role != models.RoleLandlord {
		role = models.RoleHunter
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  phone,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, "", "", utils.ErrEmailExists
		}
		return nil, "", "", err
	}

	if s.emailService != nil {
		if mailErr := s.emailService.SendWelcomeEmail(user.Email, user.FirstName); mailErr != nil {
			utils.Logger.WithError(mailErr).Warnf("Welcome email failed for %s", user.Email)
		}
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", err
	}
	if user == nil || !user.IsActive {
		return nil, "", "", utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return utils.ErrWeakPassword
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return utils.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.SetPassword(ctx, user.ID, hash)
}

// RequestPasswordReset always succeeds from the caller's point of view so
// the endpoint cannot be used to probe which emails are registered.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	token := &models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     utils.RandomString(constants.PasswordResetTokenLength),
		ExpiresAt: time.Now().Add(constants.PasswordResetTokenExpiry),
	}
	if err := s.resetRepo.Create(ctx, token); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, token.Token)
	if mailErr := s.emailService.SendPasswordResetEmail(user.Email, user.FirstName, resetURL); mailErr != nil {
		utils.Logger.WithError(mailErr).Errorf("Password reset email failed for %s", user.Email)
		return mailErr
	}
	return nil
}

func (s *authService) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	rec, err := s.resetRepo.GetByToken(ctx, token)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.IsUsable(), nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return utils.ErrWeakPassword
	}

	rec, err := s.resetRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if rec == nil || !rec.IsUsable() {
		return utils.ErrInvalidToken
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.SetPassword(ctx, rec.UserID, hash); err != nil {
		return err
	}
	return s.resetRepo.MarkUsed(ctx, rec.ID, time.Now())
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*models.User, string, string, error) {
	access, err := s.jwtService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.jwtService.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh.Token, nil
}
