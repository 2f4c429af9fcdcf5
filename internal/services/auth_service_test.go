package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc       AuthService
	userRepo  *fakeUserRepo
	resetRepo *fakeResetRepo
	email     *stubEmailService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		userRepo:  newFakeUserRepo(),
		resetRepo: newFakeResetRepo(),
		email:     &stubEmailService{},
	}
	cfg := &config.Config{FrontendURL: "https://hunt.example.com"}
	f.svc = NewAuthService(cfg, f.userRepo, f.resetRepo, &stubJWTService{}, f.email)
	return f
}

func TestRegisterHappyPath(t *testing.T) {
	f := newAuthFixture(t)

	user, access, refresh, err := f.svc.Register(context.Background(), RegisterInput{
		Email:       "wanjiru@example.com",
		Password:    "s3cure-pass",
		FirstName:   "Wanjiru",
		LastName:    "Kamau",
		PhoneNumber: "0712345678",
		Role:        models.RoleLandlord,
	})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	require.Equal(t, models.RoleLandlord, user.Role)
	require.True(t, user.IsActive)
	require.False(t, user.IsStaff)
	require.Equal(t, "254712345678", *user.PhoneNumber)
	require.NotEqual(t, "s3cure-pass", user.PasswordHash)

	require.Equal(t, []string{"wanjiru@example.com"}, f.email.welcome)
}

func TestRegisterDefaultsToHunter(t *testing.T) {
	f := newAuthFixture(t)

	user, _, _, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    "otieno@example.com",
		Password: "password123",
		Role:     "admin", // not a self-assignable role
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleHunter, user.Role)
}

func TestRegisterWeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, _, _, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    "short@example.com",
		Password: "short",
	})
	require.ErrorIs(t, err, utils.ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, _, _, err = f.svc.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "password456"})
	require.ErrorIs(t, err, utils.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	registered, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)

	user, access, _, err := f.svc.Login(ctx, "login@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.True(t, strings.HasPrefix(access, "access-"))

	_, _, _, err = f.svc.Login(ctx, "login@example.com", "wrong-password")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, _, _, err = f.svc.Login(ctx, "nobody@example.com", "password123")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "banned@example.com", Password: "password123"})
	require.NoError(t, err)
	require.NoError(t, f.userRepo.SetActive(ctx, user.ID, false))

	_, _, _, err = f.svc.Login(ctx, "banned@example.com", "password123")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "change@example.com", Password: "password123"})
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.ChangePassword(ctx, user.ID, "password123", "tiny"), utils.ErrWeakPassword)
	require.ErrorIs(t, f.svc.ChangePassword(ctx, user.ID, "wrong-current", "new-password-1"), utils.ErrInvalidCredentials)
	require.NoError(t, f.svc.ChangePassword(ctx, user.ID, "password123", "new-password-1"))

	_, _, _, err = f.svc.Login(ctx, "change@example.com", "new-password-1")
	require.NoError(t, err)
	_, _, _, err = f.svc.Login(ctx, "change@example.com", "password123")
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "reset@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestPasswordReset(ctx, "reset@example.com"))
	require.Len(t, f.email.resets, 1)

	// the emailed URL carries the token
	resetURL := f.email.resets[0]
	token := resetURL[strings.Index(resetURL, "token=")+len("token="):]

	ok, err := f.svc.ValidateResetToken(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.svc.ConfirmPasswordReset(ctx, token, "fresh-password-1"))

	_, _, _, err = f.svc.Login(ctx, "reset@example.com", "fresh-password-1")
	require.NoError(t, err)

	// single use
	require.ErrorIs(t, f.svc.ConfirmPasswordReset(ctx, token, "another-password-1"), utils.ErrInvalidToken)
	ok, err = f.svc.ValidateResetToken(ctx, token)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "ghost@example.com"))
	require.Empty(t, f.email.resets)
}

func TestPasswordResetExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	user, _, _, err := f.svc.Register(ctx, RegisterInput{Email: "late@example.com", Password: "password123"})
	require.NoError(t, err)

	expired := &models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, f.resetRepo.Create(ctx, expired))

	ok, err := f.svc.ValidateResetToken(ctx, "expired-token")
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, f.svc.ConfirmPasswordReset(ctx, "expired-token", "new-password-1"), utils.ErrInvalidToken)
}
