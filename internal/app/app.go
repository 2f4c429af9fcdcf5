package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/Keyroamos/hunt/internal/utils/paystack"
	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

// App wires the pool, repositories and services together.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	UserRepo    repositories.UserRepository
	ListingRepo repositories.ListingRepository
	ImageRepo   repositories.ListingImageRepository
	PaymentRepo repositories.PaymentRepository
	DocRepo     repositories.VerificationDocumentRepository
	FavRepo     repositories.FavoriteRepository
	InquiryRepo repositories.InquiryRepository
	MessageRepo repositories.MessageRepository
	TokenRepo   repositories.TokenRepository
	ResetRepo   repositories.PasswordResetRepository

	JWTService          services.JWTService
	EmailService        services.EmailService
	AuthService         services.AuthService
	ListingService      services.ListingService
	PaymentService      services.PaymentService
	VerificationService services.VerificationService
	FavoriteService     services.FavoriteService
	InquiryService      services.InquiryService
	AdminService        services.AdminService
	CleanupService      services.CleanupService
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		if err == nil {
			utils.Logger.Infof("Connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	a := &App{
		Config: cfg,
		DB:     dbPool,
	}

	a.UserRepo = repositories.NewUserRepository(dbPool)
	a.ListingRepo = repositories.NewListingRepository(dbPool)
	a.ImageRepo = repositories.NewListingImageRepository(dbPool)
	a.PaymentRepo = repositories.NewPaymentRepository(dbPool)
	a.DocRepo = repositories.NewVerificationDocumentRepository(dbPool)
	a.FavRepo = repositories.NewFavoriteRepository(dbPool)
	a.InquiryRepo = repositories.NewInquiryRepository(dbPool)
	a.MessageRepo = repositories.NewMessageRepository(dbPool)
	a.TokenRepo = repositories.NewTokenRepository(dbPool)
	a.ResetRepo = repositories.NewPasswordResetRepository(dbPool)

	gateway, err := paystack.NewClient(cfg.PaystackSecretKey, cfg.PaystackBaseURL)
	if err != nil {
		return nil, fmt.Errorf("paystack client: %w", err)
	}

	a.JWTService = services.NewJWTService(cfg, a.TokenRepo, a.UserRepo)
	a.EmailService = services.NewEmailService(cfg)
	a.AuthService = services.NewAuthService(cfg, a.UserRepo, a.ResetRepo, a.JWTService, a.EmailService)
	a.ListingService = services.NewListingService(a.ListingRepo, a.ImageRepo, a.FavRepo, a.InquiryRepo)
	a.PaymentService = services.NewPaymentService(cfg, gateway, a.PaymentRepo, a.ListingRepo, a.UserRepo, a.EmailService)
	a.VerificationService = services.NewVerificationService(a.DocRepo, a.UserRepo, a.PaymentRepo)
	a.FavoriteService = services.NewFavoriteService(a.FavRepo, a.ListingRepo)
	a.InquiryService = services.NewInquiryService(a.InquiryRepo, a.MessageRepo, a.ListingRepo)
	a.AdminService = services.NewAdminService(a.UserRepo, a.ListingRepo, a.PaymentRepo, a.DocRepo)
	a.CleanupService = services.NewCleanupService(a.ListingRepo, a.TokenRepo, a.ResetRepo)

	return a, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
