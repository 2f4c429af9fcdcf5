package services

import (
	"context"

	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
)

// CleanupService backs the cron sweeps in main.
type CleanupService interface {
	ExpirePromotions(ctx context.Context) error
	PurgeTokens(ctx context.Context) error
}

type cleanupService struct {
	listingRepo repositories.ListingRepository
	tokenRepo   repositories.TokenRepository
	resetRepo   repositories.PasswordResetRepository
}

func NewCleanupService(
	listingRepo repositories.ListingRepository,
	tokenRepo repositories.TokenRepository,
	resetRepo repositories.PasswordResetRepository,
) CleanupService {
	return &cleanupService{
		listingRepo: listingRepo,
		tokenRepo:   tokenRepo,
		resetRepo:   resetRepo,
	}
}

func (s *cleanupService) ExpirePromotions(ctx context.Context) error {
	n, err := s.listingRepo.ClearExpiredPromotions(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		utils.Logger.Infof("Cleared %d expired promotions", n)
	}
	return nil
}

func (s *cleanupService) PurgeTokens(ctx context.Context) error {
	refresh, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	resets, err := s.resetRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if refresh+resets > 0 {
		utils.Logger.Infof("Purged %d refresh tokens and %d reset tokens", refresh, resets)
	}
	return nil
}
