package services

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// FavoriteEntry pairs the saved marker with the listing it points at.
type FavoriteEntry struct {
	Favorite *models.Favorite `json:"favorite"`
	Listing  *models.Listing  `json:"listing,omitempty"`
}

type FavoriteService interface {
	Save(ctx context.Context, userID, listingID uuid.UUID) (*models.Favorite, error)
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	ListMine(ctx context.Context, userID uuid.UUID) ([]FavoriteEntry, error)
	IsSaved(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
}

type favoriteService struct {
	favRepo     repositories.FavoriteRepository
	listingRepo repositories.ListingRepository
}

func NewFavoriteService(favRepo repositories.FavoriteRepository, listingRepo repositories.ListingRepository) FavoriteService {
	return &favoriteService{favRepo: favRepo, listingRepo: listingRepo}
}

// Save is idempotent: saving an already-saved listing returns the marker
// without complaint.
func (s *favoriteService) Save(ctx context.Context, userID, listingID uuid.UUID) (*models.Favorite, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}

	fav := &models.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		ListingID: listingID,
	}
	if _, err := s.favRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.favRepo.Delete(ctx, userID, listingID)
}

func (s *favoriteService) ListMine(ctx context.Context, userID uuid.UUID) ([]FavoriteEntry, error) {
	favs, err := s.favRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]FavoriteEntry, 0, len(favs))
	for _, f := range favs {
		entry := FavoriteEntry{Favorite: f}
		// A listing deleted after being saved still shows up as a bare
		// marker rather than breaking the whole list.
		if l, lErr := s.listingRepo.GetByID(ctx, f.ListingID); lErr == nil {
			entry.Listing = l
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *favoriteService) IsSaved(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	return s.favRepo.Exists(ctx, userID, listingID)
}
