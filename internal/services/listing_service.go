package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/models"
	"github.com/Keyroamos/hunt/internal/repositories"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/google/uuid"
)

// ListingInput carries the owner-editable listing fields.
type ListingInput struct {
	Title        string
	Description  string
	PropertyType string
	Bedrooms     int
	Bathrooms    int
	RentPerMonth float64
	Deposit      float64
	Location     string
	Latitude     *float64
	Longitude    *float64
	Amenities    []string
	MapEmbed     string
	Status       string
}

// MapPin is the trimmed-down projection used by the map view.
type MapPin struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	PropertyType string    `json:"property_type"`
	Bedrooms     int       `json:"bedrooms"`
	RentPerMonth float64   `json:"rent_per_month"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	IsPromoted   bool      `json:"is_promoted"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// ListingStats is the owner-facing performance summary for one listing.
type ListingStats struct {
	Views          int64 `json:"views"`
	Favorites      int64 `json:"favorites"`
	Inquiries      int64 `json:"inquiries"`
	InquiriesWeek  int64 `json:"inquiries_last_7_days"`
	InquiriesMonth int64 `json:"inquiries_last_30_days"`
}

type ListingService interface {
	Create(ctx context.Context, ownerID uuid.UUID, in ListingInput) (*models.Listing, error)
	GetByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Listing, error)
	Search(ctx context.Context, f repositories.ListingFilter) ([]*models.Listing, error)
	MapView(ctx context.Context, f repositories.ListingFilter) ([]MapPin, error)
	Update(ctx context.Context, ownerID, listingID uuid.UUID, in ListingInput) (*models.Listing, error)
	Delete(ctx context.Context, ownerID, listingID uuid.UUID) error
	TogglePublish(ctx context.Context, ownerID, listingID uuid.UUID) (*models.Listing, error)
	RecordView(ctx context.Context, listingID uuid.UUID) (int64, error)
	Stats(ctx context.Context, ownerID, listingID uuid.UUID) (*ListingStats, error)

	Images(ctx context.Context, listingID uuid.UUID) ([]*models.ListingImage, error)
	AddImage(ctx context.Context, ownerID, listingID uuid.UUID, imageURL string, isPrimary bool) (*models.ListingImage, error)
	DeleteImage(ctx context.Context, ownerID, imageID uuid.UUID) error
	SetPrimaryImage(ctx context.Context, ownerID, imageID uuid.UUID) error
}

type listingService struct {
	listingRepo repositories.ListingRepository
	imageRepo   repositories.ListingImageRepository
	favRepo     repositories.FavoriteRepository
	inquiryRepo repositories.InquiryRepository
}

func NewListingService(
	listingRepo repositories.ListingRepository,
	imageRepo repositories.ListingImageRepository,
	favRepo repositories.FavoriteRepository,
	inquiryRepo repositories.InquiryRepository,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		imageRepo:   imageRepo,
		favRepo:     favRepo,
		inquiryRepo: inquiryRepo,
	}
}

func (s *listingService) Create(ctx context.Context, ownerID uuid.UUID, in ListingInput) (*models.Listing, error) {
	slug, err := s.uniqueSlug(ctx, in.Title)
	if err != nil {
		return nil, err
	}

	l := &models.Listing{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        in.Title,
		Slug:         slug,
		Description:  in.Description,
		PropertyType: in.PropertyType,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		RentPerMonth: in.RentPerMonth,
		Deposit:      in.Deposit,
		Location:     in.Location,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Amenities:    in.Amenities,
		MapEmbed:     in.MapEmbed,
		Status:       models.ListingStatusActive,
		IsPublished:  true,
	}
	applyEmbedCoords(l)

	if err := s.listingRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	l.RowVersion = 1
	return l, nil
}

// GetByIDOrSlug accepts either a UUID or a slug on the same path segment.
func (s *listingService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*models.Listing, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.listingRepo.GetByID(ctx, id)
	}
	return s.listingRepo.GetBySlug(ctx, idOrSlug)
}

func (s *listingService) Search(ctx context.Context, f repositories.ListingFilter) ([]*models.Listing, error) {
	return s.listingRepo.Search(ctx, f)
}

// MapView returns at most MapViewLimit pins; only listings with coordinates
// make it onto the map.
func (s *listingService) MapView(ctx context.Context, f repositories.ListingFilter) ([]MapPin, error) {
	f.Limit = constants.MapViewLimit
	listings, err := s.listingRepo.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	pins := make([]MapPin, 0, len(listings))
	for _, l := range listings {
		if !l.HasCoordinates() {
			continue
		}
		pin := MapPin{
			ID:           l.ID,
			Slug:         l.Slug,
			Title:        l.Title,
			PropertyType: l.PropertyType,
			Bedrooms:     l.Bedrooms,
			RentPerMonth: l.RentPerMonth,
			Latitude:     *l.Latitude,
			Longitude:    *l.Longitude,
			IsPromoted:   l.IsPromoted,
		}
		if img, imgErr := s.imageRepo.GetPrimaryOrAny(ctx, l.ID); imgErr == nil && img != nil {
			pin.ThumbnailURL = img.ImageURL
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

func (s *listingService) Update(ctx context.Context, ownerID, listingID uuid.UUID, in ListingInput) (*models.Listing, error) {
	err := s.listingRepo.UpdateWithRetry(ctx, listingID, func(l *models.Listing) error {
		if l.OwnerID != ownerID {
			return utils.ErrNotOwner
		}
		l.Title = in.Title
		l.Description = in.Description
		l.PropertyType = in.PropertyType
		l.Bedrooms = in.Bedrooms
		l.Bathrooms = in.Bathrooms
		l.RentPerMonth = in.RentPerMonth
		l.Deposit = in.Deposit
		l.Location = in.Location
		l.Latitude = in.Latitude
		l.Longitude = in.Longitude
		l.Amenities = in.Amenities
		l.MapEmbed = in.MapEmbed
		if in.Status != "" {
			l.Status = models.ListingStatusType(in.Status)
		}
		applyEmbedCoords(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.listingRepo.GetByID(ctx, listingID)
}

func (s *listingService) Delete(ctx context.Context, ownerID, listingID uuid.UUID) error {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if l == nil {
		return utils.ErrNoRowsUpdated
	}
	if l.OwnerID != ownerID {
		return utils.ErrNotOwner
	}
	return s.listingRepo.Delete(ctx, listingID)
}

func (s *listingService) TogglePublish(ctx context.Context, ownerID, listingID uuid.UUID) (*models.Listing, error) {
	err := s.listingRepo.UpdateWithRetry(ctx, listingID, func(l *models.Listing) error {
		if l.OwnerID != ownerID {
			return utils.ErrNotOwner
		}
		l.IsPublished = !l.IsPublished
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.listingRepo.GetByID(ctx, listingID)
}

func (s *listingService) RecordView(ctx context.Context, listingID uuid.UUID) (int64, error) {
	return s.listingRepo.IncrementViews(ctx, listingID)
}

func (s *listingService) Stats(ctx context.Context, ownerID, listingID uuid.UUID) (*ListingStats, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}
	if l.OwnerID != ownerID {
		return nil, utils.ErrNotOwner
	}

	favs, err := s.favRepo.CountByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	total, err := s.inquiryRepo.CountByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	week, err := s.inquiryRepo.CountByListingSince(ctx, listingID, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	month, err := s.inquiryRepo.CountByListingSince(ctx, listingID, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &ListingStats{
		Views:          l.Views,
		Favorites:      favs,
		Inquiries:      total,
		InquiriesWeek:  week,
		InquiriesMonth: month,
	}, nil
}

func (s *listingService) Images(ctx context.Context, listingID uuid.UUID) ([]*models.ListingImage, error) {
	return s.imageRepo.ListByListing(ctx, listingID)
}

func (s *listingService) AddImage(ctx context.Context, ownerID, listingID uuid.UUID, imageURL string, isPrimary bool) (*models.ListingImage, error) {
	l, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNoRowsUpdated
	}
	if l.OwnerID != ownerID {
		return nil, utils.ErrNotOwner
	}

	if isPrimary {
		if err := s.imageRepo.ResetPrimary(ctx, listingID); err != nil {
			return nil, err
		}
	}

	img := &models.ListingImage{
		ID:        uuid.New(),
		ListingID: listingID,
		ImageURL:  imageURL,
		IsPrimary: isPrimary,
	}
	if err := s.imageRepo.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *listingService) DeleteImage(ctx context.Context, ownerID, imageID uuid.UUID) error {
	img, err := s.ownedImage(ctx, ownerID, imageID)
	if err != nil {
		return err
	}
	return s.imageRepo.Delete(ctx, img.ID)
}

// SetPrimaryImage clears the previous primary first so exactly one image
// carries the flag.
func (s *listingService) SetPrimaryImage(ctx context.Context, ownerID, imageID uuid.UUID) error {
	img, err := s.ownedImage(ctx, ownerID, imageID)
	if err != nil {
		return err
	}
	if err := s.imageRepo.ResetPrimary(ctx, img.ListingID); err != nil {
		return err
	}
	return s.imageRepo.SetPrimary(ctx, img.ID)
}

func (s *listingService) ownedImage(ctx context.Context, ownerID, imageID uuid.UUID) (*models.ListingImage, error) {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, utils.ErrNoRowsUpdated
	}
	l, err := s.listingRepo.GetByID(ctx, img.ListingID)
	if err != nil {
		return nil, err
	}
	if l == nil || l.OwnerID != ownerID {
		return nil, utils.ErrNotOwner
	}
	return img, nil
}

// uniqueSlug derives a URL slug from the title, suffixing -1, -2, ... on
// collision. After SlugSuffixMax tries it falls back to a random suffix.
func (s *listingService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "listing"
	}

	candidate := base
	for i := 1; i <= constants.SlugSuffixMax; i++ {
		exists, err := s.listingRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return fmt.Sprintf("%s-%s", base, utils.RandomString(6)), nil
}

func applyEmbedCoords(l *models.Listing) {
	if l.Latitude != nil && l.Longitude != nil {
		return
	}
	if lat, lng, ok := utils.ExtractEmbedCoords(l.MapEmbed); ok {
		l.Latitude = &lat
		l.Longitude = &lng
	}
}
