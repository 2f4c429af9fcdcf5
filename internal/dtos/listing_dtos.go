package dtos

import (
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
)

// ----------------------
// Requests
// ----------------------

type CreateListingRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description" validate:"required"`
	PropertyType string   `json:"property_type" validate:"required,min=1,max=50"`
	Bedrooms     int      `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms    int      `json:"bathrooms" validate:"gte=0,lte=50"`
	RentPerMonth float64  `json:"rent_per_month" validate:"required,gt=0"`
	Deposit      float64  `json:"deposit" validate:"gte=0"`
	Location     string   `json:"location" validate:"required,min=2,max=255"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Amenities    []string `json:"amenities,omitempty"`
	MapEmbed     string   `json:"map_embed,omitempty"`
}

type UpdateListingRequest struct {
	CreateListingRequest
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active pending rented inactive"`
}

type AddImageRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	IsPrimary bool   `json:"is_primary"`
}

// ----------------------
// Responses
// ----------------------

type ListingImageResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

func NewListingImageResponse(img *models.ListingImage) ListingImageResponse {
	return ListingImageResponse{
		ID:        img.ID,
		ImageURL:  img.ImageURL,
		IsPrimary: img.IsPrimary,
		CreatedAt: img.CreatedAt,
	}
}

func NewListingImageResponses(imgs []*models.ListingImage) []ListingImageResponse {
	out := make([]ListingImageResponse, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, NewListingImageResponse(img))
	}
	return out
}

type ListingResponse struct {
	ID            uuid.UUID              `json:"id"`
	OwnerID       uuid.UUID              `json:"owner_id"`
	Title         string                 `json:"title"`
	Slug          string                 `json:"slug"`
	Description   string                 `json:"description"`
	PropertyType  string                 `json:"property_type"`
	Bedrooms      int                    `json:"bedrooms"`
	Bathrooms     int                    `json:"bathrooms"`
	RentPerMonth  float64                `json:"rent_per_month"`
	Deposit       float64                `json:"deposit"`
	Location      string                 `json:"location"`
	Latitude      *float64               `json:"latitude,omitempty"`
	Longitude     *float64               `json:"longitude,omitempty"`
	Amenities     []string               `json:"amenities"`
	MapEmbed      string                 `json:"map_embed,omitempty"`
	Status        string                 `json:"status"`
	IsPublished   bool                   `json:"is_published"`
	IsPromoted    bool                   `json:"is_promoted"`
	PromotedUntil *time.Time             `json:"promoted_until,omitempty"`
	Views         int64                  `json:"views"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Images        []ListingImageResponse `json:"images,omitempty"`
}

func NewListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Title:         l.Title,
		Slug:          l.Slug,
		Description:   l.Description,
		PropertyType:  l.PropertyType,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		RentPerMonth:  l.RentPerMonth,
		Deposit:       l.Deposit,
		Location:      l.Location,
		Latitude:      l.Latitude,
		Longitude:     l.Longitude,
		Amenities:     l.Amenities,
		MapEmbed:      l.MapEmbed,
		Status:        string(l.Status),
		IsPublished:   l.IsPublished,
		IsPromoted:    l.IsPromoted,
		PromotedUntil: l.PromotedUntil,
		Views:         l.Views,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func NewListingResponses(listings []*models.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListingResponse(l))
	}
	return out
}

type ViewCountResponse struct {
	Views int64 `json:"views"`
}
