package repositories

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type ListingImageRepository interface {
	Create(ctx context.Context, img *models.ListingImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ListingImage, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.ListingImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResetPrimary(ctx context.Context, listingID uuid.UUID) error
	SetPrimary(ctx context.Context, id uuid.UUID) error
	GetPrimaryOrAny(ctx context.Context, listingID uuid.UUID) (*models.ListingImage, error)
}

type listingImageRepo struct {
	db DB
}

func NewListingImageRepository(db DB) ListingImageRepository {
	return &listingImageRepo{db: db}
}

func (r *listingImageRepo) Create(ctx context.Context, img *models.ListingImage) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listing_images (id, listing_id, image_url, is_primary, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, img.ID, img.ListingID, img.ImageURL, img.IsPrimary)
	return err
}

func (r *listingImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingImage, error) {
	row := r.db.QueryRow(ctx, baseSelectListingImage()+" WHERE i.id = $1", id)
	return scanListingImage(row)
}

func (r *listingImageRepo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.ListingImage, error) {
	rows, err := r.db.Query(ctx,
		baseSelectListingImage()+" WHERE i.listing_id = $1 ORDER BY i.is_primary DESC, i.created_at ASC",
		listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ListingImage
	for rows.Next() {
		img, err := scanListingImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *listingImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listing_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingImageRepo) ResetPrimary(ctx context.Context, listingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        UPDATE listing_images SET is_primary = FALSE WHERE listing_id = $1
    `, listingID)
	return err
}

func (r *listingImageRepo) SetPrimary(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE listing_images SET is_primary = TRUE WHERE id = $1
    `, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetPrimaryOrAny returns the primary image when one exists, otherwise the
// oldest image, otherwise nil.
func (r *listingImageRepo) GetPrimaryOrAny(ctx context.Context, listingID uuid.UUID) (*models.ListingImage, error) {
	row := r.db.QueryRow(ctx,
		baseSelectListingImage()+` WHERE i.listing_id = $1
         ORDER BY i.is_primary DESC, i.created_at ASC LIMIT 1`,
		listingID)
	return scanListingImage(row)
}

func baseSelectListingImage() string {
	return `
        SELECT i.id, i.listing_id, i.image_url, i.is_primary, i.created_at
        FROM listing_images i
    `
}

func scanListingImage(row pgx.Row) (*models.ListingImage, error) {
	var img models.ListingImage
	err := row.Scan(&img.ID, &img.ListingID, &img.ImageURL, &img.IsPrimary, &img.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}
