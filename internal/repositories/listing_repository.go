package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*models.Listing, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	Search(ctx context.Context, f ListingFilter) ([]*models.Listing, error)

	Update(ctx context.Context, l *models.Listing) error
	UpdateIfVersion(ctx context.Context, l *models.Listing, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error
	Delete(ctx context.Context, id uuid.UUID) error

	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	SetPromotion(ctx context.Context, id uuid.UUID, until time.Time) error
	ClearExpiredPromotions(ctx context.Context) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Listing, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type listingRepo struct {
	*BaseVersionedRepo[*models.Listing]
	db DB
}

func NewListingRepository(db DB) ListingRepository {
	r := &listingRepo{db: db}
	selectStmt := baseSelectListing() + " WHERE l.id = $1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanListing)
	return r
}

func (r *listingRepo) Create(ctx context.Context, l *models.Listing) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listings (
            id, owner_id, title, slug, description, property_type,
            bedrooms, bathrooms, rent_per_month, deposit, location,
            latitude, longitude, amenities, map_embed, status,
            is_published, is_promoted, views,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,FALSE,0, NOW(), NOW(), 1)
    `,
		l.ID,
		l.OwnerID,
		l.Title,
		l.Slug,
		l.Description,
		l.PropertyType,
		l.Bedrooms,
		l.Bathrooms,
		l.RentPerMonth,
		l.Deposit,
		l.Location,
		l.Latitude,
		l.Longitude,
		l.Amenities,
		l.MapEmbed,
		l.Status,
		l.IsPublished,
	)
	return err
}

func (r *listingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *listingRepo) GetBySlug(ctx context.Context, slug string) (*models.Listing, error) {
	row := r.db.QueryRow(ctx, baseSelectListing()+" WHERE l.slug = $1", slug)
	return scanListing(row)
}

func (r *listingRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *listingRepo) Search(ctx context.Context, f ListingFilter) ([]*models.Listing, error) {
	sql, args := buildSearchQuery(f)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *listingRepo) Update(ctx context.Context, l *models.Listing) error {
	_, err := r.update(ctx, l, false, 0)
	return err
}

func (r *listingRepo) UpdateIfVersion(ctx context.Context, l *models.Listing, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, l, true, expected)
}

func (r *listingRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Listing) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

// update deliberately leaves views and the promotion fields alone: views
// move through IncrementViews and promotion through SetPromotion, so an
// owner edit never clobbers either.
func (r *listingRepo) update(ctx context.Context, l *models.Listing, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE listings SET
            title=$1, description=$2, property_type=$3, bedrooms=$4, bathrooms=$5,
            rent_per_month=$6, deposit=$7, location=$8, latitude=$9, longitude=$10,
            amenities=$11, map_embed=$12, status=$13, is_published=$14, updated_at=NOW()
    `
	args := []interface{}{
		l.Title, l.Description, l.PropertyType, l.Bedrooms, l.Bathrooms,
		l.RentPerMonth, l.Deposit, l.Location, l.Latitude, l.Longitude,
		l.Amenities, l.MapEmbed, l.Status, l.IsPublished,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$15 AND row_version=$16`
		args = append(args, l.ID, expected)
	} else {
		sql += ` WHERE id=$15`
		args = append(args, l.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *listingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var views int64
	err := r.db.QueryRow(ctx, `
        UPDATE listings SET views = views + 1, updated_at = NOW()
        WHERE id = $1
        RETURNING views
    `, id).Scan(&views)
	if err == pgx.ErrNoRows {
		return 0, pgx.ErrNoRows
	}
	return views, err
}

func (r *listingRepo) SetPromotion(ctx context.Context, id uuid.UUID, until time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE listings SET is_promoted = TRUE, promoted_until = $2, updated_at = NOW()
        WHERE id = $1
    `, id, until)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepo) ClearExpiredPromotions(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE listings SET is_promoted = FALSE, updated_at = NOW()
        WHERE is_promoted = TRUE AND promoted_until IS NOT NULL AND promoted_until <= NOW()
    `)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *listingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM listings`).Scan(&n)
	return n, err
}

func (r *listingRepo) CountPublished(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM listings WHERE is_published = TRUE`).Scan(&n)
	return n, err
}

func (r *listingRepo) ListRecent(ctx context.Context, limit int) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+" ORDER BY l.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func baseSelectListing() string {
	return `
        SELECT
            l.id, l.owner_id, l.title, l.slug, l.description, l.property_type,
            l.bedrooms, l.bathrooms, l.rent_per_month, l.deposit, l.location,
            l.latitude, l.longitude, l.amenities, l.map_embed, l.status,
            l.is_published, l.is_promoted, l.promoted_until, l.views,
            l.created_at, l.updated_at, l.row_version
        FROM listings l
    `
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Title,
		&l.Slug,
		&l.Description,
		&l.PropertyType,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.RentPerMonth,
		&l.Deposit,
		&l.Location,
		&l.Latitude,
		&l.Longitude,
		&l.Amenities,
		&l.MapEmbed,
		&l.Status,
		&l.IsPublished,
		&l.IsPromoted,
		&l.PromotedUntil,
		&l.Views,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
