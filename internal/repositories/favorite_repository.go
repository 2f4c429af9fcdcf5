package repositories

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type FavoriteRepository interface {
	// Create saves the favorite and reports whether a new row was written.
	// Saving the same listing twice is a silent no-op.
	Create(ctx context.Context, f *models.Favorite) (bool, error)
	Delete(ctx context.Context, userID, listingID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error)
	Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error)
	CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error)
}

type favoriteRepo struct {
	db DB
}

func NewFavoriteRepository(db DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

func (r *favoriteRepo) Create(ctx context.Context, f *models.Favorite) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO favorites (id, user_id, listing_id, created_at)
        VALUES ($1,$2,$3, NOW())
        ON CONFLICT (user_id, listing_id) DO NOTHING
    `, f.ID, f.UserID, f.ListingID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *favoriteRepo) Delete(ctx context.Context, userID, listingID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id=$1 AND listing_id=$2`,
		userID, listingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Favorite, error) {
	rows, err := r.db.Query(ctx, `
        SELECT f.id, f.user_id, f.listing_id, f.created_at
        FROM favorites f
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ListingID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *favoriteRepo) Exists(ctx context.Context, userID, listingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id=$1 AND listing_id=$2)
    `, userID, listingID).Scan(&exists)
	return exists, err
}

func (r *favoriteRepo) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM favorites WHERE listing_id=$1`, listingID).Scan(&n)
	return n, err
}
