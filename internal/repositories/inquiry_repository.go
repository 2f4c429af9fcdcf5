package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type InquiryRepository interface {
	Create(ctx context.Context, inq *models.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	// ListForUser returns inquiries the user participates in: ones they
	// created plus ones against listings they own.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inquiry, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.Inquiry, error)
	CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error)
	CountByListingSince(ctx context.Context, listingID uuid.UUID, since time.Time) (int64, error)
}

type inquiryRepo struct {
	db DB
}

func NewInquiryRepository(db DB) InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inq *models.Inquiry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO inquiries (id, listing_id, user_id, message, contact_phone, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, inq.ID, inq.ListingID, inq.UserID, inq.Message, inq.ContactPhone)
	return err
}

func (r *inquiryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	row := r.db.QueryRow(ctx, baseSelectInquiry()+" WHERE q.id = $1", id)
	return scanInquiry(row)
}

func (r *inquiryRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Inquiry, error) {
	rows, err := r.db.Query(ctx, baseSelectInquiry()+`
        WHERE q.user_id = $1
           OR EXISTS (SELECT 1 FROM listings l WHERE l.id = q.listing_id AND l.owner_id = $1)
        ORDER BY q.created_at DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInquiries(rows)
}

func (r *inquiryRepo) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*models.Inquiry, error) {
	rows, err := r.db.Query(ctx,
		baseSelectInquiry()+" WHERE q.listing_id = $1 ORDER BY q.created_at DESC",
		listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInquiries(rows)
}

func (r *inquiryRepo) CountByListing(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE listing_id=$1`, listingID).Scan(&n)
	return n, err
}

func (r *inquiryRepo) CountByListingSince(ctx context.Context, listingID uuid.UUID, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE listing_id=$1 AND created_at >= $2`,
		listingID, since).Scan(&n)
	return n, err
}

func baseSelectInquiry() string {
	return `
        SELECT q.id, q.listing_id, q.user_id, q.message, q.contact_phone, q.created_at
        FROM inquiries q
    `
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	var q models.Inquiry
	err := row.Scan(&q.ID, &q.ListingID, &q.UserID, &q.Message, &q.ContactPhone, &q.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func collectInquiries(rows pgx.Rows) ([]*models.Inquiry, error) {
	var out []*models.Inquiry
	for rows.Next() {
		q, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
