package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// TypeTotal is a revenue aggregate bucketed by payment type.
type TypeTotal struct {
	Type  models.PaymentType `json:"type"`
	Total float64            `json:"total"`
	Count int64              `json:"count"`
}

// DailyTotal is a revenue aggregate bucketed by calendar day.
type DailyTotal struct {
	Day   time.Time `json:"day"`
	Total float64   `json:"total"`
}

type PaymentRepository interface {
	// Create inserts the payment and reports whether the row was actually
	// written. A duplicate reference is swallowed and reported as false.
	Create(ctx context.Context, p *models.Payment) (bool, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	HasCompleted(ctx context.Context, userID uuid.UUID, t models.PaymentType, listingID *uuid.UUID) (bool, error)

	TotalCompleted(ctx context.Context) (float64, error)
	TotalCompletedBetween(ctx context.Context, from, to time.Time) (float64, error)
	CountCompleted(ctx context.Context) (int64, error)
	TotalsByType(ctx context.Context) ([]TypeTotal, error)
	DailyTotalsSince(ctx context.Context, since time.Time) ([]DailyTotal, error)
	ListRecentCompleted(ctx context.Context, limit int) ([]*models.Payment, error)
}

type paymentRepo struct {
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

// Payment references are unique; re-verifying the same transaction must not
// record revenue twice, so the insert is a no-op on conflict.
func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO payments (
            id, user_id, listing_id, amount, payment_type, status,
            payment_reference, payment_method, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW())
        ON CONFLICT (payment_reference) DO NOTHING
    `,
		p.ID,
		p.UserID,
		p.ListingID,
		p.Amount,
		p.Type,
		p.Status,
		p.Reference,
		p.Method,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *paymentRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE payment_reference = $1)`,
		reference).Scan(&exists)
	return exists, err
}

func (r *paymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPayment()+" WHERE p.user_id = $1 ORDER BY p.created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, baseSelectPayment()+" ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func (r *paymentRepo) HasCompleted(ctx context.Context, userID uuid.UUID, t models.PaymentType, listingID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM payments
            WHERE user_id = $1 AND payment_type = $2 AND status = $3
              AND ($4::uuid IS NULL OR listing_id = $4)
        )
    `, userID, t, models.PaymentStatusCompleted, listingID).Scan(&exists)
	return exists, err
}

func (r *paymentRepo) TotalCompleted(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1
    `, models.PaymentStatusCompleted).Scan(&total)
	return total, err
}

func (r *paymentRepo) TotalCompletedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0) FROM payments
        WHERE status = $1 AND created_at >= $2 AND created_at < $3
    `, models.PaymentStatusCompleted, from, to).Scan(&total)
	return total, err
}

func (r *paymentRepo) CountCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM payments WHERE status = $1
    `, models.PaymentStatusCompleted).Scan(&n)
	return n, err
}

func (r *paymentRepo) TotalsByType(ctx context.Context) ([]TypeTotal, error) {
	rows, err := r.db.Query(ctx, `
        SELECT payment_type, COALESCE(SUM(amount), 0), COUNT(*)
        FROM payments WHERE status = $1
        GROUP BY payment_type
        ORDER BY payment_type
    `, models.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TypeTotal
	for rows.Next() {
		var t TypeTotal
		if err := rows.Scan(&t.Type, &t.Total, &t.Count); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *paymentRepo) DailyTotalsSince(ctx context.Context, since time.Time) ([]DailyTotal, error) {
	rows, err := r.db.Query(ctx, `
        SELECT DATE_TRUNC('day', created_at) AS day, COALESCE(SUM(amount), 0)
        FROM payments
        WHERE status = $1 AND created_at >= $2
        GROUP BY day
        ORDER BY day
    `, models.PaymentStatusCompleted, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyTotal
	for rows.Next() {
		var d DailyTotal
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *paymentRepo) ListRecentCompleted(ctx context.Context, limit int) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPayment()+" WHERE p.status = $1 ORDER BY p.created_at DESC LIMIT $2",
		models.PaymentStatusCompleted, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func baseSelectPayment() string {
	return `
        SELECT
            p.id, p.user_id, p.listing_id, p.amount, p.payment_type,
            p.status, p.payment_reference, p.payment_method, p.created_at
        FROM payments p
    `
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ListingID,
		&p.Amount,
		&p.Type,
		&p.Status,
		&p.Reference,
		&p.Method,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func collectPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
