package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type VerificationDocumentRepository interface {
	// Upsert keeps at most one document per user; a resubmission replaces
	// the previous one and resets it to pending.
	Upsert(ctx context.Context, doc *models.VerificationDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.VerificationDocument, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.VerificationDocument, error)
	ListByStatus(ctx context.Context, status models.DocumentStatusType) ([]*models.VerificationDocument, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatusType, reason string, reviewedAt time.Time) error
	CountPending(ctx context.Context) (int64, error)
}

type verificationDocumentRepo struct {
	db DB
}

func NewVerificationDocumentRepository(db DB) VerificationDocumentRepository {
	return &verificationDocumentRepo{db: db}
}

func (r *verificationDocumentRepo) Upsert(ctx context.Context, doc *models.VerificationDocument) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO verification_documents (
            id, user_id, document_url, status, rejection_reason, submitted_at
        ) VALUES ($1,$2,$3,$4,'', NOW())
        ON CONFLICT (user_id) DO UPDATE SET
            document_url = EXCLUDED.document_url,
            status = EXCLUDED.status,
            rejection_reason = '',
            submitted_at = NOW(),
            reviewed_at = NULL
    `, doc.ID, doc.UserID, doc.DocumentURL, doc.Status)
	return err
}

func (r *verificationDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.VerificationDocument, error) {
	row := r.db.QueryRow(ctx, baseSelectVerificationDocument()+" WHERE d.id = $1", id)
	return scanVerificationDocument(row)
}

func (r *verificationDocumentRepo) GetByUser(ctx context.Context, userID uuid.UUID) (*models.VerificationDocument, error) {
	row := r.db.QueryRow(ctx, baseSelectVerificationDocument()+" WHERE d.user_id = $1", userID)
	return scanVerificationDocument(row)
}

func (r *verificationDocumentRepo) ListByStatus(ctx context.Context, status models.DocumentStatusType) ([]*models.VerificationDocument, error) {
	rows, err := r.db.Query(ctx,
		baseSelectVerificationDocument()+" WHERE d.status = $1 ORDER BY d.submitted_at ASC",
		status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.VerificationDocument
	for rows.Next() {
		d, err := scanVerificationDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *verificationDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DocumentStatusType, reason string, reviewedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE verification_documents
        SET status=$2, rejection_reason=$3, reviewed_at=$4
        WHERE id=$1
    `, id, status, reason, reviewedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *verificationDocumentRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM verification_documents WHERE status = $1`,
		models.DocumentStatusPending).Scan(&n)
	return n, err
}

func baseSelectVerificationDocument() string {
	return `
        SELECT
            d.id, d.user_id, d.document_url, d.status, d.rejection_reason,
            d.submitted_at, d.reviewed_at
        FROM verification_documents d
    `
}

func scanVerificationDocument(row pgx.Row) (*models.VerificationDocument, error) {
	var d models.VerificationDocument
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DocumentURL,
		&d.Status,
		&d.RejectionReason,
		&d.SubmittedAt,
		&d.ReviewedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
