package repositories

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	ListByInquiry(ctx context.Context, inquiryID uuid.UUID) ([]*models.Message, error)
	// MarkReadExceptSender flags every message in the thread not written by
	// the reader as read.
	MarkReadExceptSender(ctx context.Context, inquiryID, readerID uuid.UUID) (int64, error)
	CountUnreadForUser(ctx context.Context, inquiryID, userID uuid.UUID) (int64, error)
}

type messageRepo struct {
	db DB
}

func NewMessageRepository(db DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *models.Message) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO messages (id, inquiry_id, sender_id, content, is_read, created_at)
        VALUES ($1,$2,$3,$4,FALSE, NOW())
    `, m.ID, m.InquiryID, m.SenderID, m.Content)
	return err
}

func (r *messageRepo) ListByInquiry(ctx context.Context, inquiryID uuid.UUID) ([]*models.Message, error) {
	rows, err := r.db.Query(ctx, `
        SELECT m.id, m.inquiry_id, m.sender_id, m.content, m.is_read, m.created_at
        FROM messages m
        WHERE m.inquiry_id = $1
        ORDER BY m.created_at ASC
    `, inquiryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messageRepo) MarkReadExceptSender(ctx context.Context, inquiryID, readerID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE messages SET is_read = TRUE
        WHERE inquiry_id = $1 AND sender_id <> $2 AND is_read = FALSE
    `, inquiryID, readerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *messageRepo) CountUnreadForUser(ctx context.Context, inquiryID, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM messages
        WHERE inquiry_id = $1 AND sender_id <> $2 AND is_read = FALSE
    `, inquiryID, userID).Scan(&n)
	return n, err
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.InquiryID, &m.SenderID, &m.Content, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
