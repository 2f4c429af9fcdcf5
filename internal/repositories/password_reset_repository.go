package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, t *models.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type passwordResetRepo struct {
	db DB
}

func NewPasswordResetRepository(db DB) PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, t *models.PasswordResetToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO password_reset_tokens (id, user_id, token, expires_at, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, t.ID, t.UserID, t.Token, t.ExpiresAt)
	return err
}

func (r *passwordResetRepo) GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT t.id, t.user_id, t.token, t.expires_at, t.used_at, t.created_at
        FROM password_reset_tokens t
        WHERE t.token = $1
    `, token)

	var t models.PasswordResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = $2 WHERE id = $1`, id, usedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *passwordResetRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE expires_at < NOW() OR used_at IS NOT NULL`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
