package repositories

import (
	"context"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/jackc/pgx/v4"
)

type TokenRepository interface {
	CreateRefreshToken(ctx context.Context, t *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepo struct {
	db DB
}

func NewTokenRepository(db DB) TokenRepository {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) CreateRefreshToken(ctx context.Context, t *models.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO refresh_tokens (id, user_id, token, expires_at, revoked, created_at)
        VALUES ($1,$2,$3,$4,FALSE, NOW())
    `, t.ID, t.UserID, t.Token, t.ExpiresAt)
	return err
}

func (r *tokenRepo) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	row := r.db.QueryRow(ctx, `
        SELECT t.id, t.user_id, t.token, t.expires_at, t.revoked, t.created_at
        FROM refresh_tokens t
        WHERE t.token = $1
    `, token)

	var t models.RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Revoked, &t.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token)
	return err
}

func (r *tokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < NOW() OR revoked = TRUE`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
