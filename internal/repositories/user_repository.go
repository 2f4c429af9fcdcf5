package repositories

import (
	"context"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListRecent(ctx context.Context, limit int) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
	SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	SetVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role models.RoleType) (int64, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, email, password_hash, first_name, last_name, phone_number,
            role, is_staff, is_active, is_verified, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,FALSE, NOW(), NOW())
    `,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.PhoneNumber,
		u.Role,
		u.IsStaff,
		u.IsActive,
	)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE u.id = $1", id)
	return scanUser(row)
}

// GetByEmail matches case-insensitively so sign-in is not sensitive to how
// the address was typed at registration.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE LOWER(u.email) = LOWER($1)", email)
	return scanUser(row)
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY u.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepo) ListRecent(ctx context.Context, limit int) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser()+" ORDER BY u.created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users SET
            first_name=$2, last_name=$3, phone_number=$4, updated_at=NOW()
        WHERE id=$1
    `, u.ID, u.FirstName, u.LastName, u.PhoneNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepo) SetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users SET password_hash=$2, updated_at=NOW() WHERE id=$1
    `, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users SET is_active=$2, updated_at=NOW() WHERE id=$1
    `, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepo) SetVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users SET is_verified=TRUE, verification_date=$2, updated_at=NOW() WHERE id=$1
    `, id, verifiedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *userRepo) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}

func baseSelectUser() string {
	return `
        SELECT
            u.id, u.email, u.password_hash, u.first_name, u.last_name,
            u.phone_number, u.role, u.is_staff, u.is_active, u.is_verified,
            u.verification_date, u.created_at, u.updated_at
        FROM users u
    `
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.PhoneNumber,
		&u.Role,
		&u.IsStaff,
		&u.IsActive,
		&u.IsVerified,
		&u.VerificationDate,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
