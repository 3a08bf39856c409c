package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, phone, password_hash,
			is_active, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Phone,
		u.PasswordHash,
		u.IsActive,
		u.EmailVerified,
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)

	return mapPQError(err)
}

const userColumns = `id, email, first_name, last_name, phone, password_hash,
	is_active, email_verified, created_at, updated_at`

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, phone = $3,
			is_active = $4, email_verified = $5, updated_at = $6
		WHERE id = $7
	`

	res, err := r.DB.ExecContext(ctx, query,
		u.FirstName, u.LastName, u.Phone, u.IsActive, u.EmailVerified, u.UpdatedAt, u.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*entity.User, error) {
	var u entity.User
	var phone sql.NullString

	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &phone,
		&u.PasswordHash, &u.IsActive, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.Phone = strPtr(phone)
	return &u, nil
}
