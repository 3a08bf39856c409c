package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type PlatformAccountRepository struct {
	DB *sql.DB
}

func NewPlatformAccountRepository(db *sql.DB) *PlatformAccountRepository {
	return &PlatformAccountRepository{DB: db}
}

func (r *PlatformAccountRepository) Create(ctx context.Context, a *entity.PlatformAccount) error {
	query := `
		INSERT INTO platform_accounts (business_id, platform_type, account_id,
			account_name, credentials, settings, is_active, last_sync, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		a.BusinessID, a.PlatformType, a.AccountID, a.AccountName,
		a.Credentials, a.Settings, a.IsActive, a.LastSync, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)

	return mapPQError(err)
}

const platformAccountColumns = `id, business_id, platform_type, account_id,
	account_name, credentials, settings, is_active, last_sync, created_at, updated_at`

func (r *PlatformAccountRepository) FindByID(ctx context.Context, id int64) (*entity.PlatformAccount, error) {
	query := `SELECT ` + platformAccountColumns + ` FROM platform_accounts WHERE id = $1`

	a, err := scanPlatformAccount(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return a, err
}

func (r *PlatformAccountRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.PlatformAccount, error) {
	query := `SELECT ` + platformAccountColumns + ` FROM platform_accounts WHERE business_id = $1 ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*entity.PlatformAccount
	for rows.Next() {
		a, err := scanPlatformAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PlatformAccountRepository) Update(ctx context.Context, a *entity.PlatformAccount) error {
	query := `
		UPDATE platform_accounts
		SET account_name = $1, credentials = $2, settings = $3,
			is_active = $4, last_sync = $5, updated_at = $6
		WHERE id = $7
	`

	res, err := r.DB.ExecContext(ctx, query,
		a.AccountName, a.Credentials, a.Settings, a.IsActive, a.LastSync, a.UpdatedAt, a.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanPlatformAccount(row rowScanner) (*entity.PlatformAccount, error) {
	var a entity.PlatformAccount
	var lastSync sql.NullTime

	err := row.Scan(&a.ID, &a.BusinessID, &a.PlatformType, &a.AccountID,
		&a.AccountName, &a.Credentials, &a.Settings, &a.IsActive, &lastSync,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.LastSync = timePtr(lastSync)
	return &a, nil
}
