package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type BusinessRepository struct {
	DB *sql.DB
}

func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

func (r *BusinessRepository) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (owner_id, name, category, description, address,
			city, state, zip_code, phone, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		b.OwnerID, b.Name, b.Category, b.Description, b.Address,
		b.City, b.State, b.ZipCode, b.Phone, b.Website, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)

	return mapPQError(err)
}

const businessColumns = `id, owner_id, name, category, description, address,
	city, state, zip_code, phone, website, created_at, updated_at`

func (r *BusinessRepository) FindByID(ctx context.Context, id int64) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *BusinessRepository) FindByOwnerID(ctx context.Context, ownerID int64) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID))
}

func (r *BusinessRepository) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $1, category = $2, description = $3, address = $4, city = $5,
			state = $6, zip_code = $7, phone = $8, website = $9, updated_at = $10
		WHERE id = $11
	`

	res, err := r.DB.ExecContext(ctx, query,
		b.Name, b.Category, b.Description, b.Address, b.City,
		b.State, b.ZipCode, b.Phone, b.Website, b.UpdatedAt, b.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *BusinessRepository) scanOne(row *sql.Row) (*entity.Business, error) {
	var b entity.Business
	var phone, website sql.NullString

	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Category, &b.Description,
		&b.Address, &b.City, &b.State, &b.ZipCode, &phone, &website,
		&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.Phone = strPtr(phone)
	b.Website = strPtr(website)
	return &b, nil
}
