package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (business_id, name, description, price_min, price_max,
			duration_hours, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		s.BusinessID, s.Name, s.Description, s.PriceMin, s.PriceMax,
		s.DurationHours, s.IsActive, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)

	return mapPQError(err)
}

const serviceColumns = `id, business_id, name, description, price_min, price_max,
	duration_hours, is_active, created_at, updated_at`

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	s, err := scanService(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *ServiceRepository) ListByBusinessID(ctx context.Context, businessID int64) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE business_id = $1 ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services
		SET name = $1, description = $2, price_min = $3, price_max = $4,
			duration_hours = $5, is_active = $6, updated_at = $7
		WHERE id = $8
	`

	res, err := r.DB.ExecContext(ctx, query,
		s.Name, s.Description, s.PriceMin, s.PriceMax,
		s.DurationHours, s.IsActive, s.UpdatedAt, s.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*entity.Service, error) {
	var s entity.Service
	var priceMin, priceMax decimal.NullDecimal
	var duration sql.NullInt64

	err := row.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Description,
		&priceMin, &priceMax, &duration, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.PriceMin = decPtr(priceMin)
	s.PriceMax = decPtr(priceMax)
	s.DurationHours = intPtr(duration)
	return &s, nil
}
