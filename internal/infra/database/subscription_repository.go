package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (business_id, plan_name, price, billing_cycle,
			status, features, started_at, expires_at, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		s.BusinessID, s.PlanName, s.Price, s.BillingCycle, s.Status,
		s.Features, s.StartedAt, s.ExpiresAt, s.CancelledAt, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)

	return mapPQError(err)
}

const subscriptionColumns = `id, business_id, plan_name, price, billing_cycle,
	status, features, started_at, expires_at, cancelled_at, created_at, updated_at`

func (r *SubscriptionRepository) FindByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`

	s, err := scanSubscription(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *SubscriptionRepository) FindLastByBusinessID(ctx context.Context, businessID int64) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + `
		FROM subscriptions WHERE business_id = $1
		ORDER BY created_at DESC LIMIT 1`

	s, err := scanSubscription(r.DB.QueryRowContext(ctx, query, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET plan_name = $1, price = $2, billing_cycle = $3, status = $4,
			features = $5, expires_at = $6, cancelled_at = $7, updated_at = $8
		WHERE id = $9
	`

	res, err := r.DB.ExecContext(ctx, query,
		s.PlanName, s.Price, s.BillingCycle, s.Status,
		s.Features, s.ExpiresAt, s.CancelledAt, s.UpdatedAt, s.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanSubscription(row rowScanner) (*entity.Subscription, error) {
	var s entity.Subscription
	var expiresAt, cancelledAt sql.NullTime

	err := row.Scan(&s.ID, &s.BusinessID, &s.PlanName, &s.Price, &s.BillingCycle,
		&s.Status, &s.Features, &s.StartedAt, &expiresAt, &cancelledAt,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.ExpiresAt = timePtr(expiresAt)
	s.CancelledAt = timePtr(cancelledAt)
	return &s, nil
}
