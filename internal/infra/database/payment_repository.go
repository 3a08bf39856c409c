package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (subscription_id, amount, currency, status,
			payment_method, transaction_id, processor_response, processed_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		p.SubscriptionID, p.Amount, p.Currency, p.Status, p.PaymentMethod,
		p.TransactionID, p.ProcessorResponse, p.ProcessedAt, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)

	return mapPQError(err)
}

const paymentColumns = `id, subscription_id, amount, currency, status,
	payment_method, transaction_id, processor_response, processed_at,
	created_at, updated_at`

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *PaymentRepository) ListBySubscriptionID(ctx context.Context, subscriptionID int64) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE subscription_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, subscriptionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	query := `
		UPDATE payments
		SET status = $1, transaction_id = $2, processor_response = $3,
			processed_at = $4, updated_at = $5
		WHERE id = $6
	`

	res, err := r.DB.ExecContext(ctx, query,
		p.Status, p.TransactionID, p.ProcessorResponse, p.ProcessedAt, p.UpdatedAt, p.ID)
	if err != nil {
		return mapPQError(err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanPayment(row rowScanner) (*entity.Payment, error) {
	var p entity.Payment
	var transactionID sql.NullString
	var processedAt sql.NullTime

	err := row.Scan(&p.ID, &p.SubscriptionID, &p.Amount, &p.Currency, &p.Status,
		&p.PaymentMethod, &transactionID, &p.ProcessorResponse, &processedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	p.TransactionID = strPtr(transactionID)
	p.ProcessedAt = timePtr(processedAt)
	return &p, nil
}
