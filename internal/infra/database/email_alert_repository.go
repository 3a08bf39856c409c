package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type EmailAlertRepository struct {
	DB *sql.DB
}

func NewEmailAlertRepository(db *sql.DB) *EmailAlertRepository {
	return &EmailAlertRepository{DB: db}
}

func (r *EmailAlertRepository) Create(ctx context.Context, a *entity.EmailAlert) error {
	query := `
		INSERT INTO email_alerts (business_id, alert_type, recipient_email,
			subject, content, sent_at, delivery_status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		a.BusinessID, a.AlertType, a.RecipientEmail, a.Subject, a.Content,
		a.SentAt, a.DeliveryStatus, a.ErrorMessage, a.CreatedAt,
	).Scan(&a.ID)

	return mapPQError(err)
}

const emailAlertColumns = `id, business_id, alert_type, recipient_email,
	subject, content, sent_at, delivery_status, error_message, created_at`

func (r *EmailAlertRepository) FindByID(ctx context.Context, id int64) (*entity.EmailAlert, error) {
	query := `SELECT ` + emailAlertColumns + ` FROM email_alerts WHERE id = $1`

	var a entity.EmailAlert
	var sentAt sql.NullTime
	var errorMessage sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.BusinessID, &a.AlertType, &a.RecipientEmail,
		&a.Subject, &a.Content, &sentAt, &a.DeliveryStatus, &errorMessage,
		&a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.SentAt = timePtr(sentAt)
	a.ErrorMessage = strPtr(errorMessage)
	return &a, nil
}

func (r *EmailAlertRepository) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	query := `
		UPDATE email_alerts
		SET delivery_status = $1, sent_at = $2, error_message = NULL
		WHERE id = $3
	`

	res, err := r.DB.ExecContext(ctx, query, entity.DeliverySent, sentAt, id)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *EmailAlertRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	// error_message column caps at 1000 chars; SMTP errors can ramble.
	if len(errorMessage) > 1000 {
		errorMessage = errorMessage[:1000]
	}

	query := `
		UPDATE email_alerts
		SET delivery_status = $1, error_message = $2
		WHERE id = $3
	`

	res, err := r.DB.ExecContext(ctx, query, entity.DeliveryFailed, errorMessage, id)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
