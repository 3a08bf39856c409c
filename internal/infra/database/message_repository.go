package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (lead_id, user_id, sender_name, sender_email,
			content, is_from_business, is_read, attachments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		m.LeadID, m.UserID, m.SenderName, m.SenderEmail,
		m.Content, m.IsFromBusiness, m.IsRead, m.Attachments, m.CreatedAt,
	).Scan(&m.ID)

	return mapPQError(err)
}

const messageColumns = `id, lead_id, user_id, sender_name, sender_email,
	content, is_from_business, is_read, attachments, created_at`

func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*entity.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	m, err := scanMessage(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}

func (r *MessageRepository) ListByLeadID(ctx context.Context, leadID int64) ([]*entity.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE lead_id = $1 ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead flips the one mutable bit a message has.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanMessage(row rowScanner) (*entity.Message, error) {
	var m entity.Message
	var userID sql.NullInt64
	var senderEmail sql.NullString

	err := row.Scan(&m.ID, &m.LeadID, &userID, &m.SenderName, &senderEmail,
		&m.Content, &m.IsFromBusiness, &m.IsRead, &m.Attachments, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	m.UserID = int64Ptr(userID)
	m.SenderEmail = strPtr(senderEmail)
	return &m, nil
}
