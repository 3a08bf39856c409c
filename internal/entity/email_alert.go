package entity

import "time"

// EmailAlert delivery states. Append-only log entity: rows are created
// pending and settle to sent or failed when the dispatch worker reports back.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

type EmailAlert struct {
	ID             int64      `json:"id"`
	BusinessID     int64      `json:"business_id"`
	AlertType      string     `json:"alert_type"` // new_lead, lead_converted, etc.
	RecipientEmail string     `json:"recipient_email"`
	Subject        string     `json:"subject"`
	Content        string     `json:"content"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	DeliveryStatus string     `json:"delivery_status"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewEmailAlert(businessID int64, alertType, recipientEmail, subject, content string) *EmailAlert {
	return &EmailAlert{
		BusinessID:     businessID,
		AlertType:      alertType,
		RecipientEmail: recipientEmail,
		Subject:        subject,
		Content:        content,
		DeliveryStatus: DeliveryPending,
		CreatedAt:      time.Now(),
	}
}
