package entity

import "time"

// Message is one entry in a lead conversation. Immutable once created except
// for the read flag; UserID is nil when the sender is the customer or the
// platform itself.
type Message struct {
	ID             int64      `json:"id"`
	LeadID         int64      `json:"lead_id"`
	UserID         *int64     `json:"user_id,omitempty"`
	SenderName     string     `json:"sender_name"`
	SenderEmail    *string    `json:"sender_email,omitempty"`
	Content        string     `json:"content"`
	IsFromBusiness bool       `json:"is_from_business"`
	IsRead         bool       `json:"is_read"`
	Attachments    StringList `json:"attachments"`
	CreatedAt      time.Time  `json:"created_at"`
}

func NewMessage(leadID int64, userID *int64, senderName string, senderEmail *string, content string, isFromBusiness bool, attachments StringList) *Message {
	if attachments == nil {
		attachments = StringList{}
	}
	return &Message{
		LeadID:         leadID,
		UserID:         userID,
		SenderName:     senderName,
		SenderEmail:    senderEmail,
		Content:        content,
		IsFromBusiness: isFromBusiness,
		Attachments:    attachments,
		CreatedAt:      time.Now(),
	}
}
