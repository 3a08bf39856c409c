package entity

import "time"

// PlatformAccount binds a business to one external advertising or listing
// platform. Credentials and settings are opaque to this layer; the platform
// integration that owns them knows their shape.
type PlatformAccount struct {
	ID           int64        `json:"id"`
	BusinessID   int64        `json:"business_id"`
	PlatformType PlatformType `json:"platform_type"`
	AccountID    string       `json:"account_id"`
	AccountName  string       `json:"account_name"`
	Credentials  Payload      `json:"credentials"`
	Settings     Payload      `json:"settings"`
	IsActive     bool         `json:"is_active"`
	LastSync     *time.Time   `json:"last_sync,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func NewPlatformAccount(businessID int64, platformType PlatformType, accountID, accountName string, credentials, settings Payload) *PlatformAccount {
	if credentials == nil {
		credentials = Payload{}
	}
	if settings == nil {
		settings = Payload{}
	}
	now := time.Now()
	return &PlatformAccount{
		BusinessID:   businessID,
		PlatformType: platformType,
		AccountID:    accountID,
		AccountName:  accountName,
		Credentials:  credentials,
		Settings:     settings,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (a *PlatformAccount) Touch() {
	a.UpdatedAt = time.Now()
}
