package entity

import "time"

// Business is the aggregate root everything else hangs off: services,
// platform accounts, leads, subscriptions, analytics.
type Business struct {
	ID          int64            `json:"id"`
	OwnerID     int64            `json:"owner_id"`
	Name        string           `json:"name"`
	Category    BusinessCategory `json:"category"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	ZipCode     string           `json:"zip_code"`
	Phone       *string          `json:"phone,omitempty"`
	Website     *string          `json:"website,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func NewBusiness(ownerID int64, name string, category BusinessCategory, description, address, city, state, zipCode string, phone, website *string) *Business {
	if category == "" {
		category = CategoryOther
	}
	now := time.Now()
	return &Business{
		OwnerID:     ownerID,
		Name:        name,
		Category:    category,
		Description: description,
		Address:     address,
		City:        city,
		State:       state,
		ZipCode:     zipCode,
		Phone:       phone,
		Website:     website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *Business) Touch() {
	b.UpdatedAt = time.Now()
}
