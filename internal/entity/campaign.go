package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Campaign struct {
	ID                int64            `json:"id"`
	PlatformAccountID int64            `json:"platform_account_id"`
	Name              string           `json:"name"`
	CampaignType      string           `json:"campaign_type"` // listing, ad, etc.
	Budget            *decimal.Decimal `json:"budget,omitempty"`
	TargetKeywords    StringList       `json:"target_keywords"`
	TargetLocation    Payload          `json:"target_location"`
	Settings          Payload          `json:"settings"`
	IsActive          bool             `json:"is_active"`
	StartedAt         *time.Time       `json:"started_at,omitempty"`
	EndedAt           *time.Time       `json:"ended_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func NewCampaign(platformAccountID int64, name, campaignType string, budget *decimal.Decimal, keywords StringList, location, settings Payload) *Campaign {
	if keywords == nil {
		keywords = StringList{}
	}
	if location == nil {
		location = Payload{}
	}
	if settings == nil {
		settings = Payload{}
	}
	now := time.Now()
	return &Campaign{
		PlatformAccountID: platformAccountID,
		Name:              name,
		CampaignType:      campaignType,
		Budget:            budget,
		TargetKeywords:    keywords,
		TargetLocation:    location,
		Settings:          settings,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (c *Campaign) Touch() {
	c.UpdatedAt = time.Now()
}
