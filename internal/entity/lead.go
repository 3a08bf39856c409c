package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is the central transactional entity: one inbound request from a
// customer on an external platform. PlatformLeadID is the platform's own
// identifier and is unique per platform account, which is what deduplicates
// repeated syncs of the same lead.
type Lead struct {
	ID                int64  `json:"id"`
	BusinessID        int64  `json:"business_id"`
	PlatformAccountID int64  `json:"platform_account_id"`
	CampaignID        *int64 `json:"campaign_id,omitempty"`
	ServiceID         *int64 `json:"service_id,omitempty"`

	CustomerName  string  `json:"customer_name"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`

	Title       string           `json:"title"`
	Description string           `json:"description"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	Location    string           `json:"location"`
	Status      LeadStatus       `json:"status"`

	PlatformLeadID string  `json:"platform_lead_id"`
	PlatformData   Payload `json:"platform_data"`

	Cost            *decimal.Decimal `json:"cost,omitempty"`
	ConversionValue *decimal.Decimal `json:"conversion_value,omitempty"`
	ConvertedAt     *time.Time       `json:"converted_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func NewLead(businessID, platformAccountID int64, platformLeadID, customerName, title, description, location string) *Lead {
	now := time.Now()
	return &Lead{
		BusinessID:        businessID,
		PlatformAccountID: platformAccountID,
		PlatformLeadID:    platformLeadID,
		CustomerName:      customerName,
		Title:             title,
		Description:       description,
		Location:          location,
		Status:            LeadStatusNew,
		PlatformData:      Payload{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// TransitionTo moves the lead through the funnel. Reaching converted stamps
// ConvertedAt. Setting the current status again is a no-op.
func (l *Lead) TransitionTo(next LeadStatus) error {
	if next == l.Status {
		return nil
	}
	if !l.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	l.Status = next
	if next == LeadStatusConverted {
		now := time.Now()
		l.ConvertedAt = &now
	}
	l.Touch()
	return nil
}

func (l *Lead) Touch() {
	l.UpdatedAt = time.Now()
}
