package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Analytics is a per-date (optionally per-platform) aggregate snapshot.
// Append-mostly: one row per (business, date, platform) bucket, upserted by
// the sync job, never referenced by other entities and never touched after
// the day closes. No UpdatedAt on purpose.
type Analytics struct {
	ID           int64         `json:"id"`
	BusinessID   int64         `json:"business_id"`
	Date         time.Time     `json:"date"`
	PlatformType *PlatformType `json:"platform_type,omitempty"`

	LeadsCount          int             `json:"leads_count"`
	QualifiedLeadsCount int             `json:"qualified_leads_count"`
	ConvertedLeadsCount int             `json:"converted_leads_count"`
	TotalSpend          decimal.Decimal `json:"total_spend"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	// CostPerLead keeps 2 decimal places; ConversionRate keeps 4, a ratio
	// in [0,1] by convention.
	CostPerLead    *decimal.Decimal `json:"cost_per_lead,omitempty"`
	ConversionRate *decimal.Decimal `json:"conversion_rate,omitempty"`

	Metrics   Payload   `json:"metrics"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAnalytics(businessID int64, date time.Time, platformType *PlatformType) *Analytics {
	return &Analytics{
		BusinessID:   businessID,
		Date:         date,
		PlatformType: platformType,
		TotalSpend:   MoneyZero(),
		TotalRevenue: MoneyZero(),
		Metrics:      Payload{},
		CreatedAt:    time.Now(),
	}
}
