package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is something a business sells. The price range invariant
// (PriceMin <= PriceMax) is enforced by the use-case layer, not by storage.
type Service struct {
	ID            int64            `json:"id"`
	BusinessID    int64            `json:"business_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	PriceMin      *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax      *decimal.Decimal `json:"price_max,omitempty"`
	DurationHours *int             `json:"duration_hours,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewService(businessID int64, name, description string, priceMin, priceMax *decimal.Decimal, durationHours *int) *Service {
	now := time.Now()
	return &Service{
		BusinessID:    businessID,
		Name:          name,
		Description:   description,
		PriceMin:      priceMin,
		PriceMax:      priceMax,
		DurationHours: durationHours,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PriceRangeValid reports PriceMin <= PriceMax when both ends are set.
func (s *Service) PriceRangeValid() bool {
	if s.PriceMin == nil || s.PriceMax == nil {
		return true
	}
	return !s.PriceMin.GreaterThan(*s.PriceMax)
}

func (s *Service) Touch() {
	s.UpdatedAt = time.Now()
}
