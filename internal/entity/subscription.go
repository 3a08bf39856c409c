package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Subscription struct {
	ID           int64              `json:"id"`
	BusinessID   int64              `json:"business_id"`
	PlanName     string             `json:"plan_name"`
	Price        decimal.Decimal    `json:"price"`
	BillingCycle string             `json:"billing_cycle"` // monthly, yearly
	Status       SubscriptionStatus `json:"status"`
	Features     StringList         `json:"features"`
	StartedAt    time.Time          `json:"started_at"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
	CancelledAt  *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func NewSubscription(businessID int64, planName string, price decimal.Decimal, billingCycle string, features StringList) *Subscription {
	if features == nil {
		features = StringList{}
	}
	now := time.Now()
	return &Subscription{
		BusinessID:   businessID,
		PlanName:     planName,
		Price:        price,
		BillingCycle: billingCycle,
		Status:       SubscriptionStatusActive,
		Features:     features,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TransitionTo applies the subscription lifecycle; moving into cancelled
// stamps CancelledAt once.
func (s *Subscription) TransitionTo(next SubscriptionStatus) error {
	if next == s.Status {
		return nil
	}
	if !s.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	s.Status = next
	if next == SubscriptionStatusCancelled && s.CancelledAt == nil {
		now := time.Now()
		s.CancelledAt = &now
	}
	s.Touch()
	return nil
}

func (s *Subscription) Touch() {
	s.UpdatedAt = time.Now()
}
