package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead(1, 2, "tt-ext-9", "Jane Roe", "Fix leaky faucet", "Kitchen faucet drips", "Austin, TX")

	assert.Equal(t, LeadStatusNew, lead.Status)
	assert.Equal(t, lead.CreatedAt, lead.UpdatedAt)
	assert.NotNil(t, lead.PlatformData)
	assert.Nil(t, lead.ConvertedAt)
}

func TestLeadTransitionStampsConvertedAt(t *testing.T) {
	lead := NewLead(1, 2, "x", "n", "t", "d", "l")
	lead.Status = LeadStatusQualified

	assert.NoError(t, lead.TransitionTo(LeadStatusConverted))
	assert.Equal(t, LeadStatusConverted, lead.Status)
	assert.NotNil(t, lead.ConvertedAt)
}

func TestLeadTransitionSameStatusIsNoop(t *testing.T) {
	lead := NewLead(1, 2, "x", "n", "t", "d", "l")
	before := lead.UpdatedAt

	assert.NoError(t, lead.TransitionTo(LeadStatusNew))
	assert.Equal(t, before, lead.UpdatedAt)
}

func TestLeadTransitionRejected(t *testing.T) {
	lead := NewLead(1, 2, "x", "n", "t", "d", "l")

	err := lead.TransitionTo(LeadStatusConverted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, LeadStatusNew, lead.Status)
	assert.Nil(t, lead.ConvertedAt)
}

func TestPaymentSettleStampsProcessedAt(t *testing.T) {
	p := NewPayment(7, decimal.RequireFromString("49.90"), "", "card")
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.Nil(t, p.ProcessedAt)

	assert.NoError(t, p.TransitionTo(PaymentStatusCompleted))
	assert.NotNil(t, p.ProcessedAt)

	assert.NoError(t, p.TransitionTo(PaymentStatusRefunded))
	assert.ErrorIs(t, p.TransitionTo(PaymentStatusCompleted), ErrInvalidTransition)
}

func TestPaymentFailedStampsProcessedAt(t *testing.T) {
	p := NewPayment(7, decimal.RequireFromString("10.00"), "EUR", "bank_transfer")

	assert.NoError(t, p.TransitionTo(PaymentStatusFailed))
	assert.NotNil(t, p.ProcessedAt)
	assert.ErrorIs(t, p.TransitionTo(PaymentStatusCompleted), ErrInvalidTransition)
}

func TestSubscriptionCancelStampsOnce(t *testing.T) {
	s := NewSubscription(3, "pro", decimal.RequireFromString("29.00"), "monthly", nil)
	assert.Equal(t, SubscriptionStatusActive, s.Status)
	assert.NotNil(t, s.Features)

	assert.NoError(t, s.TransitionTo(SubscriptionStatusCancelled))
	assert.NotNil(t, s.CancelledAt)
	first := *s.CancelledAt

	// Repeating the current status changes nothing.
	assert.NoError(t, s.TransitionTo(SubscriptionStatusCancelled))
	assert.Equal(t, first, *s.CancelledAt)
}

func TestSubscriptionSuspendResume(t *testing.T) {
	s := NewSubscription(3, "basic", decimal.RequireFromString("9.90"), "monthly", StringList{"alerts"})

	assert.NoError(t, s.TransitionTo(SubscriptionStatusSuspended))
	assert.NoError(t, s.TransitionTo(SubscriptionStatusActive))
	assert.NoError(t, s.TransitionTo(SubscriptionStatusExpired))
	assert.ErrorIs(t, s.TransitionTo(SubscriptionStatusActive), ErrInvalidTransition)
}

func TestRecommendationDismissIdempotent(t *testing.T) {
	rec := NewRecommendation(5, "budget_optimization", "Raise budget", "Spend is capped daily", 0, nil, nil)
	assert.Equal(t, PriorityHigh, rec.Priority)
	assert.NotNil(t, rec.Data)
	assert.False(t, rec.IsDismissed)

	rec.Dismiss()
	assert.True(t, rec.IsDismissed)
	first := *rec.DismissedAt

	time.Sleep(time.Millisecond)
	rec.Dismiss()
	assert.Equal(t, first, *rec.DismissedAt)
}

func TestFactoriesStampMatchingTimestamps(t *testing.T) {
	u := NewUser("a@b.com", "A", "B", nil, "hash")
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.True(t, u.IsActive)
	assert.False(t, u.EmailVerified)

	c := NewCampaign(1, "spring", "ad", nil, nil, nil, nil)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	assert.True(t, c.IsActive)
	assert.NotNil(t, c.TargetKeywords)
	assert.NotNil(t, c.Settings)
}
