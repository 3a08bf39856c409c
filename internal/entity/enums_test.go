package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to LeadStatus
		ok       bool
	}{
		{LeadStatusNew, LeadStatusContacted, true},
		{LeadStatusContacted, LeadStatusQualified, true},
		{LeadStatusQualified, LeadStatusConverted, true},
		{LeadStatusNew, LeadStatusLost, true},
		{LeadStatusQualified, LeadStatusLost, true},
		{LeadStatusNew, LeadStatusQualified, false}, // no skipping
		{LeadStatusNew, LeadStatusConverted, false},
		{LeadStatusContacted, LeadStatusConverted, false},
		{LeadStatusConverted, LeadStatusLost, false}, // terminal
		{LeadStatusLost, LeadStatusContacted, false}, // terminal
		{LeadStatusContacted, LeadStatusNew, false},  // no going back
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestLeadStatusTerminal(t *testing.T) {
	assert.True(t, LeadStatusConverted.Terminal())
	assert.True(t, LeadStatusLost.Terminal())
	assert.False(t, LeadStatusNew.Terminal())
	assert.False(t, LeadStatusContacted.Terminal())
	assert.False(t, LeadStatusQualified.Terminal())
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCompleted))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusRefunded))

	assert.False(t, PaymentStatusPending.CanTransitionTo(PaymentStatusRefunded))
	assert.False(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusCompleted))
	assert.False(t, PaymentStatusRefunded.CanTransitionTo(PaymentStatusCompleted))
	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusPending))
}

func TestSubscriptionStatusTransitions(t *testing.T) {
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusCancelled))
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusSuspended))
	assert.True(t, SubscriptionStatusActive.CanTransitionTo(SubscriptionStatusExpired))
	assert.True(t, SubscriptionStatusSuspended.CanTransitionTo(SubscriptionStatusActive))
	assert.True(t, SubscriptionStatusSuspended.CanTransitionTo(SubscriptionStatusCancelled))
	assert.True(t, SubscriptionStatusSuspended.CanTransitionTo(SubscriptionStatusExpired))

	// Reactivation is a new subscription, not a transition.
	assert.False(t, SubscriptionStatusCancelled.CanTransitionTo(SubscriptionStatusActive))
	assert.False(t, SubscriptionStatusExpired.CanTransitionTo(SubscriptionStatusActive))
}

func TestEnumValueRejectsUnknownToken(t *testing.T) {
	_, err := LeadStatus("archived").Value()
	assert.Error(t, err)

	_, err = PlatformType("angieslist").Value()
	assert.Error(t, err)

	v, err := LeadStatusQualified.Value()
	assert.NoError(t, err)
	assert.Equal(t, "qualified", v)
}

func TestEnumScanRejectsUnknownToken(t *testing.T) {
	var s LeadStatus
	assert.NoError(t, s.Scan("contacted"))
	assert.Equal(t, LeadStatusContacted, s)

	assert.NoError(t, s.Scan([]byte("lost")))
	assert.Equal(t, LeadStatusLost, s)

	assert.Error(t, s.Scan("archived"))
	assert.Error(t, s.Scan(42))

	var p PlatformType
	assert.NoError(t, p.Scan("google_ads"))
	assert.Equal(t, PlatformGoogleAds, p)
	assert.Error(t, p.Scan("bing_ads"))
}

func TestPlatformTypesCoversAllTokens(t *testing.T) {
	all := PlatformTypes()
	assert.Len(t, all, 6)
	for _, p := range all {
		assert.True(t, p.Valid(), string(p))
	}
}
