package entity

import (
	"database/sql/driver"
	"fmt"
)

// Enum fields persist as their raw string token. Scan validates on the way
// out of the database too, so a drifted token in storage fails loudly instead
// of leaking an unknown status into the domain.

type PlatformType string

const (
	PlatformThumbtack   PlatformType = "thumbtack"
	PlatformTaskRabbit  PlatformType = "taskrabbit"
	PlatformCraigslist  PlatformType = "craigslist"
	PlatformGoogleAds   PlatformType = "google_ads"
	PlatformFacebookAds PlatformType = "facebook_ads"
	PlatformTikTokAds   PlatformType = "tiktok_ads"
)

func PlatformTypes() []PlatformType {
	return []PlatformType{
		PlatformThumbtack, PlatformTaskRabbit, PlatformCraigslist,
		PlatformGoogleAds, PlatformFacebookAds, PlatformTikTokAds,
	}
}

func (p PlatformType) Valid() bool {
	switch p {
	case PlatformThumbtack, PlatformTaskRabbit, PlatformCraigslist,
		PlatformGoogleAds, PlatformFacebookAds, PlatformTikTokAds:
		return true
	}
	return false
}

func (p PlatformType) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("platform_type: unknown token %q", string(p))
	}
	return string(p), nil
}

func (p *PlatformType) Scan(src any) error {
	s, err := scanToken("platform_type", src)
	if err != nil {
		return err
	}
	v := PlatformType(s)
	if !v.Valid() {
		return fmt.Errorf("platform_type: unknown token %q in storage", s)
	}
	*p = v
	return nil
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

func (s LeadStatus) Terminal() bool {
	return s == LeadStatusConverted || s == LeadStatusLost
}

// CanTransitionTo follows the funnel new -> contacted -> qualified ->
// converted, with lost reachable from any non-terminal state.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	switch next {
	case LeadStatusLost:
		return true
	case LeadStatusContacted:
		return s == LeadStatusNew
	case LeadStatusQualified:
		return s == LeadStatusContacted
	case LeadStatusConverted:
		return s == LeadStatusQualified
	}
	return false
}

func (s LeadStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("lead status: unknown token %q", string(s))
	}
	return string(s), nil
}

func (s *LeadStatus) Scan(src any) error {
	raw, err := scanToken("lead status", src)
	if err != nil {
		return err
	}
	v := LeadStatus(raw)
	if !v.Valid() {
		return fmt.Errorf("lead status: unknown token %q in storage", raw)
	}
	*s = v
	return nil
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusFailed || s == PaymentStatusRefunded
}

// CanTransitionTo allows pending -> completed|failed and the single
// post-terminal hop completed -> refunded.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusCompleted || next == PaymentStatusFailed
	case PaymentStatusCompleted:
		return next == PaymentStatusRefunded
	}
	return false
}

func (s PaymentStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("payment status: unknown token %q", string(s))
	}
	return string(s), nil
}

func (s *PaymentStatus) Scan(src any) error {
	raw, err := scanToken("payment status", src)
	if err != nil {
		return err
	}
	v := PaymentStatus(raw)
	if !v.Valid() {
		return fmt.Errorf("payment status: unknown token %q in storage", raw)
	}
	*s = v
	return nil
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusCancelled,
		SubscriptionStatusSuspended, SubscriptionStatusExpired:
		return true
	}
	return false
}

// CanTransitionTo: active fans out to cancelled, suspended or expired.
// Suspended can resume or end; reactivation from cancelled/expired is a new
// subscription, not a transition.
func (s SubscriptionStatus) CanTransitionTo(next SubscriptionStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	switch s {
	case SubscriptionStatusActive:
		return next == SubscriptionStatusCancelled ||
			next == SubscriptionStatusSuspended ||
			next == SubscriptionStatusExpired
	case SubscriptionStatusSuspended:
		return next == SubscriptionStatusActive ||
			next == SubscriptionStatusCancelled ||
			next == SubscriptionStatusExpired
	}
	return false
}

func (s SubscriptionStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("subscription status: unknown token %q", string(s))
	}
	return string(s), nil
}

func (s *SubscriptionStatus) Scan(src any) error {
	raw, err := scanToken("subscription status", src)
	if err != nil {
		return err
	}
	v := SubscriptionStatus(raw)
	if !v.Valid() {
		return fmt.Errorf("subscription status: unknown token %q in storage", raw)
	}
	*s = v
	return nil
}

type BusinessCategory string

const (
	CategoryHomeServices         BusinessCategory = "home_services"
	CategoryProfessionalServices BusinessCategory = "professional_services"
	CategoryHealthFitness        BusinessCategory = "health_fitness"
	CategoryEventsEntertainment  BusinessCategory = "events_entertainment"
	CategoryAutomotive           BusinessCategory = "automotive"
	CategoryFoodBeverage         BusinessCategory = "food_beverage"
	CategoryRetail               BusinessCategory = "retail"
	CategoryOther                BusinessCategory = "other"
)

func (c BusinessCategory) Valid() bool {
	switch c {
	case CategoryHomeServices, CategoryProfessionalServices, CategoryHealthFitness,
		CategoryEventsEntertainment, CategoryAutomotive, CategoryFoodBeverage,
		CategoryRetail, CategoryOther:
		return true
	}
	return false
}

func (c BusinessCategory) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("business category: unknown token %q", string(c))
	}
	return string(c), nil
}

func (c *BusinessCategory) Scan(src any) error {
	raw, err := scanToken("business category", src)
	if err != nil {
		return err
	}
	v := BusinessCategory(raw)
	if !v.Valid() {
		return fmt.Errorf("business category: unknown token %q in storage", raw)
	}
	*c = v
	return nil
}

func scanToken(what string, src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("%s: cannot scan %T", what, src)
}
