package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// Create and Update shapes. A create shape lists exactly the fields a caller
// may supply; identifiers, timestamps and computed fields are always assigned
// here, never accepted from outside. Update shapes are partial patches built
// from three-state Patch fields.

type CreateUserInput struct {
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
	Password  string  `json:"password"`
}

type UpdateUserInput struct {
	FirstName Patch[string] `json:"first_name"`
	LastName  Patch[string] `json:"last_name"`
	Phone     Patch[string] `json:"phone"`
}

type CreateBusinessInput struct {
	Name        string                  `json:"name"`
	Category    entity.BusinessCategory `json:"category"`
	Description string                  `json:"description"`
	Address     string                  `json:"address"`
	City        string                  `json:"city"`
	State       string                  `json:"state"`
	ZipCode     string                  `json:"zip_code"`
	Phone       *string                 `json:"phone,omitempty"`
	Website     *string                 `json:"website,omitempty"`
}

type UpdateBusinessInput struct {
	Name        Patch[string]                  `json:"name"`
	Category    Patch[entity.BusinessCategory] `json:"category"`
	Description Patch[string]                  `json:"description"`
	Address     Patch[string]                  `json:"address"`
	City        Patch[string]                  `json:"city"`
	State       Patch[string]                  `json:"state"`
	ZipCode     Patch[string]                  `json:"zip_code"`
	Phone       Patch[string]                  `json:"phone"`
	Website     Patch[string]                  `json:"website"`
}

type CreateServiceInput struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	PriceMin      *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax      *decimal.Decimal `json:"price_max,omitempty"`
	DurationHours *int             `json:"duration_hours,omitempty"`
}

type UpdateServiceInput struct {
	Name          Patch[string]          `json:"name"`
	Description   Patch[string]          `json:"description"`
	PriceMin      Patch[decimal.Decimal] `json:"price_min"`
	PriceMax      Patch[decimal.Decimal] `json:"price_max"`
	DurationHours Patch[int]             `json:"duration_hours"`
	IsActive      Patch[bool]            `json:"is_active"`
}

type CreatePlatformAccountInput struct {
	PlatformType entity.PlatformType `json:"platform_type"`
	AccountID    string              `json:"account_id"`
	AccountName  string              `json:"account_name"`
	Credentials  entity.Payload      `json:"credentials,omitempty"`
	Settings     entity.Payload      `json:"settings,omitempty"`
}

type UpdatePlatformAccountInput struct {
	AccountName Patch[string]         `json:"account_name"`
	Credentials Patch[entity.Payload] `json:"credentials"`
	Settings    Patch[entity.Payload] `json:"settings"`
	IsActive    Patch[bool]           `json:"is_active"`
}

type CreateCampaignInput struct {
	PlatformAccountID int64             `json:"platform_account_id"`
	Name              string            `json:"name"`
	CampaignType      string            `json:"campaign_type"`
	Budget            *decimal.Decimal  `json:"budget,omitempty"`
	TargetKeywords    entity.StringList `json:"target_keywords,omitempty"`
	TargetLocation    entity.Payload    `json:"target_location,omitempty"`
	Settings          entity.Payload    `json:"settings,omitempty"`
}

type UpdateCampaignInput struct {
	Name           Patch[string]            `json:"name"`
	Budget         Patch[decimal.Decimal]   `json:"budget"`
	TargetKeywords Patch[entity.StringList] `json:"target_keywords"`
	TargetLocation Patch[entity.Payload]    `json:"target_location"`
	Settings       Patch[entity.Payload]    `json:"settings"`
	IsActive       Patch[bool]              `json:"is_active"`
}

type CreateLeadInput struct {
	PlatformAccountID int64            `json:"platform_account_id"`
	CampaignID        *int64           `json:"campaign_id,omitempty"`
	ServiceID         *int64           `json:"service_id,omitempty"`
	CustomerName      string           `json:"customer_name"`
	CustomerEmail     *string          `json:"customer_email,omitempty"`
	CustomerPhone     *string          `json:"customer_phone,omitempty"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Budget            *decimal.Decimal `json:"budget,omitempty"`
	Location          string           `json:"location"`
	PlatformLeadID    string           `json:"platform_lead_id"`
	PlatformData      entity.Payload   `json:"platform_data,omitempty"`
	Cost              *decimal.Decimal `json:"cost,omitempty"`
}

type UpdateLeadInput struct {
	Status          Patch[entity.LeadStatus] `json:"status"`
	ConversionValue Patch[decimal.Decimal]   `json:"conversion_value"`
}

type CreateMessageInput struct {
	LeadID         int64             `json:"lead_id"`
	SenderName     string            `json:"sender_name"`
	SenderEmail    *string           `json:"sender_email,omitempty"`
	Content        string            `json:"content"`
	IsFromBusiness bool              `json:"is_from_business"`
	Attachments    entity.StringList `json:"attachments,omitempty"`
}

type CreateSubscriptionInput struct {
	PlanName     string            `json:"plan_name"`
	Price        *decimal.Decimal  `json:"price"`
	BillingCycle string            `json:"billing_cycle"`
	Features     entity.StringList `json:"features,omitempty"`
}

type CreatePaymentInput struct {
	SubscriptionID int64            `json:"subscription_id"`
	Amount         *decimal.Decimal `json:"amount"`
	Currency       string           `json:"currency,omitempty"`
	PaymentMethod  string           `json:"payment_method"`
}

type UpsertAnalyticsInput struct {
	BusinessID          int64                `json:"business_id"`
	Date                string               `json:"date"` // YYYY-MM-DD bucket
	PlatformType        *entity.PlatformType `json:"platform_type,omitempty"`
	LeadsCount          int                  `json:"leads_count"`
	QualifiedLeadsCount int                  `json:"qualified_leads_count"`
	ConvertedLeadsCount int                  `json:"converted_leads_count"`
	TotalSpend          *decimal.Decimal     `json:"total_spend,omitempty"`
	TotalRevenue        *decimal.Decimal     `json:"total_revenue,omitempty"`
	CostPerLead         *decimal.Decimal     `json:"cost_per_lead,omitempty"`
	ConversionRate      *decimal.Decimal     `json:"conversion_rate,omitempty"`
	Metrics             entity.Payload       `json:"metrics,omitempty"`
}

type CreateRecommendationInput struct {
	BusinessID  int64          `json:"business_id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    int            `json:"priority,omitempty"`
	ImpactScore *int           `json:"impact_score,omitempty"`
	Data        entity.Payload `json:"data,omitempty"`
}
