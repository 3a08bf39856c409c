package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/gmfernandes/leadflow/internal/entity"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func requireText(errs *ValidationErrors, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		errs.add(field, "is required")
		return
	}
	if utf8.RuneCountInString(value) > maxLen {
		errs.add(field, fmt.Sprintf("must not exceed %d characters", maxLen))
	}
}

func optionalText(errs *ValidationErrors, field string, value *string, maxLen int) {
	if value == nil {
		return
	}
	if utf8.RuneCountInString(*value) > maxLen {
		errs.add(field, fmt.Sprintf("must not exceed %d characters", maxLen))
	}
}

func checkEmail(errs *ValidationErrors, field, value string) {
	if !emailPattern.MatchString(value) {
		errs.add(field, "is invalid")
	}
}

// checkScale rejects values carrying more decimal places than the column
// stores. Rounding would change what the caller said; we refuse instead.
func checkScale(errs *ValidationErrors, field string, d *decimal.Decimal, scale int32) {
	if d == nil {
		return
	}
	if !entity.FitsScale(*d, scale) {
		errs.add(field, fmt.Sprintf("must have at most %d decimal places", scale))
	}
	if d.IsNegative() {
		errs.add(field, "must not be negative")
	}
}

func requireID(errs *ValidationErrors, field string, id int64) {
	if id <= 0 {
		errs.add(field, "is required")
	}
}

func (in CreateUserInput) Validate() error {
	var errs ValidationErrors
	requireText(&errs, "email", in.Email, 255)
	if strings.TrimSpace(in.Email) != "" {
		checkEmail(&errs, "email", in.Email)
	}
	requireText(&errs, "first_name", in.FirstName, 100)
	requireText(&errs, "last_name", in.LastName, 100)
	optionalText(&errs, "phone", in.Phone, 20)
	if strings.TrimSpace(in.Password) == "" {
		errs.add("password", "is required")
	} else if utf8.RuneCountInString(in.Password) < 8 {
		errs.add("password", "must have at least 8 characters")
	} else if utf8.RuneCountInString(in.Password) > 255 {
		errs.add("password", "must not exceed 255 characters")
	}
	return errs.asError()
}

func (in UpdateUserInput) Validate() error {
	var errs ValidationErrors
	patchText(&errs, "first_name", in.FirstName, 100, true)
	patchText(&errs, "last_name", in.LastName, 100, true)
	patchText(&errs, "phone", in.Phone, 20, false)
	return errs.asError()
}

func (in CreateBusinessInput) Validate() error {
	var errs ValidationErrors
	requireText(&errs, "name", in.Name, 200)
	if in.Category != "" && !in.Category.Valid() {
		errs.add("category", "is not a valid business category")
	}
	requireText(&errs, "description", in.Description, 1000)
	requireText(&errs, "address", in.Address, 500)
	requireText(&errs, "city", in.City, 100)
	requireText(&errs, "state", in.State, 50)
	requireText(&errs, "zip_code", in.ZipCode, 10)
	optionalText(&errs, "phone", in.Phone, 20)
	optionalText(&errs, "website", in.Website, 255)
	return errs.asError()
}

func (in UpdateBusinessInput) Validate() error {
	var errs ValidationErrors
	patchText(&errs, "name", in.Name, 200, true)
	if in.Category.Set {
		if in.Category.Null {
			errs.add("category", "cannot be null")
		} else if !in.Category.Val.Valid() {
			errs.add("category", "is not a valid business category")
		}
	}
	patchText(&errs, "description", in.Description, 1000, true)
	patchText(&errs, "address", in.Address, 500, true)
	patchText(&errs, "city", in.City, 100, true)
	patchText(&errs, "state", in.State, 50, true)
	patchText(&errs, "zip_code", in.ZipCode, 10, true)
	patchText(&errs, "phone", in.Phone, 20, false)
	patchText(&errs, "website", in.Website, 255, false)
	return errs.asError()
}

func (in CreateServiceInput) Validate() error {
	var errs ValidationErrors
	requireText(&errs, "name", in.Name, 200)
	requireText(&errs, "description", in.Description, 1000)
	checkScale(&errs, "price_min", in.PriceMin, entity.MoneyScale)
	checkScale(&errs, "price_max", in.PriceMax, entity.MoneyScale)
	if in.DurationHours != nil && *in.DurationHours <= 0 {
		errs.add("duration_hours", "must be positive")
	}
	return errs.asError()
}

func (in UpdateServiceInput) Validate() error {
	var errs ValidationErrors
	patchText(&errs, "name", in.Name, 200, true)
	patchText(&errs, "description", in.Description, 1000, true)
	checkScale(&errs, "price_min", in.PriceMin.Ptr(), entity.MoneyScale)
	checkScale(&errs, "price_max", in.PriceMax.Ptr(), entity.MoneyScale)
	if in.DurationHours.HasValue() && in.DurationHours.Val <= 0 {
		errs.add("duration_hours", "must be positive")
	}
	if in.IsActive.Set && in.IsActive.Null {
		errs.add("is_active", "cannot be null")
	}
	return errs.asError()
}

func (in CreatePlatformAccountInput) Validate() error {
	var errs ValidationErrors
	if in.PlatformType == "" {
		errs.add("platform_type", "is required")
	} else if !in.PlatformType.Valid() {
		errs.add("platform_type", "is not a supported platform")
	}
	requireText(&errs, "account_id", in.AccountID, 255)
	requireText(&errs, "account_name", in.AccountName, 255)
	return errs.asError()
}

func (in UpdatePlatformAccountInput) Validate() error {
	var errs ValidationErrors
	patchText(&errs, "account_name", in.AccountName, 255, true)
	if in.Credentials.Set && in.Credentials.Null {
		errs.add("credentials", "cannot be null")
	}
	if in.Settings.Set && in.Settings.Null {
		errs.add("settings", "cannot be null")
	}
	if in.IsActive.Set && in.IsActive.Null {
		errs.add("is_active", "cannot be null")
	}
	return errs.asError()
}

func (in CreateCampaignInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "platform_account_id", in.PlatformAccountID)
	requireText(&errs, "name", in.Name, 255)
	requireText(&errs, "campaign_type", in.CampaignType, 100)
	checkScale(&errs, "budget", in.Budget, entity.MoneyScale)
	return errs.asError()
}

func (in UpdateCampaignInput) Validate() error {
	var errs ValidationErrors
	patchText(&errs, "name", in.Name, 255, true)
	checkScale(&errs, "budget", in.Budget.Ptr(), entity.MoneyScale)
	if in.IsActive.Set && in.IsActive.Null {
		errs.add("is_active", "cannot be null")
	}
	return errs.asError()
}

func (in CreateLeadInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "platform_account_id", in.PlatformAccountID)
	requireText(&errs, "customer_name", in.CustomerName, 200)
	optionalText(&errs, "customer_email", in.CustomerEmail, 255)
	optionalText(&errs, "customer_phone", in.CustomerPhone, 20)
	requireText(&errs, "title", in.Title, 300)
	requireText(&errs, "description", in.Description, 2000)
	checkScale(&errs, "budget", in.Budget, entity.MoneyScale)
	requireText(&errs, "location", in.Location, 200)
	requireText(&errs, "platform_lead_id", in.PlatformLeadID, 255)
	checkScale(&errs, "cost", in.Cost, entity.MoneyScale)
	return errs.asError()
}

func (in UpdateLeadInput) Validate() error {
	var errs ValidationErrors
	if in.Status.Set {
		if in.Status.Null {
			errs.add("status", "cannot be null")
		} else if !in.Status.Val.Valid() {
			errs.add("status", "is not a valid lead status")
		}
	}
	checkScale(&errs, "conversion_value", in.ConversionValue.Ptr(), entity.MoneyScale)
	return errs.asError()
}

func (in CreateMessageInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "lead_id", in.LeadID)
	requireText(&errs, "sender_name", in.SenderName, 200)
	optionalText(&errs, "sender_email", in.SenderEmail, 255)
	requireText(&errs, "content", in.Content, 5000)
	return errs.asError()
}

func (in CreateSubscriptionInput) Validate() error {
	var errs ValidationErrors
	requireText(&errs, "plan_name", in.PlanName, 100)
	if in.Price == nil {
		errs.add("price", "is required")
	} else {
		checkScale(&errs, "price", in.Price, entity.MoneyScale)
	}
	if strings.TrimSpace(in.BillingCycle) == "" {
		errs.add("billing_cycle", "is required")
	} else if in.BillingCycle != "monthly" && in.BillingCycle != "yearly" {
		errs.add("billing_cycle", "must be monthly or yearly")
	}
	return errs.asError()
}

func (in CreatePaymentInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "subscription_id", in.SubscriptionID)
	if in.Amount == nil {
		errs.add("amount", "is required")
	} else {
		checkScale(&errs, "amount", in.Amount, entity.MoneyScale)
	}
	if in.Currency != "" && len(in.Currency) != 3 {
		errs.add("currency", "must be a 3-letter code")
	}
	requireText(&errs, "payment_method", in.PaymentMethod, 50)
	return errs.asError()
}

func (in UpsertAnalyticsInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "business_id", in.BusinessID)
	if strings.TrimSpace(in.Date) == "" {
		errs.add("date", "is required")
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		errs.add("date", "must be a valid date (YYYY-MM-DD)")
	}
	if in.PlatformType != nil && !in.PlatformType.Valid() {
		errs.add("platform_type", "is not a supported platform")
	}
	if in.LeadsCount < 0 || in.QualifiedLeadsCount < 0 || in.ConvertedLeadsCount < 0 {
		errs.add("leads_count", "counts must not be negative")
	}
	checkScale(&errs, "total_spend", in.TotalSpend, entity.MoneyScale)
	checkScale(&errs, "total_revenue", in.TotalRevenue, entity.MoneyScale)
	checkScale(&errs, "cost_per_lead", in.CostPerLead, entity.MoneyScale)
	checkScale(&errs, "conversion_rate", in.ConversionRate, entity.RatioScale)
	return errs.asError()
}

func (in CreateRecommendationInput) Validate() error {
	var errs ValidationErrors
	requireID(&errs, "business_id", in.BusinessID)
	requireText(&errs, "type", in.Type, 100)
	requireText(&errs, "title", in.Title, 300)
	requireText(&errs, "description", in.Description, 1000)
	if in.Priority != 0 && (in.Priority < entity.PriorityHigh || in.Priority > entity.PriorityLow) {
		errs.add("priority", "must be 1 (high), 2 (medium) or 3 (low)")
	}
	if in.ImpactScore != nil && (*in.ImpactScore < 1 || *in.ImpactScore > 10) {
		errs.add("impact_score", "must be between 1 and 10")
	}
	return errs.asError()
}

// patchText validates a three-state string field. Required fields reject
// explicit null; optional ones accept it as "clear".
func patchText(errs *ValidationErrors, field string, p Patch[string], maxLen int, required bool) {
	if !p.Set {
		return
	}
	if p.Null {
		if required {
			errs.add(field, "cannot be null")
		}
		return
	}
	if required && strings.TrimSpace(p.Val) == "" {
		errs.add(field, "is required")
		return
	}
	if utf8.RuneCountInString(p.Val) > maxLen {
		errs.add(field, fmt.Sprintf("must not exceed %d characters", maxLen))
	}
}
