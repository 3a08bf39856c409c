package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gmfernandes/leadflow/internal/entity"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	vErrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	fields := make([]string, len(vErrs))
	for i, v := range vErrs {
		fields[i] = v.Field
	}
	return fields
}

func TestCreateUserInputValid(t *testing.T) {
	input := CreateUserInput{
		Email:     "valid@example.com",
		FirstName: "Ana",
		LastName:  "Lima",
		Password:  "longenough1",
	}
	assert.NoError(t, input.Validate())
}

func TestCreateUserInputBadEmail(t *testing.T) {
	input := CreateUserInput{
		Email:     "a@@bad",
		FirstName: "Ana",
		LastName:  "Lima",
		Password:  "longenough1",
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "email")
}

func TestCreateUserInputShortPassword(t *testing.T) {
	input := CreateUserInput{
		Email:     "valid@example.com",
		FirstName: "Ana",
		LastName:  "Lima",
		Password:  "short",
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "password")
}

func TestCreateUserInputReportsAllFields(t *testing.T) {
	fields := fieldsOf(t, CreateUserInput{}.Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "password")
}

func TestCreateBusinessInputCategory(t *testing.T) {
	input := CreateBusinessInput{
		Name:        "Pipes R Us",
		Category:    entity.BusinessCategory("plumbing"),
		Description: "Residential plumbing",
		Address:     "1 Main St",
		City:        "Austin",
		State:       "TX",
		ZipCode:     "78701",
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "category")

	input.Category = entity.CategoryHomeServices
	assert.NoError(t, input.Validate())
}

func TestUpdateBusinessInputNullRules(t *testing.T) {
	input := UpdateBusinessInput{
		Name:  PatchNull[string](),  // required, null rejected
		Phone: PatchNull[string](),  // optional, null clears
	}
	fields := fieldsOf(t, input.Validate())
	assert.Contains(t, fields, "name")
	assert.NotContains(t, fields, "phone")
}

func TestCreateServiceInputScale(t *testing.T) {
	input := CreateServiceInput{
		Name:        "Drain cleaning",
		Description: "Clears clogged drains",
		PriceMin:    dec("19.999"),
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "price_min")

	input.PriceMin = dec("19.99")
	assert.NoError(t, input.Validate())
}

func TestCreateServiceInputNegativePrice(t *testing.T) {
	input := CreateServiceInput{
		Name:        "Drain cleaning",
		Description: "Clears clogged drains",
		PriceMax:    dec("-5.00"),
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "price_max")
}

func TestCreateLeadInputValid(t *testing.T) {
	input := CreateLeadInput{
		PlatformAccountID: 12,
		CustomerName:      "Jane Roe",
		Title:             "Fix faucet",
		Description:       "Kitchen faucet drips",
		Location:          "Austin, TX",
		PlatformLeadID:    "tt-991",
		Budget:            dec("150.00"),
	}
	assert.NoError(t, input.Validate())
}

func TestCreateLeadInputLengthLimits(t *testing.T) {
	input := CreateLeadInput{
		PlatformAccountID: 12,
		CustomerName:      strings.Repeat("x", 201),
		Title:             strings.Repeat("x", 301),
		Description:       "d",
		Location:          "l",
		PlatformLeadID:    "p",
	}
	fields := fieldsOf(t, input.Validate())
	assert.Contains(t, fields, "customer_name")
	assert.Contains(t, fields, "title")
}

func TestTextLimitsCountRunesNotBytes(t *testing.T) {
	// 300 two-byte runes: exactly at the limit, over it in bytes.
	input := CreateLeadInput{
		PlatformAccountID: 12,
		CustomerName:      "José Müller",
		Title:             strings.Repeat("é", 300),
		Description:       "d",
		Location:          "l",
		PlatformLeadID:    "p",
	}
	assert.NoError(t, input.Validate())

	input.Title = strings.Repeat("é", 301)
	assert.Contains(t, fieldsOf(t, input.Validate()), "title")

	patched := UpdateBusinessInput{Name: PatchValue(strings.Repeat("ã", 200))}
	assert.NoError(t, patched.Validate())
}

func TestUpdateLeadInputStatus(t *testing.T) {
	bad := UpdateLeadInput{Status: PatchValue(entity.LeadStatus("archived"))}
	assert.Contains(t, fieldsOf(t, bad.Validate()), "status")

	null := UpdateLeadInput{Status: PatchNull[entity.LeadStatus]()}
	assert.Contains(t, fieldsOf(t, null.Validate()), "status")

	ok := UpdateLeadInput{
		Status:          PatchValue(entity.LeadStatusContacted),
		ConversionValue: PatchValue(decimal.RequireFromString("200.00")),
	}
	assert.NoError(t, ok.Validate())
}

func TestCreateSubscriptionInputBillingCycle(t *testing.T) {
	input := CreateSubscriptionInput{
		PlanName:     "pro",
		Price:        dec("29.00"),
		BillingCycle: "weekly",
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "billing_cycle")

	input.BillingCycle = "yearly"
	assert.NoError(t, input.Validate())
}

func TestCreatePaymentInputCurrency(t *testing.T) {
	input := CreatePaymentInput{
		SubscriptionID: 4,
		Amount:         dec("29.00"),
		Currency:       "DOLLARS",
		PaymentMethod:  "card",
	}
	assert.Contains(t, fieldsOf(t, input.Validate()), "currency")

	input.Currency = "" // defaults later, valid here
	assert.NoError(t, input.Validate())
}

func TestUpsertAnalyticsInput(t *testing.T) {
	input := UpsertAnalyticsInput{
		BusinessID:     3,
		Date:           "2026-08-30",
		ConversionRate: dec("0.1234"),
	}
	assert.NoError(t, input.Validate())

	input.Date = "30/08/2026"
	assert.Contains(t, fieldsOf(t, input.Validate()), "date")

	input.Date = "2026-08-30"
	input.ConversionRate = dec("0.12345")
	assert.Contains(t, fieldsOf(t, input.Validate()), "conversion_rate")

	input.ConversionRate = nil
	input.LeadsCount = -1
	assert.Contains(t, fieldsOf(t, input.Validate()), "leads_count")
}

func TestCreateRecommendationInputBounds(t *testing.T) {
	impact := 11
	input := CreateRecommendationInput{
		BusinessID:  3,
		Type:        "platform_suggestion",
		Title:       "Try TaskRabbit",
		Description: "Similar businesses see volume there",
		Priority:    4,
		ImpactScore: &impact,
	}
	fields := fieldsOf(t, input.Validate())
	assert.Contains(t, fields, "priority")
	assert.Contains(t, fields, "impact_score")
}

func TestCreateRecommendationInputLengthLimits(t *testing.T) {
	// Limits follow the stored column sizes: type 100, title 300,
	// description 1000.
	input := CreateRecommendationInput{
		BusinessID:  3,
		Type:        strings.Repeat("t", 100),
		Title:       strings.Repeat("x", 250),
		Description: strings.Repeat("d", 1000),
	}
	assert.NoError(t, input.Validate())

	input.Type = strings.Repeat("t", 101)
	input.Title = strings.Repeat("x", 301)
	input.Description = strings.Repeat("d", 1001)
	fields := fieldsOf(t, input.Validate())
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "description")
}
