package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// CaptureLeadUseCase ingests one inbound lead from a platform sync or
// webhook. The (platform_account_id, platform_lead_id) pair deduplicates
// repeated deliveries of the same lead.
type CaptureLeadUseCase struct {
	Leads    LeadRepository
	Accounts PlatformAccountRepository
	Alerts   *QueueAlertUseCase
}

func NewCaptureLeadUseCase(leads LeadRepository, accounts PlatformAccountRepository, alerts *QueueAlertUseCase) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Leads: leads, Accounts: accounts, Alerts: alerts}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The lead belongs to the account's business; the account lookup is how
	// we learn which one.
	account, err := uc.Accounts.FindByID(ctx, input.PlatformAccountID)
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, fmt.Errorf("platform_account_id %d: %w", input.PlatformAccountID, entity.ErrReferencedRowMissing)
		}
		return nil, err
	}

	lead := entity.NewLead(account.BusinessID, account.ID, input.PlatformLeadID,
		input.CustomerName, input.Title, input.Description, input.Location)
	lead.CampaignID = input.CampaignID
	lead.ServiceID = input.ServiceID
	lead.CustomerEmail = input.CustomerEmail
	lead.CustomerPhone = input.CustomerPhone
	lead.Budget = input.Budget
	lead.Cost = input.Cost
	if input.PlatformData != nil {
		lead.PlatformData = input.PlatformData
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	if uc.Alerts != nil {
		subject := fmt.Sprintf("New lead from %s: %s", account.PlatformType, lead.Title)
		content := fmt.Sprintf(
			"<p><strong>%s</strong> is looking for: %s</p><p>Location: %s</p><p>%s</p>",
			lead.CustomerName, lead.Title, lead.Location, lead.Description,
		)
		if _, err := uc.Alerts.Execute(ctx, lead.BusinessID, AlertNewLead, subject, content); err != nil {
			// The lead is captured either way.
			log.Printf("WARN: new-lead alert for lead %d not queued: %v", lead.ID, err)
		}
	}

	return lead, nil
}
