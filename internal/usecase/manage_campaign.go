package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CreateCampaignUseCase struct {
	Campaigns CampaignRepository
}

func NewCreateCampaignUseCase(campaigns CampaignRepository) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{Campaigns: campaigns}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, input CreateCampaignInput) (*entity.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	campaign := entity.NewCampaign(input.PlatformAccountID, input.Name, input.CampaignType,
		input.Budget, input.TargetKeywords, input.TargetLocation, input.Settings)

	if err := uc.Campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

type UpdateCampaignUseCase struct {
	Campaigns CampaignRepository
}

func NewUpdateCampaignUseCase(campaigns CampaignRepository) *UpdateCampaignUseCase {
	return &UpdateCampaignUseCase{Campaigns: campaigns}
}

func (uc *UpdateCampaignUseCase) Execute(ctx context.Context, id int64, input UpdateCampaignInput) (*entity.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	campaign, err := uc.Campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.HasValue() {
		campaign.Name = input.Name.Val
	}
	if input.Budget.Set {
		campaign.Budget = input.Budget.Ptr()
	}
	if input.TargetKeywords.Set {
		campaign.TargetKeywords = input.TargetKeywords.Val
		if campaign.TargetKeywords == nil {
			campaign.TargetKeywords = entity.StringList{}
		}
	}
	if input.TargetLocation.Set {
		campaign.TargetLocation = input.TargetLocation.Val
		if campaign.TargetLocation == nil {
			campaign.TargetLocation = entity.Payload{}
		}
	}
	if input.Settings.Set {
		campaign.Settings = input.Settings.Val
		if campaign.Settings == nil {
			campaign.Settings = entity.Payload{}
		}
	}
	if input.IsActive.HasValue() {
		campaign.IsActive = input.IsActive.Val
	}

	campaign.Touch()
	if err := uc.Campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}
