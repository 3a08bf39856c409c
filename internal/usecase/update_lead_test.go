package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gmfernandes/leadflow/internal/entity"
)

func storedLead(status entity.LeadStatus) *entity.Lead {
	lead := entity.NewLead(7, 12, "tt-991", "Jane Roe", "Fix faucet", "Kitchen faucet drips", "Austin, TX")
	lead.ID = 44
	lead.Status = status
	return lead
}

func TestUpdateLeadStatusOnly(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, int64(44)).Return(storedLead(entity.LeadStatusNew), nil)
	leadRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)

	uc := NewUpdateLeadUseCase(leadRepo, nil)
	lead, err := uc.Execute(context.Background(), 44, UpdateLeadInput{
		Status: PatchValue(entity.LeadStatusContacted),
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusContacted, lead.Status)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Jane Roe", lead.CustomerName)
	assert.Nil(t, lead.ConversionValue)
	leadRepo.AssertExpectations(t)
}

func TestUpdateLeadRejectsSkippedTransition(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, int64(44)).Return(storedLead(entity.LeadStatusNew), nil)

	uc := NewUpdateLeadUseCase(leadRepo, nil)
	_, err := uc.Execute(context.Background(), 44, UpdateLeadInput{
		Status: PatchValue(entity.LeadStatusConverted),
	})

	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	leadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateLeadRejectsTerminal(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, int64(44)).Return(storedLead(entity.LeadStatusLost), nil)

	uc := NewUpdateLeadUseCase(leadRepo, nil)
	_, err := uc.Execute(context.Background(), 44, UpdateLeadInput{
		Status: PatchValue(entity.LeadStatusContacted),
	})

	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateLeadConversionQueuesAlert(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, int64(44)).Return(storedLead(entity.LeadStatusQualified), nil)
	leadRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	alerts, alertRepo, producer := alertFixture()
	alertRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.EmailAlert) bool {
		return a.AlertType == AlertLeadConverted
	})).Return(nil)
	producer.On("PublishAlert", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateLeadUseCase(leadRepo, alerts)
	lead, err := uc.Execute(context.Background(), 44, UpdateLeadInput{
		Status:          PatchValue(entity.LeadStatusConverted),
		ConversionValue: PatchValue(decimal.RequireFromString("350.00")),
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusConverted, lead.Status)
	assert.NotNil(t, lead.ConvertedAt)
	if assert.NotNil(t, lead.ConversionValue) {
		assert.True(t, lead.ConversionValue.Equal(decimal.RequireFromString("350.00")))
	}
	alertRepo.AssertExpectations(t)
}

func TestUpdateLeadClearsConversionValue(t *testing.T) {
	stored := storedLead(entity.LeadStatusConverted)
	v := decimal.RequireFromString("100.00")
	stored.ConversionValue = &v

	leadRepo := new(MockLeadRepository)
	leadRepo.On("FindByID", mock.Anything, int64(44)).Return(stored, nil)
	leadRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewUpdateLeadUseCase(leadRepo, nil)
	lead, err := uc.Execute(context.Background(), 44, UpdateLeadInput{
		ConversionValue: PatchNull[decimal.Decimal](),
	})

	assert.NoError(t, err)
	assert.Nil(t, lead.ConversionValue)
}
