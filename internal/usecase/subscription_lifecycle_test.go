package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gmfernandes/leadflow/internal/entity"
)

func TestOpenSubscriptionMonthlyExpiry(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil)

	uc := NewOpenSubscriptionUseCase(repo)
	sub, err := uc.Execute(context.Background(), 7, CreateSubscriptionInput{
		PlanName:     "pro",
		Price:        dec("29.00"),
		BillingCycle: "monthly",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
	if assert.NotNil(t, sub.ExpiresAt) {
		assert.Equal(t, sub.StartedAt.AddDate(0, 1, 0), *sub.ExpiresAt)
	}
}

func TestOpenSubscriptionYearlyExpiry(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewOpenSubscriptionUseCase(repo)
	sub, err := uc.Execute(context.Background(), 7, CreateSubscriptionInput{
		PlanName:     "pro",
		Price:        dec("290.00"),
		BillingCycle: "yearly",
	})

	assert.NoError(t, err)
	assert.Equal(t, sub.StartedAt.AddDate(1, 0, 0), *sub.ExpiresAt)
}

func TestSubscriptionCancel(t *testing.T) {
	stored := entity.NewSubscription(7, "pro", decimal.RequireFromString("29.00"), "monthly", nil)
	stored.ID = 5

	repo := new(MockSubscriptionRepository)
	repo.On("FindByID", mock.Anything, int64(5)).Return(stored, nil)
	repo.On("Update", mock.Anything, stored).Return(nil)

	uc := NewSubscriptionLifecycleUseCase(repo)
	sub, err := uc.Cancel(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCancelled, sub.Status)
	assert.NotNil(t, sub.CancelledAt)
}

func TestSubscriptionResumeOnlyFromSuspended(t *testing.T) {
	stored := entity.NewSubscription(7, "pro", decimal.RequireFromString("29.00"), "monthly", nil)
	stored.ID = 5
	stored.Status = entity.SubscriptionStatusCancelled

	repo := new(MockSubscriptionRepository)
	repo.On("FindByID", mock.Anything, int64(5)).Return(stored, nil)

	uc := NewSubscriptionLifecycleUseCase(repo)
	_, err := uc.Resume(context.Background(), 5)

	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRecordPaymentPending(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)

	uc := NewRecordPaymentUseCase(repo)
	payment, err := uc.Execute(context.Background(), CreatePaymentInput{
		SubscriptionID: 5,
		Amount:         dec("29.00"),
		PaymentMethod:  "card",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, "USD", payment.Currency)
	assert.Nil(t, payment.ProcessedAt)
}

func TestSettlePaymentCompleted(t *testing.T) {
	stored := entity.NewPayment(5, decimal.RequireFromString("29.00"), "USD", "card")
	stored.ID = 11

	repo := new(MockPaymentRepository)
	repo.On("FindByID", mock.Anything, int64(11)).Return(stored, nil)
	repo.On("Update", mock.Anything, stored).Return(nil)

	txID := "proc-881"
	uc := NewSettlePaymentUseCase(repo)
	payment, err := uc.Settle(context.Background(), 11, true, &txID, entity.Payload{"code": "00"})

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.NotNil(t, payment.ProcessedAt)
	assert.Equal(t, &txID, payment.TransactionID)
	assert.Equal(t, "00", payment.ProcessorResponse["code"])
}

func TestRefundRequiresCompleted(t *testing.T) {
	stored := entity.NewPayment(5, decimal.RequireFromString("29.00"), "USD", "card")
	stored.ID = 11

	repo := new(MockPaymentRepository)
	repo.On("FindByID", mock.Anything, int64(11)).Return(stored, nil)

	uc := NewSettlePaymentUseCase(repo)
	_, err := uc.Refund(context.Background(), 11, nil)

	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
