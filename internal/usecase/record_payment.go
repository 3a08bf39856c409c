package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type RecordPaymentUseCase struct {
	Payments PaymentRepository
}

func NewRecordPaymentUseCase(payments PaymentRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{Payments: payments}
}

// Execute stores a pending payment against a subscription. The processor
// callback settles it later.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	payment := entity.NewPayment(input.SubscriptionID, *input.Amount, input.Currency, input.PaymentMethod)

	if err := uc.Payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// SettlePaymentUseCase resolves a pending payment from the processor's
// response: completed or failed, plus the opaque processor payload. Refund is
// the single allowed post-completed move.
type SettlePaymentUseCase struct {
	Payments PaymentRepository
}

func NewSettlePaymentUseCase(payments PaymentRepository) *SettlePaymentUseCase {
	return &SettlePaymentUseCase{Payments: payments}
}

func (uc *SettlePaymentUseCase) Settle(ctx context.Context, id int64, succeeded bool, transactionID *string, processorResponse entity.Payload) (*entity.Payment, error) {
	next := entity.PaymentStatusCompleted
	if !succeeded {
		next = entity.PaymentStatusFailed
	}
	return uc.transition(ctx, id, next, transactionID, processorResponse)
}

func (uc *SettlePaymentUseCase) Refund(ctx context.Context, id int64, processorResponse entity.Payload) (*entity.Payment, error) {
	return uc.transition(ctx, id, entity.PaymentStatusRefunded, nil, processorResponse)
}

func (uc *SettlePaymentUseCase) transition(ctx context.Context, id int64, next entity.PaymentStatus, transactionID *string, processorResponse entity.Payload) (*entity.Payment, error) {
	payment, err := uc.Payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := payment.TransitionTo(next); err != nil {
		return nil, err
	}

	if transactionID != nil {
		payment.TransactionID = transactionID
	}
	if processorResponse != nil {
		payment.ProcessorResponse = processorResponse
	}

	if err := uc.Payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
