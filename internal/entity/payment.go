package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID                int64           `json:"id"`
	SubscriptionID    int64           `json:"subscription_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Status            PaymentStatus   `json:"status"`
	PaymentMethod     string          `json:"payment_method"` // card, bank_transfer, etc.
	TransactionID     *string         `json:"transaction_id,omitempty"`
	ProcessorResponse Payload         `json:"processor_response"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewPayment(subscriptionID int64, amount decimal.Decimal, currency, paymentMethod string) *Payment {
	if currency == "" {
		currency = "USD"
	}
	now := time.Now()
	return &Payment{
		SubscriptionID:    subscriptionID,
		Amount:            amount,
		Currency:          currency,
		Status:            PaymentStatusPending,
		PaymentMethod:     paymentMethod,
		ProcessorResponse: Payload{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// TransitionTo applies the payment lifecycle. Settling (completed or failed)
// stamps ProcessedAt.
func (p *Payment) TransitionTo(next PaymentStatus) error {
	if next == p.Status {
		return nil
	}
	if !p.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.Status = next
	if next == PaymentStatusCompleted || next == PaymentStatusFailed {
		now := time.Now()
		p.ProcessedAt = &now
	}
	p.Touch()
	return nil
}

func (p *Payment) Touch() {
	p.UpdatedAt = time.Now()
}
