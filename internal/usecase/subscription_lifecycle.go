package usecase

import (
	"context"
	"time"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type OpenSubscriptionUseCase struct {
	Subscriptions SubscriptionRepository
}

func NewOpenSubscriptionUseCase(subscriptions SubscriptionRepository) *OpenSubscriptionUseCase {
	return &OpenSubscriptionUseCase{Subscriptions: subscriptions}
}

func (uc *OpenSubscriptionUseCase) Execute(ctx context.Context, businessID int64, input CreateSubscriptionInput) (*entity.Subscription, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub := entity.NewSubscription(businessID, input.PlanName, *input.Price, input.BillingCycle, input.Features)

	var expires time.Time
	if input.BillingCycle == "yearly" {
		expires = sub.StartedAt.AddDate(1, 0, 0)
	} else {
		expires = sub.StartedAt.AddDate(0, 1, 0)
	}
	sub.ExpiresAt = &expires

	if err := uc.Subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// SubscriptionLifecycleUseCase moves a subscription through its states.
// Reactivation from cancelled or expired is a new subscription, never a
// transition, so there is no Activate here (Resume only leaves suspended).
type SubscriptionLifecycleUseCase struct {
	Subscriptions SubscriptionRepository
}

func NewSubscriptionLifecycleUseCase(subscriptions SubscriptionRepository) *SubscriptionLifecycleUseCase {
	return &SubscriptionLifecycleUseCase{Subscriptions: subscriptions}
}

func (uc *SubscriptionLifecycleUseCase) Cancel(ctx context.Context, id int64) (*entity.Subscription, error) {
	return uc.transition(ctx, id, entity.SubscriptionStatusCancelled)
}

func (uc *SubscriptionLifecycleUseCase) Suspend(ctx context.Context, id int64) (*entity.Subscription, error) {
	return uc.transition(ctx, id, entity.SubscriptionStatusSuspended)
}

func (uc *SubscriptionLifecycleUseCase) Resume(ctx context.Context, id int64) (*entity.Subscription, error) {
	return uc.transition(ctx, id, entity.SubscriptionStatusActive)
}

func (uc *SubscriptionLifecycleUseCase) Expire(ctx context.Context, id int64) (*entity.Subscription, error) {
	return uc.transition(ctx, id, entity.SubscriptionStatusExpired)
}

func (uc *SubscriptionLifecycleUseCase) transition(ctx context.Context, id int64, next entity.SubscriptionStatus) (*entity.Subscription, error) {
	sub, err := uc.Subscriptions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sub.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := uc.Subscriptions.Update(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}
