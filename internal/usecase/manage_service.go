package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CreateServiceUseCase struct {
	Services ServiceRepository
}

func NewCreateServiceUseCase(services ServiceRepository) *CreateServiceUseCase {
	return &CreateServiceUseCase{Services: services}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, businessID int64, input CreateServiceInput) (*entity.Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	svc := entity.NewService(businessID, input.Name, input.Description,
		input.PriceMin, input.PriceMax, input.DurationHours)

	// Storage does not know about the price range; this layer owns it.
	if !svc.PriceRangeValid() {
		return nil, entity.ErrPriceRange
	}

	if err := uc.Services.Create(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

type UpdateServiceUseCase struct {
	Services ServiceRepository
}

func NewUpdateServiceUseCase(services ServiceRepository) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{Services: services}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, id int64, input UpdateServiceInput) (*entity.Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	svc, err := uc.Services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.HasValue() {
		svc.Name = input.Name.Val
	}
	if input.Description.HasValue() {
		svc.Description = input.Description.Val
	}
	if input.PriceMin.Set {
		svc.PriceMin = input.PriceMin.Ptr()
	}
	if input.PriceMax.Set {
		svc.PriceMax = input.PriceMax.Ptr()
	}
	if input.DurationHours.Set {
		svc.DurationHours = input.DurationHours.Ptr()
	}
	if input.IsActive.HasValue() {
		svc.IsActive = input.IsActive.Val
	}

	// Re-check the invariant against the patched state, not the input alone:
	// the patch may move only one end of the range.
	if !svc.PriceRangeValid() {
		return nil, entity.ErrPriceRange
	}

	svc.Touch()
	if err := uc.Services.Update(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}
