package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CreateBusinessUseCase struct {
	Businesses BusinessRepository
}

func NewCreateBusinessUseCase(businesses BusinessRepository) *CreateBusinessUseCase {
	return &CreateBusinessUseCase{Businesses: businesses}
}

// Execute registers the owner's business. One business per user: a second
// create for the same owner comes back as entity.ErrBusinessExists.
func (uc *CreateBusinessUseCase) Execute(ctx context.Context, ownerID int64, input CreateBusinessInput) (*entity.Business, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	biz := entity.NewBusiness(ownerID, input.Name, input.Category, input.Description,
		input.Address, input.City, input.State, input.ZipCode, input.Phone, input.Website)

	if err := uc.Businesses.Create(ctx, biz); err != nil {
		return nil, err
	}

	return biz, nil
}

type UpdateBusinessUseCase struct {
	Businesses BusinessRepository
}

func NewUpdateBusinessUseCase(businesses BusinessRepository) *UpdateBusinessUseCase {
	return &UpdateBusinessUseCase{Businesses: businesses}
}

func (uc *UpdateBusinessUseCase) Execute(ctx context.Context, id int64, input UpdateBusinessInput) (*entity.Business, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	biz, err := uc.Businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.HasValue() {
		biz.Name = input.Name.Val
	}
	if input.Category.HasValue() {
		biz.Category = input.Category.Val
	}
	if input.Description.HasValue() {
		biz.Description = input.Description.Val
	}
	if input.Address.HasValue() {
		biz.Address = input.Address.Val
	}
	if input.City.HasValue() {
		biz.City = input.City.Val
	}
	if input.State.HasValue() {
		biz.State = input.State.Val
	}
	if input.ZipCode.HasValue() {
		biz.ZipCode = input.ZipCode.Val
	}
	if input.Phone.Set {
		biz.Phone = input.Phone.Ptr()
	}
	if input.Website.Set {
		biz.Website = input.Website.Ptr()
	}

	biz.Touch()
	if err := uc.Businesses.Update(ctx, biz); err != nil {
		return nil, err
	}

	return biz, nil
}
