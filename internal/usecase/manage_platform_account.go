package usecase

import (
	"context"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type CreatePlatformAccountUseCase struct {
	Accounts PlatformAccountRepository
}

func NewCreatePlatformAccountUseCase(accounts PlatformAccountRepository) *CreatePlatformAccountUseCase {
	return &CreatePlatformAccountUseCase{Accounts: accounts}
}

func (uc *CreatePlatformAccountUseCase) Execute(ctx context.Context, businessID int64, input CreatePlatformAccountInput) (*entity.PlatformAccount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	account := entity.NewPlatformAccount(businessID, input.PlatformType,
		input.AccountID, input.AccountName, input.Credentials, input.Settings)

	if err := uc.Accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

type UpdatePlatformAccountUseCase struct {
	Accounts PlatformAccountRepository
}

func NewUpdatePlatformAccountUseCase(accounts PlatformAccountRepository) *UpdatePlatformAccountUseCase {
	return &UpdatePlatformAccountUseCase{Accounts: accounts}
}

func (uc *UpdatePlatformAccountUseCase) Execute(ctx context.Context, id int64, input UpdatePlatformAccountInput) (*entity.PlatformAccount, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	account, err := uc.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AccountName.HasValue() {
		account.AccountName = input.AccountName.Val
	}
	if input.Credentials.HasValue() {
		account.Credentials = input.Credentials.Val
	}
	if input.Settings.HasValue() {
		account.Settings = input.Settings.Val
	}
	if input.IsActive.HasValue() {
		account.IsActive = input.IsActive.Val
	}

	account.Touch()
	if err := uc.Accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}
