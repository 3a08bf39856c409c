package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gmfernandes/leadflow/internal/entity"
)

type RegisterUserUseCase struct {
	Users UserRepository
}

func NewRegisterUserUseCase(users UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{Users: users}
}

// Execute validates the create shape, hashes the password and stores the
// account. A duplicate email surfaces as entity.ErrEmailAlreadyExists from
// the repository; it is not pre-checked here.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.FirstName, input.LastName, input.Phone, string(hash))

	if err := uc.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateUserUseCase struct {
	Users UserRepository
}

func NewUpdateUserUseCase(users UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{Users: users}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName.HasValue() {
		user.FirstName = input.FirstName.Val
	}
	if input.LastName.HasValue() {
		user.LastName = input.LastName.Val
	}
	if input.Phone.Set {
		user.Phone = input.Phone.Ptr()
	}

	user.Touch()
	if err := uc.Users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
