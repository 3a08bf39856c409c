package entity

import "time"

// User is an account identity. Email is unique across the platform; a user
// owns at most one business.
type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         *string   `json:"phone,omitempty"`
	PasswordHash  string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewUser(email, firstName, lastName string, phone *string, passwordHash string) *User {
	now := time.Now()
	return &User{
		Email:         email,
		FirstName:     firstName,
		LastName:      lastName,
		Phone:         phone,
		PasswordHash:  passwordHash,
		IsActive:      true,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}
