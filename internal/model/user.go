package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByExternalID(ctx context.Context, externalID string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Save(ctx context.Context, user User) error
}

// User represents a stored account with its credential and OTP state.
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  *string
	Name          string
	ExternalID    *string
	EmailVerified bool
	OTP           *string
	OTPExpiresAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PublicUser is the part of a user that may leave the server.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Public strips credential and OTP material.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// HasPassword reports whether the account can log in with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// HasPendingOTP reports whether a code is waiting to be redeemed.
func (u User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpiresAt != nil
}

// SetOTP stores a code together with its expiry.
func (u *User) SetOTP(code OTP) {
	value := code.Value
	expiresAt := code.ExpiresAt
	u.OTP = &value
	u.OTPExpiresAt = &expiresAt
}

// ClearOTP removes the code and its expiry together.
func (u *User) ClearOTP() {
	u.OTP = nil
	u.OTPExpiresAt = nil
}
