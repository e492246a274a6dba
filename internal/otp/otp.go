// Package otp issues and checks six-digit one-time codes.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/pandey-i/note-taking-app/internal/model"
)

const (
	minCode = 100000
	maxCode = 999999
)

var (
	// ErrNoPending means the user has no code waiting to be redeemed.
	ErrNoPending = errors.New("no pending otp")
	// ErrMismatch means the submitted code differs from the stored one.
	ErrMismatch = errors.New("otp mismatch")
	// ErrExpired means the stored code is past its expiry.
	ErrExpired = errors.New("otp expired")
)

// Issuer implements model.OTPIssuer.
type Issuer struct {
	ttl    time.Duration
	random io.Reader
}

var _ model.OTPIssuer = (*Issuer)(nil)

// NewIssuer creates an issuer whose codes live for ttl. A non-positive ttl
// falls back to model.DefaultOTPDuration.
func NewIssuer(ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = model.DefaultOTPDuration
	}
	return &Issuer{ttl: ttl, random: rand.Reader}
}

// Issue returns a fresh code expiring ttl after now.
func (i *Issuer) Issue(now time.Time) (model.OTP, error) {
	n, err := rand.Int(i.random, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return model.OTP{}, fmt.Errorf("failed to generate otp: %w", err)
	}

	return model.OTP{
		Value:     fmt.Sprintf("%06d", n.Int64()+minCode),
		ExpiresAt: now.Add(i.ttl),
	}, nil
}

// Validate checks submitted against the user's pending code. It does not
// modify the user.
func (i *Issuer) Validate(user model.User, submitted string, now time.Time) error {
	if !user.HasPendingOTP() {
		return ErrNoPending
	}
	if subtle.ConstantTimeCompare([]byte(*user.OTP), []byte(submitted)) != 1 {
		return ErrMismatch
	}
	if now.After(*user.OTPExpiresAt) {
		return ErrExpired
	}
	return nil
}
