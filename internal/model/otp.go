package model

import "time"

// DefaultOTPDuration is how long an issued code stays redeemable.
const DefaultOTPDuration = 10 * time.Minute

// OTP is a one-time numeric code with its expiry.
type OTP struct {
	Value     string
	ExpiresAt time.Time
}

// OTPIssuer generates and checks one-time codes.
type OTPIssuer interface {
	Issue(now time.Time) (OTP, error)
	Validate(user User, submitted string, now time.Time) error
}
