package auth

import "time"

// OTPCode is a one-time verification code issued during signup/login.
// Codes are single use, expire after a configurable TTL, and lock after
// too many failed attempts.
type OTPCode struct {
	ID         string
	UserID     string
	CodeHash   string
	Purpose    string
	Attempts   int
	ConsumedAt *time.Time
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// OTP purposes
const (
	OTPPurposeVerifyEmail = "verify_email"
	OTPPurposeLogin       = "login"
)

// RefreshToken is a persisted refresh-token row with session metadata.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	IPAddress string
	UserAgent string
	RevokedAt *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}
