package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrUserNotFound        = errors.New("user not found")

	ErrOTPNotFound        = errors.New("no active verification code")
	ErrOTPInvalid         = errors.New("invalid verification code")
	ErrOTPExpired         = errors.New("verification code expired")
	ErrOTPTooManyAttempts = errors.New("too many failed verification attempts")
	ErrOTPResendTooSoon   = errors.New("verification code was requested too recently")
)
