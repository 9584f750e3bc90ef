package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	ResendOTP(ctx context.Context, req ResendOTPRequest) error
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleID, email string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// Housekeeping, run from the cron scheduler.
	PurgeExpiredOTPs(ctx context.Context) error
	PurgeExpiredRefreshTokens(ctx context.Context) error
}

type OTPRepository interface {
	Create(ctx context.Context, code OTPCode) (OTPCode, error)
	// GetActiveByUser returns the newest unconsumed, unexpired code for
	// a user and purpose.
	GetActiveByUser(ctx context.Context, userID, purpose string) (OTPCode, error)
	IncrementAttempts(ctx context.Context, id string) (int, error)
	Consume(ctx context.Context, id string) error
	InvalidateByUser(ctx context.Context, userID, purpose string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllByUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
