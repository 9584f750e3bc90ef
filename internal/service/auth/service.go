package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/crewdesk-app/crewdesk-backend-go/internal/config"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/auth"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/domain/user"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/email"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk-app/crewdesk-backend-go/internal/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo         user.UserRepository
	otpRepo          auth.OTPRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	emailService     email.EmailService
	otpConfig        config.OTPConfig
	logger           *slog.Logger
}

func NewAuthService(
	userRepo user.UserRepository,
	otpRepo auth.OTPRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	otpConfig config.OTPConfig,
	logger *slog.Logger,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:         userRepo,
		otpRepo:          otpRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		emailService:     emailService,
		otpConfig:        otpConfig,
		logger:           logger,
	}
}

// Register implements auth.AuthService.
func (s *authServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.RegisterResponse{}, err
	}
	if exists {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, err
	}
	passwordHash := string(hashed)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	code, err := s.issueOTP(ctx, created, auth.OTPPurposeVerifyEmail)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	s.logger.Info("user registered", slog.String("user_id", created.ID))
	return auth.RegisterResponse{
		UserID:    created.ID,
		Email:     created.Email,
		OTPSent:   true,
		ExpiresAt: code.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// issueOTP invalidates any outstanding codes for the purpose, stores a
// bcrypt hash of a fresh one and emails the plaintext to the user. The
// plaintext never touches the database.
func (s *authServiceImpl) issueOTP(ctx context.Context, u user.User, purpose string) (auth.OTPCode, error) {
	if err := s.otpRepo.InvalidateByUser(ctx, u.ID, purpose); err != nil {
		return auth.OTPCode{}, err
	}

	plaintext, err := otp.GenerateCode()
	if err != nil {
		return auth.OTPCode{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return auth.OTPCode{}, err
	}

	created, err := s.otpRepo.Create(ctx, auth.OTPCode{
		UserID:    u.ID,
		CodeHash:  string(hashed),
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.otpConfig.TTL),
	})
	if err != nil {
		return auth.OTPCode{}, err
	}

	if err := s.emailService.SendOTP(u.Email, plaintext, created.ExpiresAt.Format("15:04 MST")); err != nil {
		// The code is stored either way; the user can request a resend.
		s.logger.Error("failed to send otp email",
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
	}
	return created, nil
}

// VerifyOTP implements auth.AuthService.
func (s *authServiceImpl) VerifyOTP(ctx context.Context, req auth.VerifyOTPRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrOTPInvalid
		}
		return auth.TokenResponse{}, err
	}

	code, err := s.otpRepo.GetActiveByUser(ctx, found.ID, auth.OTPPurposeVerifyEmail)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) {
			return auth.TokenResponse{}, auth.ErrOTPExpired
		}
		return auth.TokenResponse{}, err
	}
	if code.Attempts >= s.otpConfig.MaxAttempts {
		return auth.TokenResponse{}, auth.ErrOTPTooManyAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(code.CodeHash), []byte(req.Code)) != nil {
		attempts, err := s.otpRepo.IncrementAttempts(ctx, code.ID)
		if err != nil {
			return auth.TokenResponse{}, err
		}
		if attempts >= s.otpConfig.MaxAttempts {
			return auth.TokenResponse{}, auth.ErrOTPTooManyAttempts
		}
		return auth.TokenResponse{}, auth.ErrOTPInvalid
	}

	if err := s.otpRepo.Consume(ctx, code.ID); err != nil {
		return auth.TokenResponse{}, err
	}
	if err := s.userRepo.VerifyEmail(ctx, found.ID); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, found, sessionReq)
}

// ResendOTP implements auth.AuthService.
func (s *authServiceImpl) ResendOTP(ctx context.Context, req auth.ResendOTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Do not reveal whether the email is registered.
			return nil
		}
		return err
	}
	if found.EmailVerified {
		return nil
	}

	if active, err := s.otpRepo.GetActiveByUser(ctx, found.ID, auth.OTPPurposeVerifyEmail); err == nil {
		if time.Since(active.CreatedAt) < s.otpConfig.ResendInterval {
			return auth.ErrOTPResendTooSoon
		}
	}

	_, err = s.issueOTP(ctx, found, auth.OTPPurposeVerifyEmail)
	return err
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}
	if found.PasswordHash == nil {
		// OAuth-only account.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !found.EmailVerified {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	return s.issueTokens(ctx, found, sessionReq)
}

// LoginWithGoogle implements auth.AuthService. Google accounts arrive
// with a verified email, so no OTP round trip happens here.
func (s *authServiceImpl) LoginWithGoogle(ctx context.Context, googleID, email string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	found, err := s.userRepo.LinkGoogleAccount(ctx, googleID, email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return s.issueTokens(ctx, found, sessionReq)
}

// RefreshToken implements auth.AuthService. Rotation: the presented
// token is revoked and a fresh pair is issued.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	stored, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		// A revoked token being replayed is a signal the token leaked;
		// revoke the whole session family.
		if err := s.refreshTokenRepo.RevokeAllByUser(ctx, stored.UserID); err != nil {
			return auth.TokenResponse{}, err
		}
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	found, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}
	return s.issueTokens(ctx, found, sessionReq)
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	err := s.refreshTokenRepo.Revoke(ctx, refreshToken)
	if errors.Is(err, auth.ErrInvalidToken) {
		return nil
	}
	return err
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.refreshTokenRepo.Create(ctx, auth.RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		IPAddress: sessionReq.IPAddress,
		UserAgent: sessionReq.UserAgent,
		ExpiresAt: time.Unix(refreshExp, 0),
	}); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

// PurgeExpiredOTPs implements auth.AuthService.
func (s *authServiceImpl) PurgeExpiredOTPs(ctx context.Context) error {
	deleted, err := s.otpRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("purged expired otp codes", slog.Int64("deleted", deleted))
	}
	return nil
}

// PurgeExpiredRefreshTokens implements auth.AuthService.
func (s *authServiceImpl) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("purged expired refresh tokens", slog.Int64("deleted", deleted))
	}
	return nil
}
