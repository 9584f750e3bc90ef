package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailExists      = errors.New("email already registered")
	ErrInvalidOAuthProvider = errors.New("invalid oauth provider")
	ErrEmailNotVerified     = errors.New("email not verified")
)
