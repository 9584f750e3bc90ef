package coin

import "errors"

var (
	ErrInsufficientCoins = errors.New("insufficient coin balance")
	ErrRewardNotFound    = errors.New("reward not found")
	ErrRewardInactive    = errors.New("reward is not active")
	ErrInvalidAmount     = errors.New("coin amount must not be zero")
)
