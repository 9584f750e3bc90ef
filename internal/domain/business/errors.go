package business

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrNotBusinessOwner = errors.New("only the business owner may do this")
)
