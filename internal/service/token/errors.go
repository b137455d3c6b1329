package token

import "errors"

var (
	ErrInvalidAmount         = errors.New("amount must be positive and within bounds")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrSameAccount           = errors.New("transfer to the same account")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrOverflow              = errors.New("balance overflow")
	ErrTokensLocked          = errors.New("tokens are locked by an active vote")
	ErrUnauthorized          = errors.New("caller is not authorized")
)
