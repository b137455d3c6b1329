package escrow

import "errors"

var (
	ErrUnauthorized     = errors.New("caller is not authorized")
	ErrEscrowNotFound   = errors.New("escrow not found")
	ErrAlreadyDeposited = errors.New("escrow already deposited")
	ErrInvalidAmount    = errors.New("amount must be positive and within bounds")
	ErrInvalidState     = errors.New("operation not allowed in the current status")
	ErrNothingToRelease = errors.New("escrow balance is exhausted")
	ErrOverflow         = errors.New("amount overflow")
	ErrPaused           = errors.New("engine is paused")
)
