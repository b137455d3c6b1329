package governance

import "errors"

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrUnauthorized      = errors.New("caller is not authorized")
	ErrInvalidAction     = errors.New("unknown proposal action")
	ErrInvalidParams     = errors.New("proposal params do not match the action")
	ErrProposalExpired   = errors.New("proposal has expired")
	ErrAlreadyApproved   = errors.New("caller has already approved")
	ErrProposalExecuted  = errors.New("proposal has already been executed")
	ErrThresholdNotMet   = errors.New("approval threshold not met")
	ErrInsufficientPower = errors.New("insufficient voting power")
	ErrAdminBounds       = errors.New("admin count out of multisig bounds")
	ErrSelfDelegation    = errors.New("cannot delegate to self")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrOverflow          = errors.New("counter overflow")
)
