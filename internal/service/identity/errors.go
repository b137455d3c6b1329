package identity

import "errors"

var (
	ErrUnauthorized      = errors.New("caller is not authorized")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidRole       = errors.New("role is not grantable")
	ErrAlreadyAdmin      = errors.New("address is already an admin")
	ErrNoPendingTransfer = errors.New("no pending admin transfer")
	ErrNotSuccessor      = errors.New("caller is not the proposed successor")
	ErrAdminBounds       = errors.New("admin count out of multisig bounds")
	ErrNotWhitelisted    = errors.New("carrier is not whitelisted")
	ErrMissingRole       = errors.New("address lacks the required role")
)
