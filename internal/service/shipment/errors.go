package shipment

import "errors"

var (
	ErrShipmentNotFound        = errors.New("shipment not found")
	ErrUnauthorized            = errors.New("caller is not authorized")
	ErrInvalidAddress          = errors.New("invalid address")
	ErrInvalidHash             = errors.New("hash must be a non-zero 32-byte hex value")
	ErrInvalidDeadline         = errors.New("deadline must be in the future")
	ErrInvalidSchedule         = errors.New("payment schedule percents must sum to 100")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAlreadyTerminal         = errors.New("shipment is in a terminal status")
	ErrNotWhitelisted          = errors.New("carrier is not whitelisted for the company")
	ErrActiveLimitReached      = errors.New("company active shipment limit reached")
	ErrRateLimited             = errors.New("status updates are rate limited")
	ErrNotYetExpired           = errors.New("deadline has not passed")
	ErrNothingToRefund         = errors.New("escrow balance is exhausted")
	ErrNoDeliveryProof         = errors.New("delivery confirmation is not recorded")
	ErrOverflow                = errors.New("counter overflow")
	ErrPaused                  = errors.New("engine is paused")
)
