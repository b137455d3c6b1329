package dispute

import "errors"

var (
	ErrUnauthorized      = errors.New("caller is not authorized")
	ErrInvalidState      = errors.New("operation not allowed in the current status")
	ErrInvalidResolution = errors.New("unknown dispute resolution")
	ErrInvalidBreach     = errors.New("unknown breach type")
	ErrInvalidHash       = errors.New("hash must be a non-zero 32-byte hex value")
	ErrPaused            = errors.New("engine is paused")
)
