package nn

import "errors"

// Common errors.
var (
	ErrTopologyOverflow = errors.New("too many hidden layers")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrInvalidSize      = errors.New("invalid layer size")
	ErrInvalidConfig    = errors.New("invalid network config")
	ErrNilSource        = errors.New("nil random source")
	ErrFinalized        = errors.New("network already finalized")
	ErrNotFinalized     = errors.New("network not finalized")
)
