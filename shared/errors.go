package shared

import (
	"errors"
)

var (
	// ErrInvalidDifficulty is returned when a target is requested for a zero difficulty.
	ErrInvalidDifficulty = errors.New("difficulty must be greater than 0")

	// ErrEncodingInvariant is the panic value raised when a work buffer is encoded from inputs of the wrong size.
	// It indicates a programming error, never bad input.
	ErrEncodingInvariant = errors.New("work buffer encoding invariant violated")

	// ErrInvalidNonce is returned when a hex encoded nonce can't be decoded.
	ErrInvalidNonce = errors.New("invalid nonce")
)
