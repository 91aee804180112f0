package mafigo

import "errors"

var (
	// ErrInvalidMinSupport is returned when the minimum support count is
	// not positive. Validation happens before any search work begins.
	ErrInvalidMinSupport = errors.New("minimum support count must be positive")

	// ErrInterrupted is returned together with a partial result when the
	// context is cancelled and WithPartialResults is set. The partial
	// result is still an antichain of frequent itemsets, but maximal
	// itemsets may be missing. The context cause can be accessed via
	// errors.Unwrap / errors.Is.
	ErrInterrupted = errors.New("mining interrupted")
)
