package domain

import (
	"errors"
	"fmt"
)

// ─── Error Categories ───────────────────────────────────────────────────────
// Every specific error below wraps exactly one category, so callers can match
// either the precise failure or the whole class with errors.Is.

var (
	// ErrValidation marks malformed, out-of-range, or empty user input.
	ErrValidation = errors.New("validation failed")

	// ErrCapacity marks a repository or month limit being reached.
	ErrCapacity = errors.New("capacity limit reached")

	// ErrMisuse marks a call whose preconditions the caller could have checked.
	ErrMisuse = errors.New("operation not allowed in current state")

	// ErrIndexOutOfRange marks positional access outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrArithmetic marks a numeric fault during evaluation.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrParse marks an expression that cannot be converted or evaluated.
	ErrParse = errors.New("parse error")
)

var (
	// Validation
	ErrEmptyInput           = fmt.Errorf("%w: input is empty", ErrValidation)
	ErrNotANumber           = fmt.Errorf("%w: not a valid number", ErrValidation)
	ErrValueOutOfRange      = fmt.Errorf("%w: value out of accepted range", ErrValidation)
	ErrEmptyDescription     = fmt.Errorf("%w: order description must not be empty", ErrValidation)
	ErrUnknownRepoKind      = fmt.Errorf("%w: unknown repository kind", ErrValidation)
	ErrUnknownEntity        = fmt.Errorf("%w: unknown entity", ErrValidation)
	ErrInvalidRegion        = fmt.Errorf("%w: region out of range", ErrValidation)
	ErrInvalidMonth         = fmt.Errorf("%w: month out of range", ErrValidation)
	ErrNoSalesData          = fmt.Errorf("%w: no sales data recorded", ErrValidation)
	ErrInvalidCapacity      = fmt.Errorf("%w: capacity must be positive", ErrValidation)
	ErrMonthAlreadyAssigned = fmt.Errorf("%w: month already assigned to a region", ErrValidation)

	// Capacity
	ErrMonthLimitReached = fmt.Errorf("%w: month limit reached", ErrCapacity)
	ErrRepositoryFull    = fmt.Errorf("%w: repository is full", ErrCapacity)

	// Misuse
	ErrOrderInProcess       = fmt.Errorf("%w: an order is already in process", ErrMisuse)
	ErrNoOrderInProcess     = fmt.Errorf("%w: no order is in process", ErrMisuse)
	ErrNothingToCancel      = fmt.Errorf("%w: no active orders to cancel", ErrMisuse)
	ErrUnsupportedOperation = fmt.Errorf("%w: operation not supported by this repository", ErrMisuse)

	// Arithmetic
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

	// Parse
	ErrUnbalancedParentheses = fmt.Errorf("%w: unbalanced parentheses", ErrParse)
	ErrMalformedExpression   = fmt.Errorf("%w: malformed postfix expression", ErrParse)
	ErrUnknownToken          = fmt.Errorf("%w: unknown token", ErrParse)
)
