package splitoct

import "errors"

// Errors returned by the algebra. Wrapped errors carry extra context;
// compare with errors.Is.
var (
	// ErrDimension is returned when constructing from a coefficient slice
	// whose length is not 8.
	ErrDimension = errors.New("splitoct: split-octonion must have exactly 8 coefficients")

	// ErrIndex is returned by Set for an index outside 0..7.
	ErrIndex = errors.New("splitoct: index must be from 0 to 7")

	// ErrDivisionUnsupported is returned when dividing one split-octonion by
	// another. Multiply by Inv() instead.
	ErrDivisionUnsupported = errors.New("splitoct: division by a split-octonion is not supported, use Inv() instead")

	// ErrDivisionByZero is returned when inverting a null split-octonion or
	// dividing by a scalar that simplifies to zero.
	ErrDivisionByZero = errors.New("splitoct: division by zero divisor")

	// ErrNotSplitOctonion is returned when an operation that needs a
	// split-octonion operand, such as Dot, receives something else.
	ErrNotSplitOctonion = errors.New("splitoct: operand must be a split-octonion")

	// ErrNotNumeric is returned by Evaluate when a coefficient still holds a
	// free symbol or has no finite value.
	ErrNotNumeric = errors.New("splitoct: coefficient has no numeric value")
)
