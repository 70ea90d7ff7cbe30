package yafwi

import (
	"errors"

	"github.com/buhanec/yafwi/internal/types"
)

var (
	// ErrNotSupported reports a fixed-width right operand that the receiver's
	// type may not absorb. Callers may retry the reflected operator.
	ErrNotSupported = errors.New("operation not supported for these operand types")
	// ErrAbstractType is the panic value for operations on the zero Type or the
	// zero Value, which carry no width.
	ErrAbstractType = errors.New("use a concrete fixed-width type, not the abstract base")
	// ErrDivisionByZero reports a zero divisor in FloorDiv, Mod or DivMod.
	ErrDivisionByZero = errors.New("integer division or modulo by zero")
	// ErrNegativeShift reports a negative shift count.
	ErrNegativeShift = errors.New("negative shift count")
	// ErrNegativeExponent reports a negative exponent without a modulus.
	ErrNegativeExponent = errors.New("negative exponent requires a modulus")
	// ErrZeroModulus reports a zero modulus in PowMod.
	ErrZeroModulus = errors.New("pow() modulus cannot be zero")
	// ErrNotInvertible reports a negative exponent whose base has no inverse
	// for the modulus.
	ErrNotInvertible = errors.New("base is not invertible for the given modulus")
	// ErrOutOfRange reports a conversion to a Go integer that cannot hold the value.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidWidth reports a width outside the supported range.
	ErrInvalidWidth = types.ErrInvalidWidth
	// ErrAliasConflict reports an alias already bound to a different type.
	ErrAliasConflict = errors.New("alias already bound")
)
