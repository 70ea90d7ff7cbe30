package yafwi

import (
	"errors"

	"github.com/buhanec/yafwi/internal/types"
)

// dispatch evaluates a op b the way a dynamic runtime resolves operators:
// the left operand's method first, then the right operand's reflected method
// when the left one is missing or declines with ErrNotSupported.
func dispatch(op types.BinaryOp, a, b Operand) (Value, error) {
	if av, ok := a.(Value); ok {
		res, err := av.apply(op, b)
		if !errors.Is(err, ErrNotSupported) {
			return res, err
		}
	}
	spec, _ := types.BinarySpecFor(op)
	if bv, ok := b.(Value); ok && spec.Has(types.BinaryFlagReflectable) {
		return bv.applyReflected(op, a)
	}
	return Value{}, notSupported(op, operandLabel(a), operandLabel(b))
}

// Add evaluates a + b, falling back to b.RAdd(a).
func Add(a, b Operand) (Value, error) { return dispatch(types.OpAdd, a, b) }

// Sub evaluates a - b, falling back to b.RSub(a).
func Sub(a, b Operand) (Value, error) { return dispatch(types.OpSub, a, b) }

// Mul evaluates a * b, falling back to b.RMul(a).
func Mul(a, b Operand) (Value, error) { return dispatch(types.OpMul, a, b) }

// And evaluates a & b, falling back to b.RAnd(a).
func And(a, b Operand) (Value, error) { return dispatch(types.OpAnd, a, b) }

// Or evaluates a | b, falling back to b.ROr(a).
func Or(a, b Operand) (Value, error) { return dispatch(types.OpOr, a, b) }

// Xor evaluates a ^ b, falling back to b.RXor(a).
func Xor(a, b Operand) (Value, error) { return dispatch(types.OpXor, a, b) }
