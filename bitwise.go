package yafwi

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"

	"github.com/buhanec/yafwi/internal/types"
)

// shiftCount converts a non-negative shift count, capping it at width+1.
// Any count >= width shifts every significant bit out of a width-bit value,
// so the capped shift has the same wrapped result as the full one.
func (v Value) shiftCount(op types.BinaryOp, n Operand) (uint, error) {
	t := v.mustType()
	c := n.ref()
	if c.Sign() < 0 {
		return 0, fmt.Errorf("%s %s %s: %w", t, op, c, ErrNegativeShift)
	}
	limit := uint64(t.desc.Width) + 1
	if !c.IsUint64() || c.Uint64() > limit {
		return safecast.Conv[uint](limit)
	}
	return safecast.Conv[uint](c.Uint64())
}

// Shl returns v << n in v's type.
func (v Value) Shl(n Operand) (Value, error) {
	s, err := v.shiftCount(types.OpShl, n)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrapRaw(new(big.Int).Lsh(v.raw, s)), nil
}

// Shr returns v >> n in v's type. Negative values shift arithmetically.
func (v Value) Shr(n Operand) (Value, error) {
	s, err := v.shiftCount(types.OpShr, n)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrapRaw(new(big.Int).Rsh(v.raw, s)), nil
}

// Invert returns the one's complement of v over its full width.
func (v Value) Invert() Value {
	t := v.mustType()
	return t.wrapRaw(new(big.Int).Not(v.raw))
}
