package yafwi

import (
	"math/big"
)

// Abs returns |v| in v's type; the signed minimum wraps onto itself.
func (v Value) Abs() Value {
	return v.mustType().wrapRaw(new(big.Int).Abs(v.raw))
}

// Neg returns -v in v's type.
func (v Value) Neg() Value {
	return v.mustType().wrapRaw(new(big.Int).Neg(v.raw))
}

// Pos returns +v.
func (v Value) Pos() Value {
	return v.mustType().New(v.raw)
}

// Ceil returns v; integers are their own ceiling.
func (v Value) Ceil() Value { return v.mustType().New(v.raw) }

// Floor returns v.
func (v Value) Floor() Value { return v.mustType().New(v.raw) }

// Trunc returns v.
func (v Value) Trunc() Value { return v.mustType().New(v.raw) }

// Round returns v.
func (v Value) Round() Value { return v.mustType().New(v.raw) }

// Index returns v for use as an index.
func (v Value) Index() Value { return v.mustType().New(v.raw) }

// Int returns v as an integer of its own type.
func (v Value) Int() Value { return v.mustType().New(v.raw) }

var ten = big.NewInt(10)

// RoundTo rounds v to ndigits decimal places. Non-negative ndigits leave v
// unchanged; negative ndigits round to a multiple of 10^-ndigits with ties
// going to the even multiple.
func (v Value) RoundTo(ndigits int) Value {
	t := v.mustType()
	if ndigits >= 0 {
		return t.New(v.raw)
	}
	// 10^(width+1) exceeds twice any magnitude of the type, so every value
	// rounds to zero from there on.
	if ndigits < -(t.desc.Bits() + 1) {
		return t.New(zero)
	}
	p := new(big.Int).Exp(ten, big.NewInt(-int64(ndigits)), nil)
	q, r := floorDivMod(v.raw, p)
	switch twice := new(big.Int).Lsh(r, 1); twice.Cmp(p) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}
	return t.wrapRaw(q.Mul(q, p))
}
