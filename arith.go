package yafwi

import (
	"fmt"
	"math/big"

	"github.com/buhanec/yafwi/internal/types"
	"github.com/buhanec/yafwi/internal/wrap"
)

type bigOp func(z, x, y *big.Int) *big.Int

var checkedOps = map[types.BinaryOp]bigOp{
	types.OpAdd: (*big.Int).Add,
	types.OpSub: (*big.Int).Sub,
	types.OpMul: (*big.Int).Mul,
	types.OpAnd: (*big.Int).And,
	types.OpOr:  (*big.Int).Or,
	types.OpXor: (*big.Int).Xor,
}

func (t *Type) wrapRaw(raw *big.Int) Value {
	return Value{typ: t, raw: wrap.Reduce(raw, t.desc)}
}

func notSupported(op types.BinaryOp, left, right string) error {
	return fmt.Errorf("%w: %s %s %s", ErrNotSupported, left, op, right)
}

// apply computes v op o with the result typed as v.
func (v Value) apply(op types.BinaryOp, o Operand) (Value, error) {
	t := v.mustType()
	if ot, ok := o.fixed(); ok && !types.Accepts(op, t.desc, ot.desc) {
		return Value{}, notSupported(op, t.String(), ot.String())
	}
	return t.wrapRaw(checkedOps[op](new(big.Int), v.raw, o.ref())), nil
}

// applyReflected computes o op v with the result typed as v; v is the right
// operand of the original expression.
func (v Value) applyReflected(op types.BinaryOp, o Operand) (Value, error) {
	t := v.mustType()
	if ot, ok := o.fixed(); ok && !types.Accepts(op, t.desc, ot.desc) {
		return Value{}, notSupported(op, ot.String(), t.String())
	}
	return t.wrapRaw(checkedOps[op](new(big.Int), o.ref(), v.raw)), nil
}

// Add returns v + o in v's type.
func (v Value) Add(o Operand) (Value, error) { return v.apply(types.OpAdd, o) }

// Sub returns v - o in v's type.
func (v Value) Sub(o Operand) (Value, error) { return v.apply(types.OpSub, o) }

// Mul returns v * o in v's type.
func (v Value) Mul(o Operand) (Value, error) { return v.apply(types.OpMul, o) }

// And returns v & o in v's type.
func (v Value) And(o Operand) (Value, error) { return v.apply(types.OpAnd, o) }

// Or returns v | o in v's type.
func (v Value) Or(o Operand) (Value, error) { return v.apply(types.OpOr, o) }

// Xor returns v ^ o in v's type.
func (v Value) Xor(o Operand) (Value, error) { return v.apply(types.OpXor, o) }

// RAdd returns o + v in v's type.
func (v Value) RAdd(o Operand) (Value, error) { return v.applyReflected(types.OpAdd, o) }

// RSub returns o - v in v's type.
func (v Value) RSub(o Operand) (Value, error) { return v.applyReflected(types.OpSub, o) }

// RMul returns o * v in v's type.
func (v Value) RMul(o Operand) (Value, error) { return v.applyReflected(types.OpMul, o) }

// RAnd returns o & v in v's type.
func (v Value) RAnd(o Operand) (Value, error) { return v.applyReflected(types.OpAnd, o) }

// ROr returns o | v in v's type.
func (v Value) ROr(o Operand) (Value, error) { return v.applyReflected(types.OpOr, o) }

// RXor returns o ^ v in v's type.
func (v Value) RXor(o Operand) (Value, error) { return v.applyReflected(types.OpXor, o) }

// floorDivMod returns q = floor(x/y) and m = x - q*y, so m takes the sign of y.
func floorDivMod(x, y *big.Int) (q, m *big.Int) {
	q, m = new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, y)
	}
	return q, m
}

func (v Value) divisor(op types.BinaryOp, o Operand) (*Type, *big.Int, error) {
	t := v.mustType()
	d := o.ref()
	if d.Sign() == 0 {
		return nil, nil, fmt.Errorf("%s %s %s: %w", t, op, operandLabel(o), ErrDivisionByZero)
	}
	return t, d, nil
}

// FloorDiv returns floor(v / o) in v's type.
func (v Value) FloorDiv(o Operand) (Value, error) {
	t, d, err := v.divisor(types.OpFloorDiv, o)
	if err != nil {
		return Value{}, err
	}
	q, _ := floorDivMod(v.raw, d)
	return t.wrapRaw(q), nil
}

// Mod returns v mod o in v's type; a non-zero result has the sign of o
// before wrapping.
func (v Value) Mod(o Operand) (Value, error) {
	t, d, err := v.divisor(types.OpMod, o)
	if err != nil {
		return Value{}, err
	}
	_, m := floorDivMod(v.raw, d)
	return t.wrapRaw(m), nil
}

// DivMod returns FloorDiv and Mod together.
func (v Value) DivMod(o Operand) (q, m Value, err error) {
	t, d, err := v.divisor(types.OpFloorDiv, o)
	if err != nil {
		return Value{}, Value{}, err
	}
	qq, mm := floorDivMod(v.raw, d)
	return t.wrapRaw(qq), t.wrapRaw(mm), nil
}

// Pow returns v ** e in v's type. The power is taken modulo 2^width, which
// is exactly the wrapped result of the full power.
func (v Value) Pow(e Operand) (Value, error) {
	t := v.mustType()
	exp := e.ref()
	if exp.Sign() < 0 {
		return Value{}, fmt.Errorf("%s ** %s: %w", t, exp, ErrNegativeExponent)
	}
	m := wrap.Modulus(t.desc)
	base := new(big.Int).Mod(v.raw, m)
	return t.wrapRaw(new(big.Int).Exp(base, exp, m)), nil
}

// PowMod returns pow(v, e, mod) in v's type. A negative exponent uses the
// modular inverse of v; a non-zero result takes the sign of mod before
// wrapping.
func (v Value) PowMod(e, mod Operand) (Value, error) {
	t := v.mustType()
	m := mod.ref()
	if m.Sign() == 0 {
		return Value{}, fmt.Errorf("pow(%s, %s, 0): %w", v, e.ref(), ErrZeroModulus)
	}
	am := new(big.Int).Abs(m)
	base := new(big.Int).Mod(v.raw, am)
	exp := e.ref()
	if exp.Sign() < 0 {
		inv := new(big.Int).ModInverse(base, am)
		if inv == nil {
			return Value{}, fmt.Errorf("pow(%s, %s, %s): %w", v, exp, m, ErrNotInvertible)
		}
		base = inv
		exp = new(big.Int).Neg(exp)
	}
	r := new(big.Int).Exp(base, exp, am)
	if m.Sign() < 0 && r.Sign() != 0 {
		r.Add(r, m)
	}
	return t.wrapRaw(r), nil
}
