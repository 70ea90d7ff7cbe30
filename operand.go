package yafwi

import (
	"math/big"
)

// Operand is the right-hand side of an operator: a Value or a Literal.
type Operand interface {
	// Big returns the numeric value as a fresh *big.Int.
	Big() *big.Int

	ref() *big.Int
	fixed() (*Type, bool)
}

var (
	_ Operand = Value{}
	_ Operand = Literal{}
)

var zero = new(big.Int)

// Literal is a plain arbitrary-precision integer. It has no width, so it
// never triggers the promotion check.
type Literal struct {
	v *big.Int
}

// Lit returns a Literal holding v.
func Lit(v int64) Literal {
	return Literal{v: big.NewInt(v)}
}

// LitUint returns a Literal holding v.
func LitUint(v uint64) Literal {
	return Literal{v: new(big.Int).SetUint64(v)}
}

// LitBig returns a Literal holding a copy of v. A nil v is zero.
func LitBig(v *big.Int) Literal {
	if v == nil {
		return Literal{}
	}
	return Literal{v: new(big.Int).Set(v)}
}

// Big returns a copy of the literal's value.
func (l Literal) Big() *big.Int {
	return new(big.Int).Set(l.ref())
}

// Cmp compares the literal with another operand numerically.
func (l Literal) Cmp(o Operand) int {
	return l.ref().Cmp(o.ref())
}

// Equal reports numeric equality with o.
func (l Literal) Equal(o Operand) bool {
	return l.Cmp(o) == 0
}

// Hash agrees with Value.Hash for equal numbers.
func (l Literal) Hash() uint64 {
	return hashBig(l.ref())
}

func (l Literal) String() string {
	return l.ref().String()
}

func (l Literal) ref() *big.Int {
	if l.v == nil {
		return zero
	}
	return l.v
}

func (Literal) fixed() (*Type, bool) { return nil, false }

func operandLabel(o Operand) string {
	if t, ok := o.fixed(); ok {
		return t.String()
	}
	return "int"
}
