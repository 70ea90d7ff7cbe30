package yafwi

import (
	"fmt"
	"hash/maphash"
	"math/big"

	"fortio.org/safecast"
)

// Value is an immutable fixed-width integer. The zero Value is untyped and
// panics with ErrAbstractType when used.
type Value struct {
	typ *Type
	raw *big.Int // canonical for typ; never mutated after construction
}

func (v Value) mustType() *Type {
	if v.typ == nil || v.raw == nil {
		panic(fmt.Errorf("%w: %s", ErrAbstractType, "operation on an untyped value"))
	}
	return v.typ
}

// Type returns the value's type.
func (v Value) Type() *Type {
	return v.mustType()
}

// Width returns the width of the value's type.
func (v Value) Width() uint {
	return v.mustType().Width()
}

// Unsigned reports whether the value's type is unsigned.
func (v Value) Unsigned() bool {
	return v.mustType().Unsigned()
}

// Min returns the smallest value of v's type.
func (v Value) Min() Value {
	return v.mustType().Min()
}

// Max returns the largest value of v's type.
func (v Value) Max() Value {
	return v.mustType().Max()
}

// Big returns the numeric value as a fresh *big.Int.
func (v Value) Big() *big.Int {
	return new(big.Int).Set(v.ref())
}

func (v Value) ref() *big.Int {
	v.mustType()
	return v.raw
}

func (v Value) fixed() (*Type, bool) {
	return v.mustType(), true
}

// Int64 returns the value as an int64 if it fits.
func (v Value) Int64() (int64, bool) {
	r := v.ref()
	if !r.IsInt64() {
		return 0, false
	}
	return r.Int64(), true
}

// Uint64 returns the value as a uint64 if it fits.
func (v Value) Uint64() (uint64, bool) {
	r := v.ref()
	if !r.IsUint64() {
		return 0, false
	}
	return r.Uint64(), true
}

// AsInt returns the value as a Go int.
func (v Value) AsInt() (int, error) {
	r := v.ref()
	var (
		n   int
		err error
	)
	switch {
	case r.IsInt64():
		n, err = safecast.Conv[int](r.Int64())
	case r.IsUint64():
		n, err = safecast.Conv[int](r.Uint64())
	default:
		return 0, fmt.Errorf("%s: %w", v, ErrOutOfRange)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", v, ErrOutOfRange, err)
	}
	return n, nil
}

// Cmp compares v with o numerically and returns -1, 0 or +1. Types are ignored.
func (v Value) Cmp(o Operand) int {
	return v.ref().Cmp(o.ref())
}

// Equal reports whether v and o hold the same number, whatever their types.
func (v Value) Equal(o Operand) bool {
	return v.Cmp(o) == 0
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.ref().Sign() == 0
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.ref().Sign()
}

// Hash is consistent with Equal: numerically equal Values and Literals hash
// identically within a process.
func (v Value) Hash() uint64 {
	return hashBig(v.ref())
}

var hashSeed = maphash.MakeSeed()

func hashBig(x *big.Int) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	if x.Sign() < 0 {
		_ = h.WriteByte('-')
	}
	_, _ = h.Write(x.Bytes())
	return h.Sum64()
}

// Decimal returns the base-10 digits of v, e.g. "-128".
func (v Value) Decimal() string {
	return v.ref().String()
}

// String returns the debug form, e.g. "int8(-128)" or "uint16(7)".
func (v Value) String() string {
	if v.typ == nil || v.raw == nil {
		return "<abstract>"
	}
	return v.typ.String() + "(" + v.raw.String() + ")"
}
