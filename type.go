package yafwi

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/buhanec/yafwi/internal/types"
	"github.com/buhanec/yafwi/internal/wrap"
)

// Type is a fixed-width integer type. Obtain one from the predefined
// variables (Int8 ... Uint256) or from Generate; the zero Type is the
// abstract base and panics with ErrAbstractType when used.
type Type struct {
	desc     types.Descriptor
	id       types.TypeID
	min, max *big.Int
}

func newType(d types.Descriptor, id types.TypeID) *Type {
	lo, hi := wrap.Bounds(d)
	return &Type{desc: d, id: id, min: lo, max: hi}
}

func (t *Type) concrete() *Type {
	if t == nil || t.id == types.NoTypeID {
		panic(fmt.Errorf("%w: %s", ErrAbstractType, "construction of an untyped value"))
	}
	return t
}

// Width returns the number of bits, sign bit included.
func (t *Type) Width() uint {
	return uint(t.concrete().desc.Width)
}

// Unsigned reports whether the type is unsigned.
func (t *Type) Unsigned() bool {
	return t.concrete().desc.Unsigned()
}

// Min returns the smallest value of the type.
func (t *Type) Min() Value {
	return Value{typ: t.concrete(), raw: t.min}
}

// Max returns the largest value of the type.
func (t *Type) Max() Value {
	return Value{typ: t.concrete(), raw: t.max}
}

// String returns the canonical name, e.g. "uint8".
func (t *Type) String() string {
	if t == nil || t.id == types.NoTypeID {
		return "<abstract>"
	}
	return t.desc.String()
}

// New wraps v into the type's range. It never fails; a nil v is zero.
func (t *Type) New(v *big.Int) Value {
	t = t.concrete()
	if v == nil {
		v = zero
	}
	return Value{typ: t, raw: wrap.Reduce(v, t.desc)}
}

// FromInt64 wraps v into the type's range.
func (t *Type) FromInt64(v int64) Value {
	return t.New(big.NewInt(v))
}

// FromUint64 wraps v into the type's range.
func (t *Type) FromUint64(v uint64) Value {
	return t.New(new(big.Int).SetUint64(v))
}

// Of converts o into the type. Values are converted through their numeric
// value, so Int8.Of(Uint8.FromInt64(255)) is int8(-1).
func (t *Type) Of(o Operand) Value {
	return t.New(o.ref())
}

// From wraps any Go integer into t.
func From[T constraints.Integer](t *Type, v T) Value {
	if v < 0 {
		return t.FromInt64(int64(v))
	}
	return t.FromUint64(uint64(v))
}
