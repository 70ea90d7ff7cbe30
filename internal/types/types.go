package types

import (
	"errors"
	"fmt"
)

// Kind enumerates the integer families a descriptor can belong to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width is the number of bits of an integer type, sign bit included.
type Width uint32

const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width256 Width = 256
)

// MaxWidth caps generated types so that a single value stays a bounded amount of work.
const MaxWidth Width = 1 << 20

// ErrInvalidWidth reports a width outside [1, MaxWidth].
var ErrInvalidWidth = errors.New("invalid integer width")

// Predefined lists the widths that have statically declared types.
var Predefined = [...]Width{Width8, Width16, Width32, Width64, Width128, Width256}

// Descriptor identifies a fixed-width integer type. Two descriptors describe
// the same type iff they are equal.
type Descriptor struct {
	Kind  Kind
	Width Width
}

// MakeInt describes a signed integer of the given width.
func MakeInt(width Width) Descriptor {
	return Descriptor{Kind: KindInt, Width: width}
}

// MakeUint describes an unsigned integer of the given width.
func MakeUint(width Width) Descriptor {
	return Descriptor{Kind: KindUint, Width: width}
}

// Make picks MakeInt or MakeUint from a signedness flag.
func Make(width Width, unsigned bool) Descriptor {
	if unsigned {
		return MakeUint(width)
	}
	return MakeInt(width)
}

// Unsigned reports whether the descriptor is of the unsigned family.
func (d Descriptor) Unsigned() bool {
	return d.Kind == KindUint
}

// Bits returns the width as a plain int.
func (d Descriptor) Bits() int {
	return int(d.Width)
}

// Validate reports whether d can back a concrete type.
func (d Descriptor) Validate() error {
	if d.Kind != KindInt && d.Kind != KindUint {
		return fmt.Errorf("%w: kind %s", ErrInvalidWidth, d.Kind)
	}
	if d.Width == 0 || d.Width > MaxWidth {
		return fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidWidth, d.Width, MaxWidth)
	}
	return nil
}

// String returns the canonical type name, e.g. int8 or uint256.
func (d Descriptor) String() string {
	if d.Unsigned() {
		return fmt.Sprintf("uint%d", d.Width)
	}
	return fmt.Sprintf("int%d", d.Width)
}

// AtLeastAsWide reports whether a value of d may absorb an operand of other
// without losing the operand's range: other is not wider, and on equal widths
// an unsigned operand does not meet a signed receiver.
func (d Descriptor) AtLeastAsWide(other Descriptor) bool {
	if other.Width > d.Width {
		return false
	}
	if other.Width == d.Width && other.Unsigned() && !d.Unsigned() {
		return false
	}
	return true
}
