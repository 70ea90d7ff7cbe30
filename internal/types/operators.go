package types

import "fmt"

// BinaryOp enumerates the binary operators of fixed-width values.
type BinaryOp uint8

const (
	OpInvalid BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpFloorDiv
	OpMod
	OpPow
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpFloorDiv:
		return "//"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	default:
		return fmt.Sprintf("BinaryOp(%d)", op)
	}
}

// BinaryFlags annotate special handling for binary operators.
type BinaryFlags uint16

const (
	// BinaryFlagWidthChecked rejects fixed-width right operands that are wider
	// than the receiver (see Descriptor.AtLeastAsWide).
	BinaryFlagWidthChecked BinaryFlags = 1 << iota
	// BinaryFlagReflectable marks operators with a reflected form that the
	// dispatcher retries on rejection.
	BinaryFlagReflectable
)

// BinarySpec lists the handling of an operator. Every operator produces a
// value of the left operand's type.
type BinarySpec struct {
	Flags BinaryFlags
}

// Has reports whether all of the given flags are set.
func (s BinarySpec) Has(f BinaryFlags) bool {
	return s.Flags&f == f
}

const checked = BinaryFlagWidthChecked | BinaryFlagReflectable

var binarySpecTable = map[BinaryOp]BinarySpec{
	OpAdd:      {Flags: checked},
	OpSub:      {Flags: checked},
	OpMul:      {Flags: checked},
	OpAnd:      {Flags: checked},
	OpOr:       {Flags: checked},
	OpXor:      {Flags: checked},
	OpFloorDiv: {},
	OpMod:      {},
	OpPow:      {},
	OpShl:      {},
	OpShr:      {},
}

// BinarySpecFor returns the handling rules for op.
func BinarySpecFor(op BinaryOp) (BinarySpec, bool) {
	spec, ok := binarySpecTable[op]
	return spec, ok
}

// Accepts reports whether op applied to a left operand of type left may take a
// fixed-width right operand of type right. Operators without
// BinaryFlagWidthChecked accept any combination.
func Accepts(op BinaryOp, left, right Descriptor) bool {
	spec, ok := binarySpecTable[op]
	if !ok {
		return false
	}
	if !spec.Has(BinaryFlagWidthChecked) {
		return true
	}
	return left.AtLeastAsWide(right)
}
