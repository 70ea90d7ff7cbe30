package yafwi

import "github.com/buhanec/yafwi/internal/types"

// builtinInterner fixes the TypeIDs of the predefined types; every
// Registry's interner assigns the same IDs to them.
var builtinInterner = types.NewInterner()

func predefined(d types.Descriptor) *Type {
	id, ok := builtinInterner.Find(d)
	if !ok {
		panic("yafwi: predefined descriptor not seeded: " + d.String())
	}
	return newType(d, id)
}

// Predefined types.
var (
	Int8    = predefined(types.MakeInt(types.Width8))
	Int16   = predefined(types.MakeInt(types.Width16))
	Int32   = predefined(types.MakeInt(types.Width32))
	Int64   = predefined(types.MakeInt(types.Width64))
	Int128  = predefined(types.MakeInt(types.Width128))
	Int256  = predefined(types.MakeInt(types.Width256))
	Uint8   = predefined(types.MakeUint(types.Width8))
	Uint16  = predefined(types.MakeUint(types.Width16))
	Uint32  = predefined(types.MakeUint(types.Width32))
	Uint64  = predefined(types.MakeUint(types.Width64))
	Uint128 = predefined(types.MakeUint(types.Width128))
	Uint256 = predefined(types.MakeUint(types.Width256))
)

// Conventional short names.
var (
	SByte  = Int8
	Byte   = Uint8
	Short  = Int16
	UShort = Uint16
	Int    = Int32
	UInt   = Uint32
	Long   = Int64
	ULong  = Uint64
)

// Predefined returns the predefined types, signed before unsigned, narrowest first.
func Predefined() []*Type {
	return []*Type{
		Int8, Int16, Int32, Int64, Int128, Int256,
		Uint8, Uint16, Uint32, Uint64, Uint128, Uint256,
	}
}

// builtinAliases maps alias names to types. "int_" is the 32-bit signed
// alias; the trailing underscore keeps it apart from the canonical prefix.
var builtinAliases = map[string]*Type{
	"sbyte":  SByte,
	"byte":   Byte,
	"short":  Short,
	"ushort": UShort,
	"int_":   Int,
	"uint":   UInt,
	"long":   Long,
	"ulong":  ULong,
}
