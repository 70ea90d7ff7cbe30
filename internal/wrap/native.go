package wrap

import (
	"math"
	"math/big"

	"github.com/buhanec/yafwi/internal/types"
)

func asUint64(v int64) uint64 {
	return uint64(v) //nolint:gosec // G115: intentional bit-pattern reinterpretation.
}

func asInt64(v uint64) int64 {
	return int64(v) //nolint:gosec // G115: intentional bit-pattern reinterpretation for fixed-width ints.
}

func maskForWidth(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << bits) - 1
}

func signExtendUnsigned(value uint64, bits int) int64 {
	if bits >= 64 {
		return asInt64(value)
	}
	mask := maskForWidth(bits)
	value &= mask
	signBit := uint64(1) << (bits - 1)
	if value&signBit == 0 {
		return asInt64(value)
	}
	return asInt64(value | ^mask)
}

// lowWord returns the low 64 bits of v in two's complement, if v fits in an
// int64 or a uint64.
func lowWord(v *big.Int) (uint64, bool) {
	switch {
	case v.IsInt64():
		return asUint64(v.Int64()), true
	case v.IsUint64():
		return v.Uint64(), true
	default:
		return 0, false
	}
}

// reduceNative handles descriptors of at most 64 bits whose input fits a
// machine word. It reports false when the generic path must be used.
func reduceNative(v *big.Int, d types.Descriptor) (*big.Int, bool) {
	bits := d.Bits()
	if bits > 64 {
		return nil, false
	}
	low, ok := lowWord(v)
	if !ok {
		return nil, false
	}
	masked := low & maskForWidth(bits)
	if d.Unsigned() {
		return new(big.Int).SetUint64(masked), true
	}
	return new(big.Int).SetInt64(signExtendUnsigned(masked, bits)), true
}
