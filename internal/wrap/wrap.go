package wrap

import (
	"fmt"
	"math/big"

	"github.com/buhanec/yafwi/internal/types"
)

var one = big.NewInt(1)

func mustValid(d types.Descriptor) {
	if err := d.Validate(); err != nil {
		panic(fmt.Errorf("wrap: %w", err))
	}
}

// Modulus returns 2^w for the descriptor's width.
func Modulus(d types.Descriptor) *big.Int {
	mustValid(d)
	return new(big.Int).Lsh(one, uint(d.Width))
}

// Reduce returns the canonical representative of v for d as a fresh integer.
// v is not modified.
func Reduce(v *big.Int, d types.Descriptor) *big.Int {
	mustValid(d)
	if r, ok := reduceNative(v, d); ok {
		return r
	}
	return reduceBig(v, d)
}

func reduceBig(v *big.Int, d types.Descriptor) *big.Int {
	m := new(big.Int).Lsh(one, uint(d.Width))
	// Mod is Euclidean; with m > 0 it matches floor modulo.
	r := new(big.Int).Mod(v, m)
	if d.Unsigned() {
		return r
	}
	half := new(big.Int).Lsh(one, uint(d.Width-1))
	if r.Cmp(half) >= 0 {
		r.Sub(r, m)
	}
	return r
}

// Bounds returns the smallest and largest representable values of d.
func Bounds(d types.Descriptor) (lo, hi *big.Int) {
	mustValid(d)
	if d.Unsigned() {
		hi = new(big.Int).Lsh(one, uint(d.Width))
		return new(big.Int), hi.Sub(hi, one)
	}
	half := new(big.Int).Lsh(one, uint(d.Width-1))
	lo = new(big.Int).Neg(half)
	return lo, half.Sub(half, one)
}

// Contains reports whether v already lies in the canonical range of d.
func Contains(v *big.Int, d types.Descriptor) bool {
	lo, hi := Bounds(d)
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}
