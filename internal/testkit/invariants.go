package testkit

import (
	"fmt"
	"math/big"

	"github.com/buhanec/yafwi/internal/types"
	"github.com/buhanec/yafwi/internal/wrap"
)

// CheckCanonical runs the invariants every stored value of d must satisfy:
//  1. v lies within [min, max] of d
//  2. reducing v again leaves it unchanged
//  3. v is congruent to orig modulo 2^width, when orig is given
func CheckCanonical(v, orig *big.Int, d types.Descriptor) error {
	if v == nil {
		return fmt.Errorf("%s: nil value", d)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !wrap.Contains(v, d) {
		lo, hi := wrap.Bounds(d)
		return fmt.Errorf("%s: %s outside [%s, %s]", d, v, lo, hi)
	}
	if again := wrap.Reduce(v, d); again.Cmp(v) != 0 {
		return fmt.Errorf("%s: reduce(%s) = %s, not idempotent", d, v, again)
	}
	if orig != nil {
		diff := new(big.Int).Sub(orig, v)
		if diff.Mod(diff, wrap.Modulus(d)).Sign() != 0 {
			return fmt.Errorf("%s: %s is not congruent to %s", d, v, orig)
		}
	}
	return nil
}
