// Package yafwi provides fixed-width integers with C-style wraparound
// arithmetic on top of math/big.
//
// Every value belongs to a *Type fixed by a width and a signedness. Values
// are immutable; each operator computes its result in arbitrary precision and
// reduces it into the range of the result type, so overflow wraps instead of
// failing:
//
//	x := yafwi.Int8.FromInt64(127)
//	y, _ := x.Add(yafwi.Lit(1))
//	fmt.Println(y) // int8(-128)
//
// Binary arithmetic and bitwise operators accept another Value only when the
// receiver is at least as wide as it (on equal widths, a signed receiver does
// not take an unsigned operand). Rejected combinations return ErrNotSupported;
// the package-level Add, Sub, Mul, And, Or and Xor functions retry with the
// reflected operator the way a dynamic runtime would:
//
//	a := yafwi.Int8.FromInt64(100)
//	b := yafwi.Int16.FromInt64(100)
//	_, err := a.Add(b)         // ErrNotSupported
//	sum, _ := yafwi.Add(a, b)  // int16(200)
//
// Types other than the predefined 8..256-bit ones come from Generate:
//
//	u24 := yafwi.MustGenerate(24, true)
//	u24.Max() // uint24(16777215)
//
// Values must be compared with Equal or Cmp, never with ==.
package yafwi
