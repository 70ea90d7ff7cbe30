// Package wrap maps arbitrary integers onto the canonical range of a
// fixed-width descriptor.
//
// The rule is modular: r = v mod 2^w taken in [0, 2^w); unsigned descriptors
// keep r, signed descriptors reinterpret the low w bits as two's complement.
// Widths up to 64 bits take a machine-word path when the input fits in one;
// everything else goes through math/big.
package wrap
