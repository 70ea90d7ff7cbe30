package yafwi

import (
	"errors"
	"math/big"
	"testing"
)

type binCase struct {
	name string
	got  func() (Value, error)
	want int64
	typ  *Type
}

func runBinCases(t *testing.T, cases []binCase) {
	t.Helper()
	for _, tc := range cases {
		v, err := tc.got()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if v.Type() != tc.typ {
			t.Fatalf("%s: result type %s, want %s", tc.name, v.Type(), tc.typ)
		}
		if !v.Equal(Lit(tc.want)) {
			t.Fatalf("%s = %s, want %d", tc.name, v, tc.want)
		}
	}
}

func TestCheckedArithmeticWraps(t *testing.T) {
	runBinCases(t, []binCase{
		{"int8 100+100", func() (Value, error) { return Int8.FromInt64(100).Add(Lit(100)) }, -56, Int8},
		{"uint8 3-5", func() (Value, error) { return Uint8.FromInt64(3).Sub(Lit(5)) }, 254, Uint8},
		{"int8 -128*-1", func() (Value, error) { return Int8.FromInt64(-128).Mul(Lit(-1)) }, -128, Int8},
		{"int8 -1&15", func() (Value, error) { return Int8.FromInt64(-1).And(Lit(0x0F)) }, 15, Int8},
		{"uint8 0xF0|0x0F", func() (Value, error) { return Uint8.FromInt64(0xF0).Or(Lit(0x0F)) }, 255, Uint8},
		{"int8 127^-1", func() (Value, error) { return Int8.FromInt64(127).Xor(Lit(-1)) }, -128, Int8},
		{"uint8 1|0x100", func() (Value, error) { return Uint8.FromInt64(1).Or(Lit(0x100)) }, 1, Uint8},
		{"int16 1+int8 1", func() (Value, error) { return Int16.FromInt64(1).Add(Int8.FromInt64(1)) }, 2, Int16},
		{"uint8 1+int8 -1", func() (Value, error) { return Uint8.FromInt64(1).Add(Int8.FromInt64(-1)) }, 0, Uint8},
		{"int16 0+uint8 255", func() (Value, error) { return Int16.FromInt64(0).Add(Uint8.FromInt64(255)) }, 255, Int16},
	})
}

func TestPromotionRejectsWiderOperands(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (Value, error)
	}{
		{"int8+int16", func() (Value, error) { return Int8.FromInt64(1).Add(Int16.FromInt64(1)) }},
		{"int8+uint8", func() (Value, error) { return Int8.FromInt64(1).Add(Uint8.FromInt64(1)) }},
		{"uint32*int64", func() (Value, error) { return Uint32.FromInt64(1).Mul(Int64.FromInt64(1)) }},
		{"int64^uint64", func() (Value, error) { return Int64.FromInt64(1).Xor(Uint64.FromInt64(1)) }},
		{"int8 rsub int16", func() (Value, error) { return Int8.FromInt64(3).RSub(Int16.FromInt64(1)) }},
	}
	for _, tc := range cases {
		if _, err := tc.fn(); !errors.Is(err, ErrNotSupported) {
			t.Fatalf("%s: expected ErrNotSupported, got %v", tc.name, err)
		}
	}
}

func TestDispatchRetriesReflected(t *testing.T) {
	runBinCases(t, []binCase{
		{"int8 100 + int16 100", func() (Value, error) { return Add(Int8.FromInt64(100), Int16.FromInt64(100)) }, 200, Int16},
		{"int8 1 + uint8 1", func() (Value, error) { return Add(Int8.FromInt64(1), Uint8.FromInt64(1)) }, 2, Uint8},
		{"5 + int8 3", func() (Value, error) { return Add(Lit(5), Int8.FromInt64(3)) }, 8, Int8},
		{"1 - uint8 2", func() (Value, error) { return Sub(Lit(1), Uint8.FromInt64(2)) }, 255, Uint8},
		{"int8 10 - int16 3", func() (Value, error) { return Sub(Int8.FromInt64(10), Int16.FromInt64(3)) }, 7, Int16},
		{"int16 300 * 2", func() (Value, error) { return Mul(Int16.FromInt64(300), Lit(2)) }, 600, Int16},
		{"6 & uint8 3", func() (Value, error) { return And(Lit(6), Uint8.FromInt64(3)) }, 2, Uint8},
		{"int8 1 | int32 6", func() (Value, error) { return Or(Int8.FromInt64(1), Int32.FromInt64(6)) }, 7, Int32},
		{"-1 ^ uint16 0", func() (Value, error) { return Xor(Lit(-1), Uint16.FromInt64(0)) }, 65535, Uint16},
	})
	if _, err := Add(Lit(1), Lit(2)); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("two literals must not dispatch, got %v", err)
	}
}

func TestReflectedOperandOrder(t *testing.T) {
	runBinCases(t, []binCase{
		{"10 - int8 3", func() (Value, error) { return Int8.FromInt64(3).RSub(Lit(10)) }, 7, Int8},
		{"int8 3 - 10", func() (Value, error) { return Int8.FromInt64(3).Sub(Lit(10)) }, -7, Int8},
		{"200 + uint8 100", func() (Value, error) { return Uint8.FromInt64(100).RAdd(Lit(200)) }, 44, Uint8},
		{"3 * int8 50", func() (Value, error) { return Int8.FromInt64(50).RMul(Lit(3)) }, -106, Int8},
		{"int8 -1 & int16 5", func() (Value, error) { return Int16.FromInt64(5).RAnd(Int8.FromInt64(-1)) }, 5, Int16},
		{"1 | uint8 2", func() (Value, error) { return Uint8.FromInt64(2).ROr(Lit(1)) }, 3, Uint8},
		{"3 ^ uint8 1", func() (Value, error) { return Uint8.FromInt64(1).RXor(Lit(3)) }, 2, Uint8},
	})
}

func TestFloorDivision(t *testing.T) {
	runBinCases(t, []binCase{
		{"-7 // 2", func() (Value, error) { return Int8.FromInt64(-7).FloorDiv(Lit(2)) }, -4, Int8},
		{"-7 % 2", func() (Value, error) { return Int8.FromInt64(-7).Mod(Lit(2)) }, 1, Int8},
		{"7 // -2", func() (Value, error) { return Int8.FromInt64(7).FloorDiv(Lit(-2)) }, -4, Int8},
		{"7 % -2", func() (Value, error) { return Int8.FromInt64(7).Mod(Lit(-2)) }, -1, Int8},
		{"uint8 7 % -2", func() (Value, error) { return Uint8.FromInt64(7).Mod(Lit(-2)) }, 255, Uint8},
		{"-128 // -1", func() (Value, error) { return Int8.FromInt64(-128).FloorDiv(Lit(-1)) }, -128, Int8},
		{"int8 100 // int64 7", func() (Value, error) { return Int8.FromInt64(100).FloorDiv(Int64.FromInt64(7)) }, 14, Int8},
	})

	q, m, err := Int16.FromInt64(-17).DivMod(Lit(5))
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if !q.Equal(Lit(-4)) || !m.Equal(Lit(3)) {
		t.Fatalf("divmod(-17, 5) = (%s, %s)", q, m)
	}

	for _, fn := range []func() error{
		func() error { _, err := Int8.FromInt64(1).FloorDiv(Lit(0)); return err },
		func() error { _, err := Int8.FromInt64(1).Mod(Uint8.FromInt64(0)); return err },
		func() error { _, _, err := Int8.FromInt64(1).DivMod(Lit(0)); return err },
	} {
		if err := fn(); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("expected ErrDivisionByZero, got %v", err)
		}
	}
}

func TestPow(t *testing.T) {
	runBinCases(t, []binCase{
		{"int8 2**7", func() (Value, error) { return Int8.FromInt64(2).Pow(Lit(7)) }, -128, Int8},
		{"uint8 3**5", func() (Value, error) { return Uint8.FromInt64(3).Pow(Lit(5)) }, 243, Uint8},
		{"int8 -2**3", func() (Value, error) { return Int8.FromInt64(-2).Pow(Lit(3)) }, -8, Int8},
		{"int8 5**0", func() (Value, error) { return Int8.FromInt64(5).Pow(Lit(0)) }, 1, Int8},
	})

	got, err := Uint64.FromInt64(3).Pow(Lit(1000))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	want := Uint64.New(new(big.Int).Exp(big.NewInt(3), big.NewInt(1000), nil))
	if !got.Equal(want) {
		t.Fatalf("3**1000 in uint64 = %s, want %s", got, want)
	}

	if _, err := Int8.FromInt64(2).Pow(Lit(-1)); !errors.Is(err, ErrNegativeExponent) {
		t.Fatalf("expected ErrNegativeExponent, got %v", err)
	}
}

func TestPowMod(t *testing.T) {
	runBinCases(t, []binCase{
		{"pow(3, 4, 5)", func() (Value, error) { return Int32.FromInt64(3).PowMod(Lit(4), Lit(5)) }, 1, Int32},
		{"pow(3, -1, 7)", func() (Value, error) { return Int32.FromInt64(3).PowMod(Lit(-1), Lit(7)) }, 5, Int32},
		{"pow(3, 2, -7)", func() (Value, error) { return Int32.FromInt64(3).PowMod(Lit(2), Lit(-7)) }, -5, Int32},
		{"uint8 pow(3, 2, -7)", func() (Value, error) { return Uint8.FromInt64(3).PowMod(Lit(2), Lit(-7)) }, 251, Uint8},
		{"pow(-3, 3, 10)", func() (Value, error) { return Int8.FromInt64(-3).PowMod(Lit(3), Lit(10)) }, 3, Int8},
	})
	if _, err := Int32.FromInt64(2).PowMod(Lit(-1), Lit(4)); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible, got %v", err)
	}
	if _, err := Int32.FromInt64(2).PowMod(Lit(2), Lit(0)); !errors.Is(err, ErrZeroModulus) {
		t.Fatalf("expected ErrZeroModulus, got %v", err)
	}
}

func TestShifts(t *testing.T) {
	huge := LitBig(new(big.Int).Lsh(big.NewInt(1), 100))
	runBinCases(t, []binCase{
		{"int8 1<<7", func() (Value, error) { return Int8.FromInt64(1).Shl(Lit(7)) }, -128, Int8},
		{"uint8 1<<8", func() (Value, error) { return Uint8.FromInt64(1).Shl(Lit(8)) }, 0, Uint8},
		{"int8 -1<<huge", func() (Value, error) { return Int8.FromInt64(-1).Shl(huge) }, 0, Int8},
		{"int8 -128>>3", func() (Value, error) { return Int8.FromInt64(-128).Shr(Lit(3)) }, -16, Int8},
		{"int8 -1>>huge", func() (Value, error) { return Int8.FromInt64(-1).Shr(huge) }, -1, Int8},
		{"int8 64>>huge", func() (Value, error) { return Int8.FromInt64(64).Shr(huge) }, 0, Int8},
		{"uint8 200>>3", func() (Value, error) { return Uint8.FromInt64(200).Shr(Lit(3)) }, 25, Uint8},
		{"uint16 3<<int64 4", func() (Value, error) { return Uint16.FromInt64(3).Shl(Int64.FromInt64(4)) }, 48, Uint16},
	})
	if _, err := Int8.FromInt64(1).Shl(Lit(-1)); !errors.Is(err, ErrNegativeShift) {
		t.Fatalf("expected ErrNegativeShift, got %v", err)
	}
	if _, err := Int8.FromInt64(1).Shr(Lit(-1)); !errors.Is(err, ErrNegativeShift) {
		t.Fatalf("expected ErrNegativeShift, got %v", err)
	}
}

func TestUnary(t *testing.T) {
	cases := []struct {
		name string
		got  Value
		want int64
	}{
		{"~int8 0", Int8.FromInt64(0).Invert(), -1},
		{"~int8 5", Int8.FromInt64(5).Invert(), -6},
		{"~uint8 0", Uint8.FromInt64(0).Invert(), 255},
		{"~uint8 0xF0", Uint8.FromInt64(0xF0).Invert(), 0x0F},
		{"abs int8 -128", Int8.FromInt64(-128).Abs(), -128},
		{"abs int8 -5", Int8.FromInt64(-5).Abs(), 5},
		{"-uint8 1", Uint8.FromInt64(1).Neg(), 255},
		{"-int8 -128", Int8.FromInt64(-128).Neg(), -128},
		{"+int8 -3", Int8.FromInt64(-3).Pos(), -3},
	}
	for _, tc := range cases {
		if !tc.got.Equal(Lit(tc.want)) {
			t.Fatalf("%s = %s, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestIntegralIdentities(t *testing.T) {
	v := Int16.FromInt64(-1234)
	for name, got := range map[string]Value{
		"Ceil":  v.Ceil(),
		"Floor": v.Floor(),
		"Trunc": v.Trunc(),
		"Round": v.Round(),
		"Index": v.Index(),
		"Int":   v.Int(),
	} {
		if got.Type() != Int16 || !got.Equal(v) {
			t.Fatalf("%s() = %s, want %s", name, got, v)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		v       Value
		ndigits int
		want    int64
	}{
		{Int16.FromInt64(1234), 2, 1234},
		{Int16.FromInt64(1234), -2, 1200},
		{Int16.FromInt64(1250), -2, 1200},
		{Int16.FromInt64(1350), -2, 1400},
		{Int16.FromInt64(-1250), -2, -1200},
		{Int16.FromInt64(-1251), -2, -1300},
		{Int8.FromInt64(127), -2, 100},
		{Int8.FromInt64(127), -1, -126},
		{Int8.FromInt64(-128), -3, 0},
		{Int8.FromInt64(100), -100, 0},
		{Uint8.FromInt64(250), -2, 200},
	}
	for _, tc := range cases {
		got := tc.v.RoundTo(tc.ndigits)
		if got.Type() != tc.v.Type() || !got.Equal(Lit(tc.want)) {
			t.Fatalf("round(%s, %d) = %s, want %d", tc.v, tc.ndigits, got, tc.want)
		}
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := Int8.FromInt64(5)
	lit := Lit(3)
	_, _ = a.Add(lit)
	_, _ = a.Shl(Lit(3))
	_ = a.Neg()
	_ = a.Invert()
	_, _ = a.Pow(Lit(3))
	if !a.Equal(Lit(5)) || !lit.Equal(Lit(3)) {
		t.Fatalf("operands changed: a=%s lit=%s", a, lit)
	}
	if !Int8.Max().Equal(Lit(127)) {
		t.Fatalf("cached max changed")
	}
}
