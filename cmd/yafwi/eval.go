package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
	"github.com/buhanec/yafwi/internal/trace"
)

var errUsage = errors.New("usage: <type> <lhs> <op> [<rhs>]")

type binaryFunc func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error)

// Checked operators go through the package dispatchers so that a wider
// right operand takes over the result type.
var binaryOps = map[string]binaryFunc{
	"+":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.Add(v, o) },
	"-":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.Sub(v, o) },
	"*":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.Mul(v, o) },
	"&":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.And(v, o) },
	"|":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.Or(v, o) },
	"^":  func(v yafwi.Value, o yafwi.Operand) (yafwi.Value, error) { return yafwi.Xor(v, o) },
	"//": yafwi.Value.FloorDiv,
	"%":  yafwi.Value.Mod,
	"**": yafwi.Value.Pow,
	"<<": yafwi.Value.Shl,
	">>": yafwi.Value.Shr,
}

var unaryOps = map[string]func(v yafwi.Value) yafwi.Value{
	"~":   yafwi.Value.Invert,
	"neg": yafwi.Value.Neg,
	"abs": yafwi.Value.Abs,
	"+":   yafwi.Value.Pos,
}

func init() {
	// Operands such as -128 must reach RunE as arguments, not shorthand flags.
	evalCmd.Flags().SetInterspersed(false)
}

var evalCmd = &cobra.Command{
	Use:   "eval <type> <lhs> <op> [<rhs>]",
	Short: "Evaluate one operation on a fixed-width value",
	Long: `Evaluate one operation on a fixed-width value.

The left operand is wrapped into <type>. The right operand is a plain integer
or a typed value written as <type>:<n>. Integers accept 0x, 0o and 0b
prefixes and underscores.

Binary operators: + - * // % ** << >> & | ^
Unary operators:  ~ neg abs`,
	Example: `  yafwi eval int8 127 + 1
  yafwi eval uint8 0 ~
  yafwi eval int8 100 + int16:100
  yafwi eval int8 -128 abs`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := evalArgs(cmd.Context(), activeRegistry(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

// parseInt reads a Go-syntax integer literal.
func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func resolveType(reg *yafwi.Registry, name string) (*yafwi.Type, error) {
	t, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q", name)
	}
	return t, nil
}

// parseOperand reads "n" as a literal and "type:n" as a value of that type.
func parseOperand(reg *yafwi.Registry, s string) (yafwi.Operand, error) {
	if typeName, num, ok := strings.Cut(s, ":"); ok {
		t, err := resolveType(reg, typeName)
		if err != nil {
			return nil, err
		}
		n, err := parseInt(num)
		if err != nil {
			return nil, err
		}
		return t.New(n), nil
	}
	n, err := parseInt(s)
	if err != nil {
		return nil, err
	}
	return yafwi.LitBig(n), nil
}

// evalArgs evaluates "<type> <lhs> <op> [<rhs>]".
func evalArgs(ctx context.Context, reg *yafwi.Registry, args []string) (yafwi.Value, error) {
	if len(args) < 3 || len(args) > 4 {
		return yafwi.Value{}, errUsage
	}
	t, err := resolveType(reg, args[0])
	if err != nil {
		return yafwi.Value{}, err
	}
	n, err := parseInt(args[1])
	if err != nil {
		return yafwi.Value{}, err
	}
	lhs := t.New(n)
	op := args[2]

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeOp, "eval", 0).
		WithExtra("op", op).
		WithExtra("lhs", lhs.String())

	var res yafwi.Value
	if len(args) == 3 {
		res, err = evalUnary(lhs, op)
	} else {
		res, err = evalBinary(reg, lhs, op, args[3])
	}
	if err != nil {
		span.End(err.Error())
		return yafwi.Value{}, err
	}
	span.End(res.String())
	return res, nil
}

func evalUnary(v yafwi.Value, op string) (yafwi.Value, error) {
	fn, ok := unaryOps[op]
	if !ok {
		if _, binary := binaryOps[op]; binary {
			return yafwi.Value{}, fmt.Errorf("operator %q needs a right operand", op)
		}
		return yafwi.Value{}, fmt.Errorf("unknown operator %q", op)
	}
	return fn(v), nil
}

func evalBinary(reg *yafwi.Registry, v yafwi.Value, op, rhs string) (yafwi.Value, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return yafwi.Value{}, fmt.Errorf("unknown operator %q", op)
	}
	o, err := parseOperand(reg, rhs)
	if err != nil {
		return yafwi.Value{}, err
	}
	return fn(v, o)
}
