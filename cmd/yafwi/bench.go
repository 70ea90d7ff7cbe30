package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
	"github.com/buhanec/yafwi/internal/observ"
)

var (
	benchOp     string
	benchN      int
	benchSeed   uint64
	benchFormat string
)

func init() {
	benchCmd.Flags().StringVar(&benchOp, "op", "+", "operator to measure")
	benchCmd.Flags().IntVarP(&benchN, "n", "n", 100000, "operations per type")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "seed for the operand generator")
	benchCmd.Flags().StringVar(&benchFormat, "format", "text", "output format (text|json)")
}

var benchCmd = &cobra.Command{
	Use:   "bench [type...]",
	Short: "Measure operator throughput per type",
	Long: `Apply one operator to random operands of each type and report the time
per operation. Without arguments every predefined type is measured. Combine
with --cpu-profile or --mem-profile to profile the run.`,
	Example: `  yafwi bench --op '*' int64 int128 uint256
  yafwi bench --cpu-profile cpu.pprof -n 1000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchFormat != "text" && benchFormat != "json" {
			return fmt.Errorf("unsupported format %q (must be text or json)", benchFormat)
		}
		list := yafwi.Predefined()
		if len(args) > 0 {
			var err error
			if list, err = limitsTypes(activeRegistry(), args); err != nil {
				return err
			}
		}
		report, err := runBench(list, benchOp, benchN, benchSeed)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if benchFormat == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		fmt.Fprintf(out, "%s x %d\n", benchOp, benchN)
		return report.WriteText(out)
	},
}

// runBench times n applications of op for every type in list. Operands are
// drawn from a fixed seed so runs are comparable.
func runBench(list []*yafwi.Type, op string, n int, seed uint64) (observ.Report, error) {
	if n <= 0 {
		return observ.Report{}, fmt.Errorf("operation count must be positive, got %d", n)
	}
	binary, isBinary := binaryOps[op]
	unary, isUnary := unaryOps[op]
	if !isBinary && !isUnary {
		return observ.Report{}, fmt.Errorf("unknown operator %q", op)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	timer := observ.NewTimer()
	for _, t := range list {
		lhs, rhs := benchOperands(rng, t, op, n)

		idx := timer.Begin(t.String())
		failed := 0
		for i := range n {
			if isBinary {
				if _, err := binary(lhs[i], rhs[i]); err != nil {
					failed++
				}
			} else {
				unary(lhs[i])
			}
		}
		note := ""
		if failed > 0 {
			note = fmt.Sprintf("%d errors", failed)
		}
		timer.End(idx, n, note)
	}
	return timer.Report(), nil
}

func benchOperands(rng *rand.Rand, t *yafwi.Type, op string, n int) ([]yafwi.Value, []yafwi.Operand) {
	lhs := make([]yafwi.Value, n)
	rhs := make([]yafwi.Operand, n)
	for i := range n {
		lhs[i] = t.FromUint64(rng.Uint64())
		switch op {
		case "<<", ">>":
			rhs[i] = yafwi.Lit(rng.Int64N(int64(t.Width()) + 1))
		case "**":
			rhs[i] = yafwi.Lit(rng.Int64N(64))
		case "//", "%":
			rhs[i] = yafwi.Lit(rng.Int64N(1<<16) + 1)
		default:
			rhs[i] = t.FromUint64(rng.Uint64())
		}
	}
	return lhs, rhs
}
