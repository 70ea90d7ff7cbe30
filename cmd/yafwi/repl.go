package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
	"github.com/buhanec/yafwi/internal/trace"
	"github.com/buhanec/yafwi/internal/ui"
)

const replHelp = `<type> <lhs> <op> [<rhs>]   evaluate, e.g. "int8 127 + 1" or "uint8 1 + int16:2"
:limits [type...]            show type ranges
:gen <width> [u]             generate a type, u for unsigned
:trace [n|clear]             show the last n registry and operator events, or drop them
:q                           quit`

// replTraceSize is how many recent events ":trace" can show.
const replTraceSize = 64

var replUI string

func init() {
	replCmd.Flags().StringVar(&replUI, "ui", "auto", "interactive UI mode (auto|on|off)")
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Read expressions line by line and print their results. With --ui=off, or
when stdin is not a terminal, lines are read from stdin without the
interactive interface.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := readSwitchMode("ui", replUI)
		if err != nil {
			return err
		}
		r := newReplSession(cmd.Context(), activeRegistry())
		if !mode.resolve(os.Stdin) {
			return r.runScript(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		program := tea.NewProgram(ui.NewReplModel("yafwi repl", r.evalLine), tea.WithOutput(os.Stdout))
		_, err = program.Run()
		return err
	},
}

// replSession evaluates REPL lines against a registry and keeps recent
// trace events for ":trace".
type replSession struct {
	ctx  context.Context
	reg  *yafwi.Registry
	ring *trace.RingTracer
}

func newReplSession(ctx context.Context, reg *yafwi.Registry) *replSession {
	ring := trace.NewRingTracer(replTraceSize, trace.LevelDebug)
	var tracer trace.Tracer = ring
	if outer := trace.FromContext(ctx); outer.Enabled() {
		tracer = trace.NewMultiTracer(trace.LevelDebug, outer, ring)
	}
	reg.SetTracer(tracer)
	return &replSession{
		ctx:  trace.WithTracer(ctx, tracer),
		reg:  reg,
		ring: ring,
	}
}

func (r *replSession) evalLine(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	switch fields[0] {
	case ":help", "help":
		return replHelp, nil
	case ":trace":
		return r.traceCommand(fields[1:])
	case ":limits":
		list, err := limitsTypes(r.reg, fields[1:])
		if err != nil {
			return "", err
		}
		return r.table(list)
	case ":gen":
		if len(fields) < 2 || len(fields) > 3 {
			return "", fmt.Errorf("usage: :gen <width> [u]")
		}
		width, err := strconv.ParseUint(fields[1], 10, 0)
		if err != nil {
			return "", fmt.Errorf("invalid width %q", fields[1])
		}
		unsigned := len(fields) == 3
		if unsigned && fields[2] != "u" {
			return "", fmt.Errorf("usage: :gen <width> [u], got %q", fields[2])
		}
		t, err := r.reg.Generate(uint(width), unsigned)
		if err != nil {
			return "", err
		}
		return r.table([]*yafwi.Type{t})
	}
	v, err := evalArgs(r.ctx, r.reg, fields)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (r *replSession) traceCommand(args []string) (string, error) {
	n := 0
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("usage: :trace [n|clear]")
	case len(args) == 1 && args[0] == "clear":
		r.ring.Reset()
		return "", nil
	case len(args) == 1:
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			return "", fmt.Errorf("invalid event count %q", args[0])
		}
		n = v
	}
	var buf bytes.Buffer
	if err := r.ring.Dump(&buf, trace.FormatText, n); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (r *replSession) table(list []*yafwi.Type) (string, error) {
	var buf bytes.Buffer
	if err := writeTable(&buf, limitsHeader, limitsRows(r.reg, list, false)); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// runScript evaluates every line of in, reporting errors inline. It stops
// at ":q" or end of input.
func (r *replSession) runScript(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == ":q" || line == ":quit" || line == "quit" || line == "exit" {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := r.evalLine(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, res)
	}
	return sc.Err()
}
