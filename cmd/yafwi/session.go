package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
	"github.com/buhanec/yafwi/internal/trace"
)

// session is the per-invocation state shared by all subcommands.
type session struct {
	registry      *yafwi.Registry
	span          *trace.Span
	stopTracing   func()
	stopProfiling func() error
	closeOnce     sync.Once
}

var current *session

func setupSession(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return err
	}
	mode, err := readSwitchMode("color", colorFlag)
	if err != nil {
		return err
	}
	color.NoColor = !mode.resolve(os.Stdout)

	configFlag, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, cfgPath, err := resolveConfig(configFlag)
	if err != nil {
		return err
	}

	tracer, stopTracing, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		stopTracing()
		return err
	}

	s := &session{
		registry:      yafwi.NewRegistry(yafwi.WithTracer(tracer)),
		stopTracing:   stopTracing,
		stopProfiling: stopProfiling,
	}
	s.span = trace.Begin(tracer, trace.ScopeCommand, cmd.Name(), 0)
	if cfgPath != "" {
		s.span.WithExtra("config", cfgPath)
	}
	current = s

	if err := registerTypes(s.registry, cfg); err != nil {
		return fmt.Errorf("%s: %w", cfgPath, err)
	}
	return nil
}

// closeSession stops the profilers, ends the command span and releases the
// tracer. It is safe to call when no session was set up.
func closeSession(cmd *cobra.Command) {
	s := current
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		var (
			name   string
			stderr io.Writer = os.Stderr
		)
		if cmd != nil {
			name, stderr = cmd.Name(), cmd.ErrOrStderr()
		}
		if err := s.stopProfiling(); err != nil {
			fmt.Fprintf(stderr, "profile: %v\n", err)
		}
		s.span.End(name)
		s.stopTracing()
	})
}

// activeRegistry returns the session registry, or the default one when the
// command runs outside the root command (as in tests).
func activeRegistry() *yafwi.Registry {
	if current == nil {
		return yafwi.Default()
	}
	return current.registry
}
