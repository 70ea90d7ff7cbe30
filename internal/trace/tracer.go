package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level       // tracing level
	Format     Format      // output format
	Output     io.Writer   // if nil, OutputPath is opened
	OutputPath string      // file path ("-" or "" for stderr)
	RingSize   int         // when > 0, a RingTracer is attached as well
	Logger     *zap.Logger // used by FormatZap; nil builds a development logger
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}

	var primary Tracer
	if cfg.Format == FormatZap {
		logger := cfg.Logger
		if logger == nil {
			var err error
			logger, err = zap.NewDevelopment()
			if err != nil {
				return nil, fmt.Errorf("failed to build zap logger: %w", err)
			}
		}
		primary = NewZapTracer(logger, cfg.Level)
	} else {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		primary = NewStreamTracer(w, cfg.Level, cfg.Format)
	}

	if cfg.RingSize > 0 {
		return NewMultiTracer(cfg.Level, primary, NewRingTracer(cfg.RingSize, cfg.Level)), nil
	}
	return primary, nil
}

// openOutput opens the output writer from config.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return unclosable{os.Stderr}, nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// unclosable keeps StreamTracer.Close from closing stderr.
type unclosable struct{ io.Writer }

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	case "zap":
		return FormatZap, nil
	default:
		return FormatText, fmt.Errorf("invalid trace format: %q (expected: text|ndjson|zap)", s)
	}
}
