package trace

import (
	"maps"
	"slices"

	"go.uber.org/zap"
)

// ZapTracer forwards events to a zap logger. Span and point events are
// logged at debug level.
type ZapTracer struct {
	logger *zap.Logger
	level  Level
}

// NewZapTracer wraps logger. A nil logger is replaced by zap.NewNop().
func NewZapTracer(logger *zap.Logger, level Level) *ZapTracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapTracer{logger: logger, level: level}
}

// Emit logs the event with its fields.
func (t *ZapTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	fields := make([]zap.Field, 0, 6+len(ev.Extra))
	fields = append(fields,
		zap.Uint64("seq", ev.Seq),
		zap.String("kind", ev.Kind.String()),
		zap.String("scope", ev.Scope.String()),
		zap.Uint64("span_id", ev.SpanID),
	)
	if ev.ParentID != 0 {
		fields = append(fields, zap.Uint64("parent_id", ev.ParentID))
	}
	if ev.Detail != "" {
		fields = append(fields, zap.String("detail", ev.Detail))
	}
	for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
		fields = append(fields, zap.String(k, ev.Extra[k]))
	}
	t.logger.Debug(ev.Name, fields...)
}

// Flush syncs the logger. Sync errors on terminals are common and ignored by callers.
func (t *ZapTracer) Flush() error {
	return t.logger.Sync()
}

// Close flushes the logger.
func (t *ZapTracer) Close() error {
	return t.Flush()
}

// Level returns the current tracing level.
func (t *ZapTracer) Level() Level {
	return t.level
}

// Enabled returns true if tracing is active.
func (t *ZapTracer) Enabled() bool {
	return t.level > LevelOff
}
