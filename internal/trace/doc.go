// Package trace records what the type registry and the CLI are doing.
//
// Tracing is off by default. The CLI enables it with
//
//	yafwi eval --trace=- --trace-level=detail uint24 1 + 2
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelPhase: Command boundaries
//   - LevelDetail: Registry activity (type generation, lookups)
//   - LevelDebug: Everything, including individual operator evaluations
//
// # Sinks
//
//   - Nop: zero-overhead default
//   - StreamTracer: immediate write as text or NDJSON
//   - RingTracer: last N events kept in memory
//   - ZapTracer: forwards events to a *zap.Logger
//   - MultiTracer: fan-out to several sinks
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeRegistry, "generate", 0)
//	defer span.End("")
package trace
