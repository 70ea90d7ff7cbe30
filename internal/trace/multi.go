package trace

import (
	"errors"
	"maps"
)

// MultiTracer fans events out to several sinks. Each sink applies its own
// level filter.
type MultiTracer struct {
	sinks []Tracer
	level Level
}

// NewMultiTracer combines sinks under level. Disabled sinks are dropped and
// nested MultiTracers are flattened, so an event reaches each sink once.
func NewMultiTracer(level Level, sinks ...Tracer) *MultiTracer {
	m := &MultiTracer{level: level}
	for _, s := range sinks {
		m.add(s)
	}
	return m
}

func (m *MultiTracer) add(s Tracer) {
	switch s := s.(type) {
	case nil:
	case *MultiTracer:
		for _, inner := range s.sinks {
			m.add(inner)
		}
	default:
		if s.Enabled() {
			m.sinks = append(m.sinks, s)
		}
	}
}

// Emit hands every sink its own copy of ev, Extra included.
func (m *MultiTracer) Emit(ev *Event) {
	if !m.level.ShouldEmit(ev.Scope) {
		return
	}
	for _, s := range m.sinks {
		cp := *ev
		cp.Extra = maps.Clone(ev.Extra)
		s.Emit(&cp)
	}
}

// Flush flushes every sink and joins their errors.
func (m *MultiTracer) Flush() error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Flush())
	}
	return errors.Join(errs...)
}

// Close closes every sink and joins their errors.
func (m *MultiTracer) Close() error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

func (m *MultiTracer) Level() Level { return m.level }

// Enabled reports whether the level is on and at least one sink is left.
func (m *MultiTracer) Enabled() bool {
	return m.level > LevelOff && len(m.sinks) > 0
}
