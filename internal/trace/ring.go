package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the most recent events in memory. The REPL reads it back
// for ":trace".
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	total uint64 // events ever stored; buf[total%len(buf)] is the next slot
	level Level
}

// NewRingTracer returns a ring holding up to size events; size <= 0 means 1024.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = 1024
	}
	return &RingTracer{buf: make([]Event, size), level: level}
}

func (r *RingTracer) Emit(ev *Event) {
	if !r.level.ShouldEmit(ev.Scope) {
		return
	}
	stored := *ev
	if stored.Seq == 0 {
		stored.Seq = NextSeq()
	}
	r.mu.Lock()
	r.buf[r.total%uint64(len(r.buf))] = stored
	r.total++
	r.mu.Unlock()
}

// Last returns up to n of the newest events, oldest first. n <= 0 returns
// everything held.
func (r *RingTracer) Last(n int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	size := uint64(len(r.buf))
	held := min(r.total, size)
	if n > 0 && uint64(n) < held {
		held = uint64(n)
	}
	out := make([]Event, held)
	start := r.total - held
	for i := range held {
		out[i] = r.buf[(start+i)%size]
	}
	return out
}

// Snapshot returns every held event, oldest first.
func (r *RingTracer) Snapshot() []Event {
	return r.Last(0)
}

// Reset drops all held events.
func (r *RingTracer) Reset() {
	r.mu.Lock()
	clear(r.buf)
	r.total = 0
	r.mu.Unlock()
}

// Dump writes the newest n events (all when n <= 0) to w.
func (r *RingTracer) Dump(w io.Writer, format Format, n int) error {
	for _, ev := range r.Last(n) {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (r *RingTracer) Flush() error { return nil }

func (r *RingTracer) Close() error { return nil }

func (r *RingTracer) Level() Level { return r.level }

func (r *RingTracer) Enabled() bool { return r.level > LevelOff }
