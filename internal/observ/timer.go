package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase records one timed step and how many operations it covered.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Ops   int
	Note  string
}

// Timer tracks a sequence of phases.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index. Unknown indexes are ignored.
func (t *Timer) End(idx, ops int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Ops = ops
	p.Note = note
}

// PhaseReport is the serializable form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Ops        int     `json:"ops,omitempty"`
	NsPerOp    float64 `json:"ns_per_op,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates every phase of a timer.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report summarizes the phases recorded so far.
func (t *Timer) Report() Report {
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		pr := PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Ops:        p.Ops,
			Note:       p.Note,
		}
		if p.Ops > 0 {
			pr.NsPerOp = float64(p.Dur.Nanoseconds()) / float64(p.Ops)
		}
		report.Phases[i] = pr
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// WriteText prints one aligned line per phase followed by the total.
func (r Report) WriteText(w io.Writer) error {
	for _, p := range r.Phases {
		line := fmt.Sprintf("  %-20s %9.2f ms", p.Name, p.DurationMS)
		if p.Ops > 0 {
			line += fmt.Sprintf(" %10.1f ns/op", p.NsPerOp)
		}
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-20s %9.2f ms\n", "total", r.TotalMS)
	return err
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
