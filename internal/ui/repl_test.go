package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func enter(t *testing.T, m tea.Model, line string) (tea.Model, tea.Cmd) {
	t.Helper()
	rm, ok := m.(*replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", m)
	}
	rm.input.SetValue(line)
	return rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestReplRecordsResults(t *testing.T) {
	calls := 0
	m := NewReplModel("yafwi", func(line string) (string, error) {
		calls++
		if line == "bad" {
			return "", errors.New("unknown type")
		}
		return "int8(-128)", nil
	})

	m, _ = enter(t, m, "int8 127 + 1")
	m, _ = enter(t, m, "bad")
	m, _ = enter(t, m, "   ")

	rm := m.(*replModel)
	if calls != 2 {
		t.Fatalf("eval called %d times, want 2", calls)
	}
	if len(rm.history) != 2 || rm.history[0].output != "int8(-128)" || !rm.history[1].failed {
		t.Fatalf("unexpected history %+v", rm.history)
	}
	if rm.input.Value() != "" {
		t.Fatalf("input not cleared")
	}
	view := rm.View()
	if !strings.Contains(view, "int8 127 + 1") || !strings.Contains(view, "unknown type") {
		t.Fatalf("view misses history:\n%s", view)
	}
}

func TestReplQuits(t *testing.T) {
	for _, line := range []string{":q", "quit", "exit"} {
		m := NewReplModel("yafwi", func(string) (string, error) {
			t.Fatalf("eval must not run for %q", line)
			return "", nil
		})
		m, cmd := enter(t, m, line)
		if cmd == nil || !m.(*replModel).quitting {
			t.Fatalf("%q did not quit", line)
		}
	}

	m := NewReplModel("yafwi", nil)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.(*replModel).quitting {
		t.Fatalf("ctrl+c did not quit")
	}
}

func TestReplHistoryIsBounded(t *testing.T) {
	m := NewReplModel("yafwi", func(line string) (string, error) { return line, nil })
	for range maxHistory + 5 {
		m, _ = enter(t, m, "x")
	}
	if n := len(m.(*replModel).history); n != maxHistory {
		t.Fatalf("history holds %d entries, want %d", n, maxHistory)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("uint256", 20); got != "uint256" {
		t.Fatalf("short strings must be kept, got %q", got)
	}
	if got := truncate("123456789", 6); got != "123..." {
		t.Fatalf("truncate = %q", got)
	}
}
