package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// EvalFunc evaluates one input line and returns its printable result.
type EvalFunc func(line string) (string, error)

// maxHistory bounds how many past entries the view keeps on screen.
const maxHistory = 32

type entry struct {
	input  string
	output string
	failed bool
}

type replModel struct {
	title    string
	eval     EvalFunc
	input    textinput.Model
	history  []entry
	width    int
	quitting bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// NewReplModel returns a Bubble Tea model that reads expressions and shows
// their results. ":q", "quit", Esc and Ctrl+C leave the loop.
func NewReplModel(title string, eval EvalFunc) tea.Model {
	in := textinput.New()
	in.Placeholder = "int8 127 + 1"
	in.Prompt = promptStyle.Render("› ")
	in.Focus()
	return &replModel{
		title: title,
		eval:  eval,
		input: in,
		width: 80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = max(msg.Width-4, 10)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	switch line {
	case "":
		return nil
	case ":q", ":quit", "quit", "exit":
		m.quitting = true
		return tea.Quit
	}
	out, err := m.eval(line)
	e := entry{input: line, output: out}
	if err != nil {
		e.output, e.failed = err.Error(), true
	}
	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	return nil
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	lineWidth := max(m.width-4, 20)
	for _, e := range m.history {
		b.WriteString("  ")
		b.WriteString(truncate(e.input, lineWidth))
		b.WriteString("\n")
		for _, out := range strings.Split(e.output, "\n") {
			style := okStyle
			if e.failed {
				style = errStyle
			}
			b.WriteString("    ")
			b.WriteString(style.Render(truncate(out, lineWidth-2)))
			b.WriteString("\n")
		}
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(":help for commands, :q to quit"))
	b.WriteString("\n")
	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
