// ABOUTME: Bubble Tea progress display for the bootstrap sequence
// ABOUTME: One line per step with spinner, check, or cross; notices appended below

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MountainEclipse/venvup/internal/width"
)

// spinnerFrames cycle while a step is running.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

type stepState int

const (
	stepRunning stepState = iota
	stepDone
	stepFailed
)

type stepEntry struct {
	name  string
	state stepState
	err   error
}

// Messages sent into the model by the Reporter side.
type (
	stepMsg     struct{ name string }
	doneMsg     struct{ name string }
	failMsg     struct {
		name string
		err  error
	}
	noticeMsg   struct{ text string }
	finishedMsg struct{}
	tickMsg     time.Time
)

// Model renders the bootstrap step list.
type Model struct {
	steps   []stepEntry
	notices []string
	frame   int
	width   int
}

// NewModel returns an empty progress model.
func NewModel() Model {
	return Model{width: 80}
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles progress and window messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.steps = append(m.steps, stepEntry{name: msg.name, state: stepRunning})
		return m, nil

	case doneMsg:
		m.mark(msg.name, stepDone, nil)
		return m, nil

	case failMsg:
		m.mark(msg.name, stepFailed, msg.err)
		return m, nil

	case noticeMsg:
		m.notices = append(m.notices, msg.text)
		return m, nil

	case finishedMsg:
		return m, tea.Quit

	case tickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// mark flips the state of the named step (the most recent match wins).
func (m *Model) mark(name string, state stepState, err error) {
	for i := len(m.steps) - 1; i >= 0; i-- {
		if m.steps[i].name == name {
			m.steps[i].state = state
			m.steps[i].err = err
			return
		}
	}
}

// View renders one line per step plus notices.
func (m Model) View() string {
	var out string
	for _, s := range m.steps {
		var line string
		switch s.state {
		case stepRunning:
			line = spinnerStyle.Render(spinnerFrames[m.frame]) + " " + s.name
		case stepDone:
			line = okStyle.Render("✓") + " " + s.name
		case stepFailed:
			line = errStyle.Render("✗") + " " + s.name + errStyle.Render(": "+s.err.Error())
		}
		out += width.Truncate(line, m.width) + "\n"
	}
	for _, n := range m.notices {
		out += noticeStyle.Render(n) + "\n"
	}
	return out
}
