// ABOUTME: Bridges the bootstrap Reporter interface onto a running Bubble Tea program
// ABOUTME: RunWithProgress owns the program lifecycle around a bootstrap function

package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Reporter forwards bootstrap progress events into a tea.Program.
type Reporter struct {
	prog *tea.Program
}

func (r *Reporter) Step(name string)          { r.prog.Send(stepMsg{name: name}) }
func (r *Reporter) Done(name string)          { r.prog.Send(doneMsg{name: name}) }
func (r *Reporter) Fail(name string, err error) { r.prog.Send(failMsg{name: name, err: err}) }
func (r *Reporter) Notice(msg string)         { r.prog.Send(noticeMsg{text: msg}) }

// RunWithProgress displays the progress UI while fn runs. fn receives the
// reporter and executes on a separate goroutine; its error is returned after
// the UI has drained and exited.
func RunWithProgress(fn func(r *Reporter) error) error {
	prog := tea.NewProgram(NewModel(), tea.WithOutput(os.Stderr))
	reporter := &Reporter{prog: prog}

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn(reporter)
		prog.Send(finishedMsg{})
	}()

	if _, err := prog.Run(); err != nil {
		// The UI failing must not mask the bootstrap result.
		return <-errCh
	}
	return <-errCh
}
