// ABOUTME: Progress reporting interface for the bootstrap sequence
// ABOUTME: LogReporter is the plain fallback used off-TTY and in verbose mode

package bootstrap

import "github.com/MountainEclipse/venvup/internal/log"

// Reporter receives progress events from the bootstrap sequence. The TUI
// reporter and the plain log reporter both implement it.
type Reporter interface {
	// Step announces that a named step is starting.
	Step(name string)
	// Done marks the most recent step as completed.
	Done(name string)
	// Fail marks the most recent step as failed. The sequence stops after
	// the first failure.
	Fail(name string, err error)
	// Notice emits a free-form message, such as the completion notice.
	Notice(msg string)
}

// LogReporter writes progress as log lines.
type LogReporter struct{}

func (LogReporter) Step(name string) { log.Info("%s...", name) }

func (LogReporter) Done(name string) { log.Debug("%s: done", name) }

func (LogReporter) Fail(name string, err error) { log.Error("%s: %v", name, err) }

func (LogReporter) Notice(msg string) { log.Info("%s", msg) }

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) Step(string)        {}
func (nopReporter) Done(string)        {}
func (nopReporter) Fail(string, error) {}
func (nopReporter) Notice(string)      {}
