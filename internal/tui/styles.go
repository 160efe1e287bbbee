// ABOUTME: Lipgloss styles shared by the progress display and status output
// ABOUTME: Basic ANSI colors only, so dark and light terminals both stay readable

package tui

import "github.com/charmbracelet/lipgloss"

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	noticeStyle  = lipgloss.NewStyle().Bold(true)

	// HeaderStyle decorates section headers in status output.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	// OKStyle and BadStyle mark status table rows.
	OKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	BadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
