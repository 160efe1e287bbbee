// ABOUTME: Markdown environment report: config, freshness, packages, archive set
// ABOUTME: Rendered for the terminal with glamour; raw Markdown in plain mode

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/pip"
)

// Data collects everything the report describes.
type Data struct {
	Config    *config.Config
	EnvExists bool
	Lock      *lockfile.Lock // nil when absent or unreadable
	Packages  []pip.Package  // pip freeze output; nil when env absent
	Archives  []pip.Archive
}

// Markdown builds the report source.
func Markdown(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Environment report\n\n")
	fmt.Fprintf(&b, "- Project: `%s`\n", d.Config.Root)
	fmt.Fprintf(&b, "- Environment: `%s`\n", d.Config.EnvDir)
	fmt.Fprintf(&b, "- Python pin: `%s`\n", d.Config.Python)
	fmt.Fprintf(&b, "- Requirements: `%s`\n", d.Config.Requirements)

	switch {
	case !d.EnvExists:
		b.WriteString("- Status: **absent** (next run will create it)\n")
	case d.Lock == nil:
		b.WriteString("- Status: **unlocked** (next run will rebuild it)\n")
	default:
		fmt.Fprintf(&b, "- Status: built %s with python %s\n",
			d.Lock.CreatedAt.Format("2006-01-02 15:04 MST"), d.Lock.Python)
	}

	if len(d.Archives) > 0 {
		b.WriteString("\n## Local archives\n\n")
		b.WriteString("| Archive | SHA-256 |\n|---|---|\n")
		for _, a := range d.Archives {
			fmt.Fprintf(&b, "| %s | `%s` |\n", a.Name, shortHash(a.SHA256))
		}
	}

	if d.Packages != nil {
		b.WriteString("\n## Installed packages\n\n")
		if len(d.Packages) == 0 {
			b.WriteString("_none_\n")
		} else {
			b.WriteString("| Package | Version |\n|---|---|\n")
			for _, p := range d.Packages {
				version := p.Version
				if version == "" {
					version = "-"
				}
				fmt.Fprintf(&b, "| %s | %s |\n", p.Name, version)
			}
		}
	}

	return b.String()
}

// Render returns the terminal-styled rendering of the markdown, or the raw
// source when plain is set or styling fails.
func Render(md string, width int, plain bool) string {
	if plain {
		return md
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ") + "\n"
}

// shortHash abbreviates a hex digest for table display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
