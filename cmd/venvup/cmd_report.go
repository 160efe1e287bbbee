// ABOUTME: The report subcommand: render a Markdown snapshot of the environment
// ABOUTME: Styled rendering on a terminal, raw Markdown when piped or --plain

package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/console"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/pip"
	"github.com/MountainEclipse/venvup/internal/report"
	"github.com/MountainEclipse/venvup/internal/venv"
)

const defaultReportWidth = 100

func cmdReport(ctx context.Context, cfg *config.Config, args cliArgs) int {
	env := venv.New(cfg.EnvDir)

	data := report.Data{
		Config:    cfg,
		EnvExists: env.Exists(),
	}

	lock, err := lockfile.Load(cfg.EnvDir)
	if err != nil {
		log.Warn("unreadable lock: %v", err)
	}
	data.Lock = lock

	if cfg.LibsDir != "" {
		archives, err := pip.DiscoverArchives(cfg.LibsDir)
		if err != nil {
			log.Warn("discovering archives: %v", err)
		}
		data.Archives = archives
	}

	if data.EnvExists {
		pkgs, err := pip.New(env).Freeze(ctx)
		if err != nil {
			log.Warn("listing packages: %v", err)
		}
		data.Packages = pkgs
	}

	onTTY := console.IsTerminal(os.Stdout)
	w := defaultReportWidth
	if onTTY {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
			w = cols
		}
	}

	fmt.Print(report.Render(report.Markdown(data), w, args.plain || !onTTY))
	return 0
}
