// ABOUTME: The status subcommand: environment state, lock contents, installed packages
// ABOUTME: Styled when stdout is a terminal, plain otherwise

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/console"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/pip"
	"github.com/MountainEclipse/venvup/internal/tui"
	"github.com/MountainEclipse/venvup/internal/venv"
	"github.com/MountainEclipse/venvup/internal/width"
)

func cmdStatus(ctx context.Context, cfg *config.Config, args cliArgs) int {
	styled := console.IsTerminal(os.Stdout) && !args.plain

	header := func(s string) string {
		if styled {
			return tui.HeaderStyle.Render(s)
		}
		return s
	}
	mark := func(ok bool) string {
		if ok {
			if styled {
				return tui.OKStyle.Render("present")
			}
			return "present"
		}
		if styled {
			return tui.BadStyle.Render("missing")
		}
		return "missing"
	}
	row := func(label, value string) {
		fmt.Printf("  %s %s\n", width.Pad(label, 14), value)
	}

	env := venv.New(cfg.EnvDir)

	fmt.Println(header("Project"))
	row("root", cfg.Root)
	row("python", cfg.Python)
	row("requirements", cfg.Requirements)
	if cfg.LibsDir != "" {
		row("libs", cfg.LibsDir)
	}
	fmt.Println()

	fmt.Println(header("Environment"))
	row("directory", cfg.EnvDir)
	row("state", mark(env.Exists()))

	lock, err := lockfile.Load(cfg.EnvDir)
	if err != nil {
		log.Warn("unreadable lock: %v", err)
	}
	if lock != nil {
		row("locked python", lock.Python)
		row("locked at", lock.CreatedAt.Format("2006-01-02 15:04:05"))
		row("archives", fmt.Sprintf("%d", len(lock.Archives)))
	} else {
		row("lock", mark(false))
	}
	fmt.Println()

	if !env.Exists() {
		return 0
	}

	pkgs, err := pip.New(env).Freeze(ctx)
	if err != nil {
		log.Error("listing packages: %v", err)
		return 1
	}
	fmt.Println(header(fmt.Sprintf("Packages (%d)", len(pkgs))))
	for _, p := range pkgs {
		fmt.Printf("  %s %s\n", width.Pad(p.Name, 30), p.Version)
	}
	return 0
}
