// ABOUTME: The doctor subcommand: print diagnostics and exit non-zero on any failure
// ABOUTME: Check marks are styled only when stdout is a terminal

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/console"
	"github.com/MountainEclipse/venvup/internal/doctor"
	"github.com/MountainEclipse/venvup/internal/tui"
	"github.com/MountainEclipse/venvup/internal/width"
)

func cmdDoctor(ctx context.Context, cfg *config.Config, args cliArgs) int {
	styled := console.IsTerminal(os.Stdout) && !args.plain

	failed := 0
	for _, c := range doctor.Run(ctx, cfg) {
		mark := "ok"
		if styled {
			mark = tui.OKStyle.Render("✓")
		}
		if !c.OK {
			failed++
			mark = "FAIL"
			if styled {
				mark = tui.BadStyle.Render("✗")
			}
		}
		fmt.Printf("%s %s %s\n", mark, width.Pad(c.Name, 16), c.Detail)
	}

	if failed > 0 {
		fmt.Printf("\n%d check(s) failed\n", failed)
		return 1
	}
	return 0
}
