// ABOUTME: CLI entry point for venvup: subcommand dispatch before flag parsing
// ABOUTME: Bare invocation keeps the launcher behavior: ensure env, run tests, pause

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// commands lists the known subcommands, used by dispatch and suggestions.
var commands = []string{"run", "setup", "status", "doctor", "report", "clean", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Bare invocation is the double-clickable launcher path.
	sub := "run"
	explicit := false
	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		sub = argv[0]
		explicit = true
		argv = argv[1:]
	}

	if explicit && !known(sub) {
		fmt.Fprintln(os.Stderr, suggest(sub))
		return 2
	}
	if sub == "help" {
		printUsage(os.Stdout)
		return 0
	}

	args, err := parseFlags(sub, argv)
	if err != nil {
		return 2
	}
	if args.version {
		fmt.Printf("venvup %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	root, err := os.Getwd()
	if err != nil {
		log.Error("resolving working directory: %v", err)
		return 1
	}
	cfg, err := config.Load(root, args.config)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if args.noPause {
		cfg.Pause = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch sub {
	case "run":
		return cmdRun(ctx, cfg, args)
	case "setup":
		return cmdSetup(ctx, cfg, args)
	case "status":
		return cmdStatus(ctx, cfg, args)
	case "doctor":
		return cmdDoctor(ctx, cfg, args)
	case "report":
		return cmdReport(ctx, cfg, args)
	case "clean":
		return cmdClean(cfg)
	}
	return 2
}

func known(sub string) bool {
	for _, c := range commands {
		if c == sub {
			return true
		}
	}
	return false
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, `venvup ensures a project's Python virtual environment and runs its tests.

Usage:
  venvup              ensure the environment, run the entry-point, pause
  venvup setup        ensure the environment only
  venvup run          same as bare venvup
  venvup status       show environment state and installed packages
  venvup doctor       diagnose interpreter, environment, and package index
  venvup report       print a Markdown environment report
  venvup clean        remove the environment
  venvup help         show this help

Flags (accepted by every subcommand):
  --config PATH   project manifest to use instead of venvup.yaml
  --no-pause      skip the final acknowledgment prompt
  --plain         plain output: no progress UI, no styled rendering
  --verbose       debug logging
  --version       print version and exit
`)
}
