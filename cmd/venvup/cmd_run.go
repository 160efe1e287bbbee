// ABOUTME: The run and setup subcommands: ensure the environment, run the entry-point
// ABOUTME: The pause prompt runs after success and failure alike

package main

import (
	"bytes"
	"context"
	"os"

	"github.com/MountainEclipse/venvup/internal/bootstrap"
	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/console"
	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/runner"
	"github.com/MountainEclipse/venvup/internal/tui"
)

func cmdRun(ctx context.Context, cfg *config.Config, args cliArgs) int {
	code := runOnce(ctx, cfg, args)
	if cfg.Pause {
		if err := console.Pause(os.Stdin, os.Stderr); err != nil {
			log.Debug("pause: %v", err)
		}
	}
	return code
}

func runOnce(ctx context.Context, cfg *config.Config, args cliArgs) int {
	res, err := ensureEnv(ctx, cfg, args)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	code, err := runner.Run(ctx, res.Env, cfg.Entrypoint, runner.Options{WorkDir: cfg.Root})
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	return code
}

func cmdSetup(ctx context.Context, cfg *config.Config, args cliArgs) int {
	res, err := ensureEnv(ctx, cfg, args)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if res.Reused {
		log.Info("environment %s is up to date", cfg.EnvDir)
	}
	return 0
}

// ensureEnv runs the bootstrap under the progress UI when stderr is an
// interactive terminal, and under plain log lines otherwise. Installer
// output is captured while the UI owns the terminal and replayed on
// failure so the pip error is never lost.
func ensureEnv(ctx context.Context, cfg *config.Config, args cliArgs) (*bootstrap.Result, error) {
	if args.plain || args.verbose || !console.IsTerminal(os.Stderr) {
		return bootstrap.New(cfg, bootstrap.LogReporter{}).Ensure(ctx)
	}

	var pipOut bytes.Buffer
	var res *bootstrap.Result
	err := tui.RunWithProgress(func(r *tui.Reporter) error {
		b := bootstrap.New(cfg, r)
		b.PipOut = &pipOut
		var ensureErr error
		res, ensureErr = b.Ensure(ctx)
		return ensureErr
	})
	if err != nil && pipOut.Len() > 0 {
		os.Stderr.Write(pipOut.Bytes())
	}
	return res, err
}
