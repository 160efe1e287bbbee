// ABOUTME: Entry-point execution inside an activated environment
// ABOUTME: Inherits stdio by default and surfaces the child's real exit code

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/venv"
)

// Options adjusts how the entry-point process is run. Zero values mean
// "inherit from this process".
type Options struct {
	WorkDir string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run executes `<env python> <entrypoint>` with the environment activated
// and returns the child's exit code. A non-zero exit is reported through the
// exit code, not the error; the error covers failures to start at all.
func Run(ctx context.Context, env *venv.Env, entrypoint string, opts Options) (int, error) {
	if _, err := os.Stat(entrypoint); err != nil {
		return 0, fmt.Errorf("entry-point script: %w", err)
	}

	cmd := exec.CommandContext(ctx, env.Python(), entrypoint)
	cmd.Env = env.Environ(os.Environ())
	cmd.Dir = opts.WorkDir

	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	log.Debug("running entry-point %s with %s", entrypoint, env.Python())
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("running %s: %w", entrypoint, err)
}
