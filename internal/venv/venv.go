// ABOUTME: Virtual environment lifecycle: create via python -m venv, remove, inspect
// ABOUTME: Activation is modeled as environment construction for child processes

package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MountainEclipse/venvup/internal/interp"
	"github.com/MountainEclipse/venvup/internal/log"
)

// Env is a virtual environment rooted at Dir. The directory may or may not
// exist yet.
type Env struct {
	Dir string
}

// New returns an Env handle for dir without touching the filesystem.
func New(dir string) *Env {
	return &Env{Dir: dir}
}

// Exists reports whether the environment directory is present and contains
// an interpreter. A bare directory without one counts as absent, so a
// half-created environment is rebuilt rather than trusted.
func (e *Env) Exists() bool {
	fi, err := os.Stat(e.Dir)
	if err != nil || !fi.IsDir() {
		return false
	}
	_, err = os.Stat(e.Python())
	return err == nil
}

// BinDir returns the scripts directory inside the environment ("Scripts" on
// Windows, "bin" elsewhere).
func (e *Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Dir, "Scripts")
	}
	return filepath.Join(e.Dir, "bin")
}

// Python returns the path of the environment's interpreter executable.
func (e *Env) Python() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(e.BinDir(), name)
}

// Environ returns base with the environment activated: VIRTUAL_ENV set, the
// env's bin dir prepended to PATH, and PYTHONHOME removed. This mirrors what
// the activate scripts do for an interactive shell.
func (e *Env) Environ(base []string) []string {
	out := make([]string, 0, len(base)+2)
	pathSet := false
	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			out = append(out, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PYTHONHOME"):
			// dropped: it would redirect the venv interpreter's stdlib
		case strings.EqualFold(key, "PATH"):
			out = append(out, key+"="+e.BinDir()+string(os.PathListSeparator)+kv[len(key)+1:])
			pathSet = true
		case strings.EqualFold(key, "VIRTUAL_ENV"):
			// replaced below
		default:
			out = append(out, kv)
		}
	}
	if !pathSet {
		out = append(out, "PATH="+e.BinDir())
	}
	out = append(out, "VIRTUAL_ENV="+e.Dir)
	return out
}

// Create builds the environment with `python -m venv`. The parent directory
// is created as needed. Fails if the interpreter exits non-zero.
func Create(ctx context.Context, py *interp.Python, dir string) (*Env, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return nil, fmt.Errorf("creating parent of %s: %w", dir, err)
	}

	log.Info("creating environment at %s (python %s)", dir, py.Version)
	cmd := py.Command(ctx, "-m", "venv", dir)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("python -m venv %s: %w", dir, err)
	}
	return New(dir), nil
}

// Remove deletes the environment directory. Removing an absent environment
// is not an error.
func (e *Env) Remove() error {
	if err := os.RemoveAll(e.Dir); err != nil {
		return fmt.Errorf("removing environment %s: %w", e.Dir, err)
	}
	return nil
}
