// ABOUTME: Pip operations inside an environment: manifest install, archive install, freeze
// ABOUTME: Wraps `python -m pip` via os/exec with context and wrapped errors

package pip

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/MountainEclipse/venvup/internal/venv"
)

// Pip runs package operations with an environment's own interpreter, so
// installs always target that environment regardless of what is on PATH.
type Pip struct {
	env *venv.Env

	// Out receives pip's stdout/stderr. Defaults to os.Stderr; the progress
	// UI redirects it to keep the display intact.
	Out io.Writer
}

// Package is one installed distribution as reported by pip freeze.
type Package struct {
	Name    string
	Version string
}

// New returns a Pip bound to env.
func New(env *venv.Env) *Pip {
	return &Pip{env: env, Out: os.Stderr}
}

// command builds `<env python> -m pip <args>` with output wired to p.Out.
func (p *Pip) command(ctx context.Context, args ...string) *exec.Cmd {
	full := append([]string{"-m", "pip"}, args...)
	cmd := exec.CommandContext(ctx, p.env.Python(), full...)
	cmd.Stdout = p.Out
	cmd.Stderr = p.Out
	return cmd
}

// InstallRequirements runs `pip install -r <manifest>`. The manifest grammar
// belongs to pip; venvup never interprets its contents.
func (p *Pip) InstallRequirements(ctx context.Context, manifest string) error {
	if err := p.command(ctx, "install", "-r", manifest).Run(); err != nil {
		return fmt.Errorf("pip install -r %s: %w", manifest, err)
	}
	return nil
}

// InstallArchive installs a single local package archive file.
func (p *Pip) InstallArchive(ctx context.Context, path string) error {
	if err := p.command(ctx, "install", path).Run(); err != nil {
		return fmt.Errorf("pip install %s: %w", path, err)
	}
	return nil
}

// Freeze returns the environment's installed packages. Lines pip emits that
// are not plain name==version pins (editable installs, VCS URLs) are kept
// with the raw line as the name.
func (p *Pip) Freeze(ctx context.Context) ([]Package, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, p.env.Python(), "-m", "pip", "freeze")
	cmd.Stdout = &buf
	cmd.Stderr = p.Out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pip freeze: %w", err)
	}
	return ParseFreeze(&buf), nil
}

// ParseFreeze parses `pip freeze` output.
func ParseFreeze(r io.Reader) []Package {
	var pkgs []Package
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, version, ok := strings.Cut(line, "=="); ok {
			pkgs = append(pkgs, Package{Name: name, Version: version})
			continue
		}
		pkgs = append(pkgs, Package{Name: line})
	}
	return pkgs
}
