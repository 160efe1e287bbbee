// ABOUTME: The bootstrap orchestrator: ensure a fresh environment, fail fast on errors
// ABOUTME: Lock-based staleness detection decides between fast path and full rebuild

package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/interp"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/log"
	"github.com/MountainEclipse/venvup/internal/pip"
	"github.com/MountainEclipse/venvup/internal/venv"
)

// Step names surfaced through the Reporter.
const (
	StepResolve      = "resolve interpreter"
	StepRemoveStale  = "remove stale environment"
	StepCreate       = "create environment"
	StepRequirements = "install requirements"
	StepLock         = "write lock"
)

// Result describes what Ensure did.
type Result struct {
	Env      *venv.Env
	Reused   bool // fast path: environment existed and the lock matched
	Lock     *lockfile.Lock
	Archives []pip.Archive
}

// Bootstrapper runs the provisioning sequence for one project.
type Bootstrapper struct {
	cfg      *config.Config
	reporter Reporter

	// PipOut receives installer output. Defaults to os.Stderr.
	PipOut io.Writer

	// Seams for orchestration tests; production code never overrides these.
	findInterp func(ctx context.Context, pin string) (*interp.Python, error)
	createEnv  func(ctx context.Context, py *interp.Python, dir string) (*venv.Env, error)
	installReq func(ctx context.Context, p *pip.Pip, manifest string) error
	installArc func(ctx context.Context, p *pip.Pip, path string) error
}

// New returns a Bootstrapper for cfg. A nil reporter discards progress.
func New(cfg *config.Config, reporter Reporter) *Bootstrapper {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Bootstrapper{
		cfg:        cfg,
		reporter:   reporter,
		PipOut:     os.Stderr,
		findInterp: interp.Find,
		createEnv:  venv.Create,
		installReq: func(ctx context.Context, p *pip.Pip, manifest string) error {
			return p.InstallRequirements(ctx, manifest)
		},
		installArc: func(ctx context.Context, p *pip.Pip, path string) error {
			return p.InstallArchive(ctx, path)
		},
	}
}

// Ensure makes the environment exist and match the declared inputs. The
// sequence is strictly ordered and aborts on the first failure:
//
//	discover archives -> fast-path check -> resolve interpreter ->
//	remove stale env -> create env -> install requirements ->
//	install each archive (sorted order) -> write lock
//
// The fast path (environment present, lock matching) performs no external
// invocations at all.
func (b *Bootstrapper) Ensure(ctx context.Context) (*Result, error) {
	archives, err := pip.DiscoverArchives(b.cfg.LibsDir)
	if err != nil {
		return nil, err
	}

	env := venv.New(b.cfg.EnvDir)
	stored, err := lockfile.Load(b.cfg.EnvDir)
	if err != nil {
		// A corrupt lock is treated like a stale one: rebuild.
		log.Warn("unreadable lock, rebuilding: %v", err)
		stored = nil
	}

	if env.Exists() && b.lockFresh(stored, archives) {
		log.Debug("environment %s is fresh, skipping setup", b.cfg.EnvDir)
		return &Result{Env: env, Reused: true, Lock: stored, Archives: archives}, nil
	}

	var py *interp.Python
	if err := b.step(StepResolve, func() error {
		py, err = b.findInterp(ctx, b.cfg.Python)
		return err
	}); err != nil {
		return nil, err
	}

	desired, err := lockfile.Fingerprint(interp.MajorMinor(py.Version), b.cfg.Requirements, archives)
	if err != nil {
		return nil, err
	}

	if env.Exists() {
		if err := b.step(StepRemoveStale, env.Remove); err != nil {
			return nil, err
		}
	}

	if err := b.step(StepCreate, func() error {
		env, err = b.createEnv(ctx, py, b.cfg.EnvDir)
		return err
	}); err != nil {
		return nil, err
	}

	p := pip.New(env)
	p.Out = b.PipOut

	if err := b.step(StepRequirements, func() error {
		return b.installReq(ctx, p, b.cfg.Requirements)
	}); err != nil {
		return nil, err
	}

	for _, a := range archives {
		if err := b.step("install "+a.Name, func() error {
			return b.installArc(ctx, p, a.Path)
		}); err != nil {
			return nil, err
		}
	}

	if err := b.step(StepLock, func() error {
		return lockfile.Save(b.cfg.EnvDir, desired)
	}); err != nil {
		return nil, err
	}

	b.reporter.Notice("Done!")
	return &Result{Env: env, Lock: desired, Archives: archives}, nil
}

// lockFresh reports whether the stored lock still matches the declared
// inputs. The interpreter is not resolved here: the environment carries its
// own interpreter, so the stored major.minor only has to satisfy the pin.
func (b *Bootstrapper) lockFresh(stored *lockfile.Lock, archives []pip.Archive) bool {
	if stored == nil {
		return false
	}
	if !interp.MatchesPin(stored.Python, b.cfg.Python) {
		return false
	}
	desired, err := lockfile.Fingerprint(stored.Python, b.cfg.Requirements, archives)
	if err != nil {
		log.Debug("fingerprint: %v", err)
		return false
	}
	return desired.Matches(stored)
}

// step runs fn under a reporter step, wrapping failures with the step name.
func (b *Bootstrapper) step(name string, fn func() error) error {
	b.reporter.Step(name)
	if err := fn(); err != nil {
		b.reporter.Fail(name, err)
		return fmt.Errorf("%s: %w", name, err)
	}
	b.reporter.Done(name)
	return nil
}
