// ABOUTME: Python interpreter discovery honoring a pinned major.minor version
// ABOUTME: Probes versioned names, the Windows py launcher, and PATH fallbacks

package interp

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/MountainEclipse/venvup/internal/log"
)

// Python is a resolved interpreter. Argv is the command prefix to run it
// (more than one element for the Windows "py -3.10" launcher form).
type Python struct {
	Argv    []string
	Version string // reported version, e.g. "3.10.4"
}

// Path returns the executable component of the interpreter invocation.
func (p *Python) Path() string {
	if len(p.Argv) == 0 {
		return ""
	}
	return p.Argv[0]
}

// Command builds an exec.Cmd invoking this interpreter with args.
func (p *Python) Command(ctx context.Context, args ...string) *exec.Cmd {
	full := append(append([]string{}, p.Argv[1:]...), args...)
	return exec.CommandContext(ctx, p.Argv[0], full...)
}

// Find resolves the pinned version (e.g. "3.10", or "3" for any Python 3) to
// a concrete interpreter. Every candidate is verified by running it with
// --version; a candidate whose reported version does not honor the pin is
// skipped. Returns an error when no interpreter satisfies the pin.
func Find(ctx context.Context, pin string) (*Python, error) {
	var tried []string
	for _, argv := range candidates(pin) {
		if _, err := exec.LookPath(argv[0]); err != nil {
			tried = append(tried, strings.Join(argv, " "))
			continue
		}
		version, err := reportedVersion(ctx, argv)
		if err != nil {
			log.Debug("interpreter %s: %v", strings.Join(argv, " "), err)
			tried = append(tried, strings.Join(argv, " "))
			continue
		}
		if !MatchesPin(version, pin) {
			log.Debug("interpreter %s reports %s, pin is %s", strings.Join(argv, " "), version, pin)
			tried = append(tried, strings.Join(argv, " "))
			continue
		}
		return &Python{Argv: argv, Version: version}, nil
	}
	return nil, fmt.Errorf("no python %s interpreter found (tried: %s)", pin, strings.Join(tried, ", "))
}

// candidates returns interpreter invocations to probe, most specific first.
func candidates(pin string) [][]string {
	var c [][]string
	if pin != "" {
		c = append(c, []string{"python" + pin})
		if runtime.GOOS == "windows" {
			c = append(c, []string{"py", "-" + pin})
		}
	}
	c = append(c, []string{"python3"}, []string{"python"})
	return c
}

// reportedVersion runs `<argv> --version` and extracts the version number.
// Older interpreters print to stderr, so both streams are captured.
func reportedVersion(ctx context.Context, argv []string) (string, error) {
	args := append(append([]string{}, argv[1:]...), "--version")
	cmd := exec.CommandContext(ctx, argv[0], args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", argv[0], err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the dotted version from "--version" output like
// "Python 3.10.4".
func ParseVersion(out string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	for _, f := range fields {
		if len(f) > 0 && f[0] >= '0' && f[0] <= '9' && strings.Contains(f, ".") {
			return f, nil
		}
	}
	return "", fmt.Errorf("unrecognized version output %q", strings.TrimSpace(out))
}

// MajorMinor reduces a full version like "3.10.4" to "3.10".
func MajorMinor(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// MatchesPin reports whether a full version like "3.10.4" honors a pin like
// "3" or "3.10". An empty pin matches anything.
func MatchesPin(version, pin string) bool {
	if pin == "" {
		return true
	}
	vp := strings.Split(version, ".")
	pp := strings.Split(pin, ".")
	if len(pp) > len(vp) {
		return false
	}
	for i := range pp {
		if vp[i] != pp[i] {
			return false
		}
	}
	return true
}
