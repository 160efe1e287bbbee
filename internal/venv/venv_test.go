// ABOUTME: Tests for environment existence, activation env construction, create/remove
// ABOUTME: Create is exercised with a fake python that builds the venv skeleton

package venv

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/MountainEclipse/venvup/internal/interp"
)

func touchPython(t *testing.T, dir string) {
	t.Helper()
	e := New(dir)
	if err := os.MkdirAll(e.BinDir(), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(e.Python(), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "venv")
	e := New(dir)

	if e.Exists() {
		t.Error("Exists = true for missing dir")
	}

	// A bare directory without an interpreter is still "absent".
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if e.Exists() {
		t.Error("Exists = true for dir without interpreter")
	}

	touchPython(t, dir)
	if !e.Exists() {
		t.Error("Exists = false for complete environment")
	}
}

func TestEnviron_Activation(t *testing.T) {
	t.Parallel()

	e := New(filepath.Join("/opt", "proj", ".venv"))
	base := []string{
		"PATH=/usr/bin:/bin",
		"PYTHONHOME=/usr",
		"VIRTUAL_ENV=/somewhere/else",
		"TERM=xterm",
	}

	got := e.Environ(base)

	var path, virtualEnv string
	for _, kv := range got {
		if strings.HasPrefix(kv, "PATH=") {
			path = kv
		}
		if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
			virtualEnv = kv
		}
		if strings.HasPrefix(kv, "PYTHONHOME=") {
			t.Errorf("PYTHONHOME survived activation: %q", kv)
		}
	}

	wantPrefix := "PATH=" + e.BinDir() + string(os.PathListSeparator)
	if !strings.HasPrefix(path, wantPrefix) {
		t.Errorf("PATH = %q; want prefix %q", path, wantPrefix)
	}
	if !strings.HasSuffix(path, "/usr/bin:/bin") {
		t.Errorf("PATH = %q; original entries lost", path)
	}
	if virtualEnv != "VIRTUAL_ENV="+e.Dir {
		t.Errorf("VIRTUAL_ENV = %q; want %q", virtualEnv, "VIRTUAL_ENV="+e.Dir)
	}
	if kv := "TERM=xterm"; !contains(got, kv) {
		t.Errorf("unrelated variable %q dropped", kv)
	}
}

func TestEnviron_NoPathInBase(t *testing.T) {
	t.Parallel()

	e := New("/tmp/venv")
	got := e.Environ([]string{"TERM=dumb"})
	if !contains(got, "PATH="+e.BinDir()) {
		t.Errorf("PATH not synthesized: %v", got)
	}
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func TestCreateAndRemove(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a POSIX shell script")
	}

	bin := t.TempDir()
	// Fake python: `python -m venv <dir>` creates the venv skeleton.
	script := "#!/bin/sh\nif [ \"$1\" = \"-m\" ] && [ \"$2\" = \"venv\" ]; then\n" +
		"  mkdir -p \"$3/bin\" && touch \"$3/bin/python\" && chmod +x \"$3/bin/python\"\nfi\n"
	pyPath := filepath.Join(bin, "python3")
	if err := os.WriteFile(pyPath, []byte(script), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "nested", ".venv")
	py := &interp.Python{Argv: []string{pyPath}, Version: "3.10.0"}

	e, err := Create(context.Background(), py, dir)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !e.Exists() {
		t.Fatal("environment missing after Create")
	}

	if err := e.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if e.Exists() {
		t.Error("environment present after Remove")
	}
	// Removing again is fine.
	if err := e.Remove(); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestCreate_FailurePropagates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a POSIX shell script")
	}

	bin := t.TempDir()
	pyPath := filepath.Join(bin, "python3")
	if err := os.WriteFile(pyPath, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	py := &interp.Python{Argv: []string{pyPath}, Version: "3.10.0"}
	_, err := Create(context.Background(), py, filepath.Join(t.TempDir(), ".venv"))
	if err == nil {
		t.Fatal("expected error from failing venv creation")
	}
	if !strings.Contains(err.Error(), "venv") {
		t.Errorf("error %q does not name the failing step", err)
	}
}
