// ABOUTME: Tests for config resolution: defaults, global merge, manifest overrides
// ABOUTME: Uses HOME redirection so global config never leaks in from the host

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile is a test helper that fails fast on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home) // windows
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Python != DefaultPython {
		t.Errorf("Python = %q; want %q", cfg.Python, DefaultPython)
	}
	if cfg.EnvDir != filepath.Join(root, DefaultEnvDir) {
		t.Errorf("EnvDir = %q; want %q", cfg.EnvDir, filepath.Join(root, DefaultEnvDir))
	}
	if cfg.Requirements != filepath.Join(root, DefaultRequirements) {
		t.Errorf("Requirements = %q", cfg.Requirements)
	}
	if cfg.Entrypoint != filepath.Join(root, DefaultEntrypoint) {
		t.Errorf("Entrypoint = %q", cfg.Entrypoint)
	}
	if cfg.LibsDir != "" {
		t.Errorf("LibsDir = %q; want empty", cfg.LibsDir)
	}
	if !cfg.Pause {
		t.Error("Pause = false; want true by default")
	}
}

func TestLoad_ManifestOverrides(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "venvup.yaml"), `
python: "3.10"
env_dir: env
requirements: deps/requirements.txt
libs_dir: libs
entrypoint: run_suite.py
pause: false
`)

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Python != "3.10" {
		t.Errorf("Python = %q; want 3.10", cfg.Python)
	}
	if cfg.EnvDir != filepath.Join(root, "env") {
		t.Errorf("EnvDir = %q", cfg.EnvDir)
	}
	if cfg.LibsDir != filepath.Join(root, "libs") {
		t.Errorf("LibsDir = %q", cfg.LibsDir)
	}
	if cfg.Pause {
		t.Error("Pause = true; want false")
	}
}

func TestLoad_GlobalThenManifestPrecedence(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, ".venvup", "config.json"),
		`{"python": "3.9", "entrypoint": "global_entry.py"}`)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "venvup.yaml"), "python: \"3.11\"\n")

	cfg, err := Load(root, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Manifest beats global.
	if cfg.Python != "3.11" {
		t.Errorf("Python = %q; want 3.11", cfg.Python)
	}
	// Global beats built-in default.
	if cfg.Entrypoint != filepath.Join(root, "global_entry.py") {
		t.Errorf("Entrypoint = %q; want global value", cfg.Entrypoint)
	}
}

func TestLoad_ExplicitManifestPath(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alt.yaml"), "env_dir: .alt-venv\n")

	cfg, err := Load(root, "alt.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EnvDir != filepath.Join(root, ".alt-venv") {
		t.Errorf("EnvDir = %q", cfg.EnvDir)
	}
}

func TestLoad_InvalidPythonVersion(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "venvup.yaml"), "python: \"3.10.4-rc1\"\n")

	if _, err := Load(root, ""); err == nil {
		t.Fatal("expected error for invalid python version")
	}
}

func TestLoad_MalformedManifest(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "venvup.yaml"), "python: [unterminated\n")

	if _, err := Load(root, ""); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte("python: \"3.12\"\nlibs_dir: wheels\n"))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Python != "3.12" || m.LibsDir != "wheels" {
		t.Errorf("unexpected manifest: %+v", m)
	}
}
