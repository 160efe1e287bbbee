// ABOUTME: Tests for report markdown construction across environment states
// ABOUTME: Rendering is checked only for fallback behavior, not styled output

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/MountainEclipse/venvup/internal/config"
	"github.com/MountainEclipse/venvup/internal/lockfile"
	"github.com/MountainEclipse/venvup/internal/pip"
)

func testConfig() *config.Config {
	return &config.Config{
		Root:         "/proj",
		Python:       "3.10",
		EnvDir:       "/proj/.venv",
		Requirements: "/proj/requirements.txt",
	}
}

func TestMarkdown_AbsentEnvironment(t *testing.T) {
	t.Parallel()

	md := Markdown(Data{Config: testConfig()})
	if !strings.Contains(md, "**absent**") {
		t.Errorf("report missing absent status:\n%s", md)
	}
	if strings.Contains(md, "## Installed packages") {
		t.Error("package section present for absent environment")
	}
}

func TestMarkdown_FreshEnvironment(t *testing.T) {
	t.Parallel()

	md := Markdown(Data{
		Config:    testConfig(),
		EnvExists: true,
		Lock: &lockfile.Lock{
			Python:    "3.10",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		Packages: []pip.Package{
			{Name: "coverage", Version: "7.4.1"},
			{Name: "-e git+https://example.com/x.git#egg=x"},
		},
		Archives: []pip.Archive{
			{Name: "sensor.whl", SHA256: "abcdef0123456789abcdef"},
		},
	})

	for _, want := range []string{
		"built 2026-03-01",
		"| coverage | 7.4.1 |",
		"| sensor.whl | `abcdef012345` |",
		"## Local archives",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdown_EmptyPackageList(t *testing.T) {
	t.Parallel()

	md := Markdown(Data{
		Config:    testConfig(),
		EnvExists: true,
		Packages:  []pip.Package{},
	})
	if !strings.Contains(md, "_none_") {
		t.Errorf("report missing empty package marker:\n%s", md)
	}
}

func TestRender_PlainPassthrough(t *testing.T) {
	t.Parallel()

	md := "# heading\n"
	if got := Render(md, 80, true); got != md {
		t.Errorf("plain Render altered the source: %q", got)
	}
}
