// ABOUTME: Configuration loading with defaults + global + project manifest merge
// ABOUTME: Global defaults are JSON; the project manifest is venvup.yaml

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/MountainEclipse/venvup/internal/pathutil"
)

// Built-in defaults matching the launcher scripts this tool replaces.
const (
	DefaultEnvDir       = ".venv"
	DefaultRequirements = "requirements.txt"
	DefaultEntrypoint   = "_run_tests.py"
	DefaultPython       = "3"
)

// Settings holds user-global defaults from ~/.venvup/config.json.
// Every field is optional; project manifest values override these.
type Settings struct {
	Python       string `json:"python,omitempty"`
	EnvDir       string `json:"env_dir,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	Entrypoint   string `json:"entrypoint,omitempty"`
	IndexURL     string `json:"index_url,omitempty"`
	Pause        *bool  `json:"pause,omitempty"`
}

// Config is the fully resolved configuration for one project. All paths are
// absolute.
type Config struct {
	Root         string // project root directory
	Python       string // pinned interpreter version, e.g. "3.10"
	EnvDir       string // environment directory
	Requirements string // requirements manifest path
	LibsDir      string // local archive folder; empty means none
	Entrypoint   string // script run after activation
	IndexURL     string // package index override for reachability checks
	Pause        bool   // wait for a keypress after the run
}

var versionRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Load resolves the configuration for the project at root. Precedence is
// built-in defaults, then ~/.venvup/config.json, then venvup.yaml in the
// project root. manifestPath overrides the manifest location when non-empty.
// A missing manifest is not an error: the launcher must work out of the box
// against the conventional paths.
func Load(root, manifestPath string) (*Config, error) {
	settings, err := loadSettings(GlobalConfigFile())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	if manifestPath == "" {
		manifestPath = ProjectManifestFile(root)
	} else {
		manifestPath = pathutil.Resolve(manifestPath, root)
	}
	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Root:         root,
		Python:       DefaultPython,
		EnvDir:       DefaultEnvDir,
		Requirements: DefaultRequirements,
		Entrypoint:   DefaultEntrypoint,
		Pause:        true,
	}
	cfg.apply(settings)
	cfg.apply(manifest.asSettings())
	if manifest.LibsDir != "" {
		cfg.LibsDir = pathutil.Resolve(manifest.LibsDir, root)
	}

	cfg.EnvDir = pathutil.Resolve(cfg.EnvDir, root)
	cfg.Requirements = pathutil.ResolveExisting(cfg.Requirements, root)
	cfg.Entrypoint = pathutil.ResolveExisting(cfg.Entrypoint, root)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overlays non-zero settings values onto the config.
func (c *Config) apply(s *Settings) {
	if s == nil {
		return
	}
	if s.Python != "" {
		c.Python = s.Python
	}
	if s.EnvDir != "" {
		c.EnvDir = s.EnvDir
	}
	if s.Requirements != "" {
		c.Requirements = s.Requirements
	}
	if s.Entrypoint != "" {
		c.Entrypoint = s.Entrypoint
	}
	if s.IndexURL != "" {
		c.IndexURL = s.IndexURL
	}
	if s.Pause != nil {
		c.Pause = *s.Pause
	}
}

// validate rejects values that would only fail later with a worse message.
func (c *Config) validate() error {
	if !versionRe.MatchString(c.Python) {
		return fmt.Errorf("invalid python version %q: expected major or major.minor (e.g. \"3.10\")", c.Python)
	}
	if c.EnvDir == c.Root {
		return fmt.Errorf("env_dir must not be the project root itself")
	}
	return nil
}

// loadSettings reads global Settings from a JSON file. A missing file yields
// zero Settings.
func loadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}
