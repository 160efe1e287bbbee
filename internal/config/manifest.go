// ABOUTME: Project manifest parsing for venvup.yaml
// ABOUTME: Declares interpreter pin, env dir, requirements, libs folder, entry-point

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes one project's bootstrap declaration (venvup.yaml).
type Manifest struct {
	Python       string `yaml:"python"`
	EnvDir       string `yaml:"env_dir"`
	Requirements string `yaml:"requirements"`
	LibsDir      string `yaml:"libs_dir"`
	Entrypoint   string `yaml:"entrypoint"`
	IndexURL     string `yaml:"index_url"`
	Pause        *bool  `yaml:"pause"`
}

// ParseManifest reads a manifest from YAML bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// loadManifest reads the manifest file at path. A missing file yields a zero
// Manifest so projects without venvup.yaml run against the defaults.
func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// asSettings converts the manifest's scalar fields to a Settings overlay.
// LibsDir is handled separately since it is manifest-only.
func (m *Manifest) asSettings() *Settings {
	return &Settings{
		Python:       m.Python,
		EnvDir:       m.EnvDir,
		Requirements: m.Requirements,
		Entrypoint:   m.Entrypoint,
		IndexURL:     m.IndexURL,
		Pause:        m.Pause,
	}
}
