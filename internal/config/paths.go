// ABOUTME: Standard filesystem paths for venvup configuration
// ABOUTME: Resolves ~/.venvup/ for global defaults and venvup.yaml for projects

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName    = ".venvup"
	manifestFileName = "venvup.yaml"
)

// GlobalDir returns the user-global config directory (~/.venvup/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global defaults file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectManifestFile returns the path to the project manifest (venvup.yaml
// in the project root).
func ProjectManifestFile(projectRoot string) string {
	return filepath.Join(projectRoot, manifestFileName)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
