// ABOUTME: Environment lock recording what an environment was built from
// ABOUTME: Replaces bare existence checks; mismatch with the desired state forces a rebuild

package lockfile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MountainEclipse/venvup/internal/pip"
)

const lockFileName = "venvup.lock"

// Lock captures the inputs an environment was provisioned from. Two locks
// that Match mean the environment can be reused without reinstalling.
type Lock struct {
	Python             string         `json:"python"`              // resolved major.minor
	RequirementsSHA256 string         `json:"requirements_sha256"` // hash of the manifest bytes
	Archives           []ArchiveEntry `json:"archives,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// ArchiveEntry is one local archive that was installed into the environment.
type ArchiveEntry struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

// Fingerprint computes the desired lock for the current inputs: the resolved
// interpreter line, the requirements manifest content, and the discovered
// archive set. The manifest must exist; a missing one is surfaced here rather
// than as a pip failure halfway through provisioning.
func Fingerprint(pythonMajorMinor, requirementsPath string, archives []pip.Archive) (*Lock, error) {
	data, err := os.ReadFile(requirementsPath)
	if err != nil {
		return nil, fmt.Errorf("reading requirements manifest: %w", err)
	}
	sum := sha256.Sum256(data)

	entries := make([]ArchiveEntry, 0, len(archives))
	for _, a := range archives {
		entries = append(entries, ArchiveEntry{Name: a.Name, SHA256: a.SHA256})
	}
	if len(entries) == 0 {
		entries = nil
	}

	return &Lock{
		Python:             pythonMajorMinor,
		RequirementsSHA256: hex.EncodeToString(sum[:]),
		Archives:           entries,
	}, nil
}

// Matches reports whether other was built from the same inputs. CreatedAt is
// ignored.
func (l *Lock) Matches(other *Lock) bool {
	if l == nil || other == nil {
		return false
	}
	if l.Python != other.Python || l.RequirementsSHA256 != other.RequirementsSHA256 {
		return false
	}
	if len(l.Archives) != len(other.Archives) {
		return false
	}
	for i := range l.Archives {
		if l.Archives[i] != other.Archives[i] {
			return false
		}
	}
	return true
}

// Load reads the lock stored inside envDir. A missing lock yields (nil, nil):
// the environment predates venvup or was never completed, and either way it
// cannot be trusted.
func Load(envDir string) (*Lock, error) {
	data, err := os.ReadFile(filepath.Join(envDir, lockFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading lock: %w", err)
	}
	var l Lock
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing lock: %w", err)
	}
	return &l, nil
}

// Save writes the lock into envDir atomically (temp file + rename), stamping
// CreatedAt.
func Save(envDir string, l *Lock) error {
	l.CreatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling lock: %w", err)
	}

	path := filepath.Join(envDir, lockFileName)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp lock: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp lock: %w", err)
	}
	return nil
}
