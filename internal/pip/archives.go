// ABOUTME: Local package archive discovery with content hashing
// ABOUTME: Deterministic sorted enumeration so installs and lock entries are stable

package pip

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Archive is one installable file found in the libs folder.
type Archive struct {
	Name   string // base filename
	Path   string // absolute path
	SHA256 string // content hash, hex encoded
}

// DiscoverArchives lists every regular file in dir with its content hash,
// sorted by filename. An empty dir argument means "no libs folder" and yields
// nil; a configured but missing folder is an error so a typo does not
// silently skip the install step.
func DiscoverArchives(dir string) ([]Archive, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading libs folder %s: %w", dir, err)
	}

	var archives []Archive
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		sum, err := hashFile(path)
		if err != nil {
			return nil, err
		}
		archives = append(archives, Archive{
			Name:   entry.Name(),
			Path:   path,
			SHA256: sum,
		})
	}

	// os.ReadDir already sorts by filename; keep the guarantee explicit in
	// case a future source of entries does not.
	sort.Slice(archives, func(i, j int) bool { return archives[i].Name < archives[j].Name })
	return archives, nil
}

// hashFile returns the hex SHA-256 of the file contents.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
