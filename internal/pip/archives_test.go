// ABOUTME: Tests for archive discovery ordering, hashing, and edge cases
// ABOUTME: Verifies sorted enumeration and that subdirectories are skipped

package pip

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverArchives_SortedRegularFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"zeta.whl", "alpha.tar.gz", "mid.whl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	archives, err := DiscoverArchives(dir)
	if err != nil {
		t.Fatalf("DiscoverArchives: %v", err)
	}

	want := []string{"alpha.tar.gz", "mid.whl", "zeta.whl"}
	if len(archives) != len(want) {
		t.Fatalf("got %d archives; want %d", len(archives), len(want))
	}
	for i, name := range want {
		if archives[i].Name != name {
			t.Errorf("archives[%d].Name = %q; want %q", i, archives[i].Name, name)
		}
	}

	sum := sha256.Sum256([]byte("alpha.tar.gz"))
	if archives[0].SHA256 != hex.EncodeToString(sum[:]) {
		t.Errorf("SHA256 = %q; want content hash", archives[0].SHA256)
	}
}

func TestDiscoverArchives_EmptyDirConfigured(t *testing.T) {
	t.Parallel()

	archives, err := DiscoverArchives(t.TempDir())
	if err != nil {
		t.Fatalf("DiscoverArchives: %v", err)
	}
	if len(archives) != 0 {
		t.Errorf("got %d archives; want 0", len(archives))
	}
}

func TestDiscoverArchives_NoFolderConfigured(t *testing.T) {
	t.Parallel()

	archives, err := DiscoverArchives("")
	if err != nil {
		t.Fatalf("DiscoverArchives: %v", err)
	}
	if archives != nil {
		t.Errorf("got %v; want nil", archives)
	}
}

func TestDiscoverArchives_MissingFolderErrors(t *testing.T) {
	t.Parallel()

	if _, err := DiscoverArchives(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing configured folder")
	}
}
