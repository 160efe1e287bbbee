// ABOUTME: Path normalization utilities for Unicode-aware file resolution
// ABOUTME: Handles NFD/NFC variants, odd Unicode spaces, and tilde expansion

package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces replaces Unicode space characters with ASCII space (U+0020).
// Covered codepoints: U+00A0, U+2000-U+200A, U+202F, U+205F, U+3000.
func NormalizeSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isUnicodeSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isUnicodeSpace reports whether r is a non-ASCII Unicode space character.
func isUnicodeSpace(r rune) bool {
	switch {
	case r == ' ': // no-break space
		return true
	case r >= ' ' && r <= ' ': // en/em/thin/hair/etc. spaces
		return true
	case r == ' ': // narrow no-break space
		return true
	case r == ' ': // medium mathematical space
		return true
	case r == '　': // ideographic space
		return true
	}
	return false
}

// Expand expands a leading "~" to the user home directory and normalizes
// Unicode spaces. Config files edited on macOS or pasted from rich-text
// sources routinely carry both.
func Expand(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}
	return NormalizeSpaces(path)
}

// Resolve expands the path and, if it is relative, joins it with root.
// The result is always filepath.Clean'd.
func Resolve(path, root string) string {
	path = Expand(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return filepath.Clean(path)
}

// ResolveExisting tries Unicode-variant resolutions of path against the
// filesystem and returns the first variant whose os.Stat succeeds. If none
// match, it returns the direct resolution so the caller's own error reporting
// names the path the user wrote.
func ResolveExisting(path, root string) string {
	candidates := []string{
		// 1. direct
		Resolve(path, root),
		// 2. narrow no-break space -> ASCII space
		Resolve(NormalizeSpaces(strings.ReplaceAll(path, " ", " ")), root),
		// 3. NFD normalization (macOS filesystem form)
		Resolve(norm.NFD.String(path), root),
		// 4. NFC normalization
		Resolve(norm.NFC.String(path), root),
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return candidates[0]
}
