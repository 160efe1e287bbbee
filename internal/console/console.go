// ABOUTME: Console acknowledgment prompt replacing the batch `pause` builtin
// ABOUTME: Single raw-mode keypress on a TTY, line-or-EOF fallback otherwise

package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const prompt = "Press any key to continue . . . "

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Pause prints an acknowledgment prompt and blocks until the user reacts.
// On a TTY a single keypress suffices (raw mode, restored afterwards); on a
// pipe it waits for a newline or EOF so scripted callers never hang on a
// closed stdin.
func Pause(in *os.File, out io.Writer) error {
	fmt.Fprint(out, prompt)
	defer fmt.Fprintln(out)

	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(fd, old)

		buf := make([]byte, 1)
		if _, err := in.Read(buf); err != nil && err != io.EOF {
			return fmt.Errorf("reading keypress: %w", err)
		}
		return nil
	}

	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("waiting for acknowledgment: %w", err)
		}
		if n > 0 && buf[0] == '\n' {
			return nil
		}
	}
}
