// ABOUTME: E2E harness: builds the venvup binary once and drives it through a PTY
// ABOUTME: Provides output expectation, key injection, and exit waiting helpers

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// venvupBinary builds the CLI once per test run and returns its path.
func venvupBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "venvup-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "venvup")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/venvup")
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building venvup: %v", buildErr)
	}
	return binPath
}

type session struct {
	cmd  *exec.Cmd
	tty  *os.File
	done chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// startVenvup launches the binary in dir under a pseudo-terminal. env
// replaces the full environment when non-nil.
func startVenvup(t *testing.T, dir string, env []string, args ...string) *session {
	t.Helper()

	cmd := exec.Command(venvupBinary(t), args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = env
	}

	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		t.Fatalf("starting venvup under pty: %v", err)
	}

	s := &session{cmd: cmd, tty: tty, done: make(chan error, 1)}
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := tty.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				// EIO is the normal pty close signal.
				return
			}
		}
	}()
	go func() { s.done <- cmd.Wait() }()
	return s
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// expectStringTimeout waits until want appears in the accumulated output.
func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", want, s.output())
}

// send writes raw bytes to the terminal, as if typed.
func (s *session) send(t *testing.T, data string) {
	t.Helper()
	if _, err := s.tty.Write([]byte(data)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// waitExit blocks until the process exits and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()
	select {
	case err := <-s.done:
		if err == nil {
			return 0
		}
		if ee, ok := err.(*exec.ExitError); ok {
			return ee.ExitCode()
		}
		t.Fatalf("venvup exited abnormally: %v", err)
		return -1
	case <-time.After(timeout):
		t.Fatalf("venvup did not exit within %v; output:\n%s", timeout, s.output())
		return -1
	}
}

func (s *session) close() {
	s.tty.Close()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
}
