//go:build !windows

package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

var (
	mu       sync.Mutex
	saved    = -1
	pipeRead *os.File
	pipeW    *os.File
)

// Start redirects fd 2 into a pipe drained by a background goroutine.
// It must run before the audio device is opened. On error the process
// keeps writing to the real stderr.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if saved >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	fd := int(os.Stderr.Fd())
	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		_ = syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	saved, pipeRead, pipeW = orig, r, w
	go drain(r)
	return nil
}

func drain(r *os.File) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			deliver(line)
		}
	}
}

// WriteOriginal writes to the terminal's stderr even while capturing.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := saved
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop puts the original stderr back. Safe to call more than once.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if saved < 0 {
		return
	}
	_ = syscall.Dup2(saved, int(os.Stderr.Fd()))
	_ = syscall.Close(saved)
	pipeW.Close()
	pipeRead.Close()
	saved = -1
}
