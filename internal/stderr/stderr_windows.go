//go:build windows

package stderr

import "os"

// Start is a no-op on Windows; its audio stack does not write to fd 2.
func Start() error { return nil }

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
