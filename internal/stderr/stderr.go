// Package stderr keeps output that C audio libraries write straight to
// file descriptor 2 (ALSA, PulseAudio shims) from tearing through the
// terminal UI. Captured lines are delivered on Lines.
package stderr

// Lines receives captured stderr lines, trimmed and non-empty.
// Lines are dropped when nobody drains the channel fast enough.
var Lines = make(chan string, 64)

func deliver(line string) {
	select {
	case Lines <- line:
	default:
	}
}
