package player

import "time"

// Interface is the audio backend the playback state drives.
// Implementations are not safe for concurrent use except Finished,
// which may be polled from any goroutine.
type Interface interface {
	// Play stops whatever is playing and starts path from the beginning.
	Play(path string) error
	Pause()
	Resume()
	Stop()
	// SetVolume sets the output level in [0, 1]. 0 is silent.
	SetVolume(level float64)
	State() State
	// Finished reports whether the current track played to its end.
	Finished() bool
	Position() time.Duration
	Duration() time.Duration
}

var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
