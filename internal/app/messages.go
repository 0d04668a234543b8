// Package app runs the player: startup, the event loop and the settings
// modal.
package app

import (
	"time"

	"github.com/llehouerou/lofi/internal/playback"
)

// TickMsg drives the playing loop.
type TickMsg time.Time

// RemoteMsg carries a command from a media key.
type RemoteMsg struct {
	Command playback.Command
}

// StderrMsg is sent when a C library writes to stderr.
type StderrMsg struct {
	Line string
}
