package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/stderr"
)

// TickInterval is the playing loop period (24 Hz).
const TickInterval = time.Second / 24

// TickCmd schedules the next TickMsg.
func TickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. ok is false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		return onResult(v, ok)
	}
}

// WatchStderr waits for one line captured from a C library.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Lines, func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// WatchRemote waits for one media key command.
func WatchRemote(ch <-chan playback.Command) tea.Cmd {
	return waitForChannel(ch, func(cmd playback.Command, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return RemoteMsg{Command: cmd}
	})
}
