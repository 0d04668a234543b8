package player

import (
	"fmt"
	"time"
)

// Mock is a test double that records every call in order.
type Mock struct {
	state    State
	level    float64
	finished bool
	current  string
	duration time.Duration
	failures map[string]error
	calls    []string
}

// NewMock returns a stopped mock at full volume.
func NewMock() *Mock {
	return &Mock{level: 1, failures: map[string]error{}}
}

// FailOn makes Play(path) return err.
func (m *Mock) FailOn(path string, err error) {
	m.failures[path] = err
}

// SetFinished simulates the current track reaching its end.
func (m *Mock) SetFinished(v bool) { m.finished = v }

// SetDuration sets what Duration reports.
func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

// Calls returns the recorded calls: "play:<path>", "pause", "resume",
// "stop", "volume:<level>".
func (m *Mock) Calls() []string {
	return append([]string(nil), m.calls...)
}

// Reset forgets the recorded calls.
func (m *Mock) Reset() { m.calls = nil }

// Current returns the path of the last successful Play.
func (m *Mock) Current() string { return m.current }

// Level returns the last volume set.
func (m *Mock) Level() float64 { return m.level }

func (m *Mock) Play(path string) error {
	m.calls = append(m.calls, "play:"+path)
	m.finished = false
	if err := m.failures[path]; err != nil {
		m.state = Stopped
		m.current = ""
		return err
	}
	m.state = Playing
	m.current = path
	return nil
}

func (m *Mock) Pause() {
	m.calls = append(m.calls, "pause")
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.calls = append(m.calls, "resume")
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Stop() {
	m.calls = append(m.calls, "stop")
	m.state = Stopped
	m.finished = false
	m.current = ""
}

func (m *Mock) SetVolume(level float64) {
	m.calls = append(m.calls, fmt.Sprintf("volume:%g", level))
	m.level = clampLevel(level)
}

func (m *Mock) State() State            { return m.state }
func (m *Mock) Finished() bool          { return m.finished }
func (m *Mock) Position() time.Duration { return 0 }
func (m *Mock) Duration() time.Duration { return m.duration }
