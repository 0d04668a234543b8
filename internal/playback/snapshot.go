package playback

import (
	"time"

	"github.com/llehouerou/lofi/internal/library"
)

// Snapshot is a read-only copy of State for rendering and remote control.
type Snapshot struct {
	Track    library.Track
	HasTrack bool
	Index    int
	Count    int
	Paused   bool
	Loaded   bool
	Volume   int
	Duration time.Duration
}

// Playing reports whether a track is loaded and not paused.
func (s Snapshot) Playing() bool { return s.Loaded && !s.Paused }

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	t, ok := s.Current()
	snap := Snapshot{
		Track:    t,
		HasTrack: ok,
		Index:    s.index,
		Count:    len(s.tracks),
		Paused:   s.paused,
		Loaded:   s.loaded,
		Volume:   s.volume,
	}
	if s.loaded {
		snap.Duration = s.backend.Duration()
	}
	return snap
}
