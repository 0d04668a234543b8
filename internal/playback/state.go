package playback

import (
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/player"
)

// Volume bounds and the startup level.
const (
	MinVolume     = 0
	MaxVolume     = 10
	DefaultVolume = 1
)

// State is the player state machine.
//
// Invariants: index is in [0, len(tracks)) whenever tracks is non-empty;
// volume is in [MinVolume, MaxVolume]; paused implies loaded.
type State struct {
	backend player.Interface
	tracks  []library.Track
	index   int
	playing library.Track // the track the backend has loaded
	paused  bool
	loaded  bool
	volume  int
}

// New returns an empty state at the default volume.
func New(backend player.Interface) *State {
	return &State{backend: backend, volume: DefaultVolume}
}

// Load sets the initial track list without touching the backend.
func (s *State) Load(tracks []library.Track) error {
	if len(tracks) == 0 {
		return ErrEmptyLibrary
	}
	s.tracks = tracks
	s.index = 0
	return nil
}

// Start pushes the volume to the backend and plays the current track.
func (s *State) Start() error {
	s.backend.SetVolume(s.level())
	if len(s.tracks) == 0 {
		return ErrEmptyLibrary
	}
	return s.play(1)
}

// Advance plays the next track, wrapping after the last.
func (s *State) Advance() error {
	n := len(s.tracks)
	if n == 0 {
		return ErrEmptyLibrary
	}
	s.index = (s.index + 1) % n
	return s.play(1)
}

// Retreat plays the previous track, wrapping before the first.
func (s *State) Retreat() error {
	n := len(s.tracks)
	if n == 0 {
		return ErrEmptyLibrary
	}
	s.index = (s.index - 1 + n) % n
	return s.play(-1)
}

// play loads the current track. A track the backend rejects is skipped
// in the direction of step, at most once per track.
func (s *State) play(step int) error {
	n := len(s.tracks)
	start := s.index
	var failed []library.Track
	var last error

	for range n {
		t := s.tracks[s.index]
		err := s.backend.Play(t.Path)
		if err == nil {
			s.playing = t
			s.paused = false
			s.loaded = true
			log.Debug().Str("track", t.Name).Int("index", s.index).Msg("playing")
			if len(failed) > 0 {
				return &LoadError{Failed: failed, Err: last}
			}
			return nil
		}
		log.Warn().Err(err).Str("track", t.Name).Msg("skipping unplayable track")
		failed = append(failed, t)
		last = err
		s.index = (s.index + step + n) % n
	}

	s.index = start
	s.paused = false
	s.loaded = false
	s.backend.Stop()
	log.Error().Err(last).Int("tracks", n).Msg("no playable track")
	return &LoadError{Failed: failed, Err: last, Exhausted: true}
}

// TogglePause pauses or resumes with exactly one backend call. Without a
// loaded track it does nothing and returns false.
func (s *State) TogglePause() bool {
	if !s.loaded {
		return false
	}
	if s.paused {
		s.backend.Resume()
	} else {
		s.backend.Pause()
	}
	s.paused = !s.paused
	log.Debug().Bool("paused", s.paused).Msg("pause toggled")
	return true
}

// Pause pauses a playing track. It returns false when there was nothing
// to pause.
func (s *State) Pause() bool {
	if s.paused {
		return false
	}
	return s.TogglePause()
}

// Resume resumes a paused track. It returns false when nothing was
// paused.
func (s *State) Resume() bool {
	if !s.paused {
		return false
	}
	return s.TogglePause()
}

// IncreaseVolume raises the volume one step. At MaxVolume nothing
// happens and it returns false.
func (s *State) IncreaseVolume() bool {
	return s.setVolume(s.volume + 1)
}

// DecreaseVolume lowers the volume one step. At MinVolume nothing
// happens and it returns false.
func (s *State) DecreaseVolume() bool {
	return s.setVolume(s.volume - 1)
}

func (s *State) setVolume(v int) bool {
	v = max(MinVolume, min(MaxVolume, v))
	if v == s.volume {
		return false
	}
	s.volume = v
	s.backend.SetVolume(s.level())
	return true
}

func (s *State) level() float64 {
	return float64(s.volume) / MaxVolume
}

// ReloadLibrary swaps the track list without interrupting playback. The
// index follows the loaded track when the new list still holds it, and
// otherwise resets to 0 when it falls outside the new list. An empty list
// is refused and the current one kept.
func (s *State) ReloadLibrary(tracks []library.Track) error {
	if len(tracks) == 0 {
		return ErrEmptyLibrary
	}
	s.tracks = tracks
	if i, ok := s.position(s.playing); s.loaded && ok {
		s.index = i
	} else if s.index >= len(tracks) {
		s.index = 0
	}
	log.Debug().Int("tracks", len(tracks)).Int("index", s.index).Msg("library reloaded")
	return nil
}

// Stop stops the backend. Used on quit.
func (s *State) Stop() {
	s.backend.Stop()
	s.loaded = false
	s.paused = false
}

// Finished reports whether the current track ended on its own while
// not paused, i.e. whether the loop should advance.
func (s *State) Finished() bool {
	return s.loaded && !s.paused && s.backend.Finished()
}

// Index returns the current track index.
func (s *State) Index() int { return s.index }

// Paused reports whether playback is paused.
func (s *State) Paused() bool { return s.paused }

// Volume returns the volume level in [MinVolume, MaxVolume].
func (s *State) Volume() int { return s.volume }

// Tracks returns the track list. Callers must not modify it.
func (s *State) Tracks() []library.Track { return s.tracks }

func (s *State) position(t library.Track) (int, bool) {
	for i, c := range s.tracks {
		if c.Path == t.Path {
			return i, true
		}
	}
	return 0, false
}

// Current returns the loaded track, or the track at the current index
// when none is loaded. After a reload the loaded track may no longer be
// in the list.
func (s *State) Current() (library.Track, bool) {
	if s.loaded {
		return s.playing, true
	}
	if len(s.tracks) == 0 {
		return library.Track{}, false
	}
	return s.tracks[s.index], true
}
