package app

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/errmsg"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/player"
)

// Session is a started player: settings loaded, library scanned and the
// first playable track loaded.
type Session struct {
	State    *playback.State
	Settings config.Settings
	// Warning is set when tracks were skipped before one played.
	Warning error
}

// StartupError is a fatal startup failure.
type StartupError struct {
	Op      errmsg.Op
	Context string
	Err     error
}

func (e *StartupError) Error() string {
	return errmsg.FormatWith(e.Op, e.Context, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// CaptureFunc asks the user for the settings on first run and saves them.
type CaptureFunc func(config.Store) (config.Settings, error)

// Prepare runs the startup sequence: first-run capture when no settings
// exist, load and validate them, scan the music folder and start the
// first playable track. Every failure is a *StartupError.
func Prepare(
	store config.Store,
	backend player.Interface,
	capture CaptureFunc,
	scan func(dir string) ([]library.Track, error),
) (Session, error) {
	if !store.Exists() {
		log.Info().Msg("no settings, starting first-run capture")
		if _, err := capture(store); err != nil {
			return Session{}, &StartupError{Op: errmsg.OpSettingsCapture, Err: err}
		}
	}

	s, err := store.Load()
	if err != nil {
		return Session{}, &StartupError{Op: errmsg.OpSettingsLoad, Err: err}
	}

	tracks, err := scan(s.MusicPath)
	if err != nil {
		return Session{}, &StartupError{Op: errmsg.OpLibraryScan, Context: s.MusicPath, Err: err}
	}
	log.Info().Int("tracks", len(tracks)).Str("dir", s.MusicPath).Msg("library scanned")
	log.Debug().Strs("names", library.Names(tracks)).Msg("track order")

	st := playback.New(backend)
	if err := st.Load(tracks); err != nil {
		return Session{}, &StartupError{Op: errmsg.OpLibraryScan, Context: s.MusicPath, Err: err}
	}

	sess := Session{State: st, Settings: s}
	if err := st.Start(); err != nil {
		var le *playback.LoadError
		if !errors.As(err, &le) || le.Exhausted {
			return Session{}, &StartupError{Op: errmsg.OpPlaybackStart, Err: err}
		}
		sess.Warning = err
	}
	return sess, nil
}
