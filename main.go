package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/app"
	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/errmsg"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/logging"
	"github.com/llehouerou/lofi/internal/mpris"
	"github.com/llehouerou/lofi/internal/notify"
	"github.com/llehouerou/lofi/internal/player"
	"github.com/llehouerou/lofi/internal/stderr"
	"github.com/llehouerou/lofi/internal/ui/settings"
)

// failDelay keeps a fatal message on screen before the process exits.
var failDelay = 2 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	if closer, err := logging.Setup(); err != nil {
		logging.Discard()
	} else {
		defer closer.Close()
	}
	log.Info().Msg("starting")

	// Capture before the audio device opens so ALSA chatter stays off
	// the screen.
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	backend, err := player.New()
	if err != nil {
		return fail(errmsg.Format(errmsg.OpAudioInit, err))
	}
	defer backend.Close()

	store := config.NewFileStore(config.DefaultFile)
	log.Info().Str("settings", store.Path()).Msg("settings file")
	return launch(store, backend, captureSettings, library.Scan, runLoop)
}

// loopFunc runs the event loop for a started session until quit.
type loopFunc func(sess app.Session, store config.Store) error

// launch runs the startup sequence and then the loop, and maps the
// outcome to the process exit code. No loop runs after a startup failure.
func launch(
	store config.Store,
	backend player.Interface,
	capture app.CaptureFunc,
	scan func(dir string) ([]library.Track, error),
	loop loopFunc,
) int {
	sess, err := app.Prepare(store, backend, capture, scan)
	if err != nil {
		return fail(err.Error())
	}
	if err := loop(sess, store); err != nil {
		sess.State.Stop()
		return fail(errmsg.Format(errmsg.OpTerminalInit, err))
	}
	log.Info().Msg("exiting")
	return 0
}

func runLoop(sess app.Session, store config.Store) error {
	bridge := mpris.NewBridge(app.InputBuffer)
	remote := mpris.New(bridge)
	defer func() {
		if err := remote.Close(); err != nil {
			log.Debug().Err(err).Msg("close mpris")
		}
	}()

	m := app.New(sess, app.Deps{
		Store:     store,
		Remote:    bridge,
		Announcer: notify.NewNowPlaying(notify.New()),
	})
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func captureSettings(store config.Store) (config.Settings, error) {
	return settings.RunCapture(store)
}

// fail restores the terminal's stderr, prints msg there and gives the
// user time to read it.
func fail(msg string) int {
	log.Error().Msg(msg)
	stderr.Stop()
	stderr.WriteOriginal(msg + "\n")
	time.Sleep(failDelay)
	return 1
}
