package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lofi/internal/app"
	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/player"
)

func TestLaunch_ExitCode(t *testing.T) {
	failDelay = 0
	two := []library.Track{
		{Name: "a.mp3", Path: "/music/a.mp3"},
		{Name: "b.mp3", Path: "/music/b.mp3"},
	}

	tests := []struct {
		name     string
		tracks   []library.Track
		scanErr  error
		broken   bool
		loopErr  error
		wantCode int
		wantLoop bool
	}{
		{name: "empty music folder", wantCode: 1},
		{name: "unreadable music folder", scanErr: errors.New("permission denied"), wantCode: 1},
		{name: "no playable track", tracks: two, broken: true, wantCode: 1},
		{name: "terminal failure", tracks: two, loopErr: errors.New("no tty"), wantCode: 1, wantLoop: true},
		{name: "clean quit", tracks: two, wantCode: 0, wantLoop: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.Default()
			s.MusicPath = t.TempDir()
			store := config.NewMemoryStore(s)

			mock := player.NewMock()
			if tt.broken {
				for _, tr := range tt.tracks {
					mock.FailOn(tr.Path, errors.New("unsupported"))
				}
			}
			capture := func(config.Store) (config.Settings, error) {
				t.Fatal("settings exist, capture must not run")
				return config.Settings{}, nil
			}
			scan := func(string) ([]library.Track, error) { return tt.tracks, tt.scanErr }

			looped := false
			loop := func(sess app.Session, _ config.Store) error {
				looped = true
				require.NotNil(t, sess.State)
				return tt.loopErr
			}

			code := launch(store, mock, capture, scan, loop)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantLoop, looped)
			if tt.loopErr != nil {
				assert.Equal(t, player.Stopped, mock.State(), "playback stops before exiting")
			}
		})
	}
}
