package mpris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/tags"
)

func drain(b *Bridge) []playback.Command {
	var out []playback.Command
	for {
		select {
		case c := <-b.Commands():
			out = append(out, c)
		default:
			return out
		}
	}
}

func TestBridge_MediaKeys(t *testing.T) {
	tests := []struct {
		name  string
		press func(*Bridge)
		want  []playback.Command
	}{
		{"next", (*Bridge).Next, []playback.Command{playback.Next}},
		{"previous", (*Bridge).Previous, []playback.Command{playback.Prev}},
		{"play-pause", (*Bridge).PlayPause, []playback.Command{playback.TogglePause}},
		{"play", (*Bridge).Play, []playback.Command{playback.Resume}},
		{"pause", (*Bridge).Pause, []playback.Command{playback.Pause}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBridge(4)
			b.Publish(playback.Snapshot{Loaded: true, HasTrack: true, Count: 2}, tags.Tag{})
			tt.press(b)
			assert.Equal(t, tt.want, drain(b))
		})
	}
}

func TestBridge_RepeatedPlaySendsIntentNotToggle(t *testing.T) {
	b := NewBridge(4)
	b.Publish(playback.Snapshot{Loaded: true, Paused: true}, tags.Tag{})

	b.Play()
	b.Play()

	assert.Equal(t, []playback.Command{playback.Resume, playback.Resume}, drain(b))
}

func TestBridge_FullBufferDrops(t *testing.T) {
	b := NewBridge(1)
	b.Next()
	b.Next()
	assert.Equal(t, []playback.Command{playback.Next}, drain(b))
}

func TestBridge_Status(t *testing.T) {
	b := NewBridge(1)
	assert.Equal(t, "Stopped", b.Status())

	b.Publish(playback.Snapshot{Loaded: true}, tags.Tag{})
	assert.Equal(t, "Playing", b.Status())

	b.Publish(playback.Snapshot{Loaded: true, Paused: true}, tags.Tag{})
	assert.Equal(t, "Paused", b.Status())
}

func TestBridge_PublishFindsCover(t *testing.T) {
	dir := t.TempDir()
	cover := filepath.Join(dir, "folder.png")
	require.NoError(t, os.WriteFile(cover, []byte("png"), 0o600))

	b := NewBridge(1)
	tag := tags.Tag{Title: "Aruarian Dance", Artist: "Nujabes"}
	b.Publish(playback.Snapshot{
		HasTrack: true,
		Track:    library.Track{Name: "a.mp3", Path: filepath.Join(dir, "a.mp3")},
	}, tag)

	snap, gotTag := b.Current()
	assert.Equal(t, "a.mp3", snap.Track.Name)
	assert.Equal(t, tag, gotTag)
	assert.Equal(t, cover, b.cover())
}

func TestTrackID(t *testing.T) {
	a := trackID("/music/a.mp3")
	assert.True(t, strings.HasPrefix(a, "/org/mpris/MediaPlayer2/Track/"))
	assert.Equal(t, a, trackID("/music/a.mp3"))
	assert.NotEqual(t, a, trackID("/music/b.mp3"))
}
