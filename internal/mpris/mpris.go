//go:build linux

package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/playback"
)

// Adapter serves a Bridge on the session bus.
type Adapter struct {
	server *server.Server
}

// New starts serving b. A missing session bus only shows up in the log.
func New(b *Bridge) *Adapter {
	srv := server.NewServer(BusName, rootAdapter{}, &playerAdapter{bridge: b})
	go func() {
		if err := srv.Listen(); err != nil {
			log.Debug().Err(err).Msg("mpris server stopped")
		}
	}()
	return &Adapter{server: srv}
}

// Close releases the bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Lo-Fi Player", nil }

//nolint:revive // Method name required by interface.
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/opus", "audio/wav", "audio/mp4"}, nil
}

type playerAdapter struct {
	bridge *Bridge
}

func (p *playerAdapter) Next() error      { p.bridge.Next(); return nil }
func (p *playerAdapter) Previous() error  { p.bridge.Previous(); return nil }
func (p *playerAdapter) Pause() error     { p.bridge.Pause(); return nil }
func (p *playerAdapter) PlayPause() error { p.bridge.PlayPause(); return nil }
func (p *playerAdapter) Stop() error      { p.bridge.Pause(); return nil }
func (p *playerAdapter) Play() error      { p.bridge.Play(); return nil }

func (p *playerAdapter) Seek(types.Microseconds) error                { return nil }
func (p *playerAdapter) SetPosition(string, types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.bridge.Status() {
	case "Playing":
		return types.PlaybackStatusPlaying, nil
	case "Paused":
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) SetRate(float64) error  { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap, tag := p.bridge.Current()
	if !snap.HasTrack {
		return types.Metadata{}, nil
	}
	title := tag.Title
	if title == "" {
		title = snap.Track.Name
	}
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(trackID(snap.Track.Path)),
		Length:      types.Microseconds(snap.Duration.Microseconds()),
		Title:       title,
		Album:       tag.Album,
		TrackNumber: tag.TrackNumber,
	}
	if tag.Artist != "" {
		meta.Artist = []string{tag.Artist}
	}
	if art := p.bridge.cover(); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	snap, _ := p.bridge.Current()
	return float64(snap.Volume) / float64(playback.MaxVolume), nil
}

func (p *playerAdapter) SetVolume(float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) { return 0, nil }

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	snap, _ := p.bridge.Current()
	return snap.Count > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	snap, _ := p.bridge.Current()
	return snap.Count > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error)    { return true, nil }
func (p *playerAdapter) CanPause() (bool, error)   { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)    { return false, nil }
func (p *playerAdapter) CanControl() (bool, error) { return true, nil }
