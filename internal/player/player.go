// Package player plays audio files through the system audio device.
//
// Every track is decoded into a beep stream, resampled to the speaker
// rate and wrapped in a pause control and a volume effect.
package player

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

// SampleRate is the fixed output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// resampleQuality is beep's resampler quality (1-64).
const resampleQuality = 4

var (
	speakerOnce sync.Once
	speakerErr  error
)

// ErrAudioUnavailable wraps any failure to open the audio device.
var ErrAudioUnavailable = errors.New("audio device unavailable")

// initSpeaker opens the audio device once per process with a 100ms buffer.
func initSpeaker() error {
	speakerOnce.Do(func() {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			speakerErr = fmt.Errorf("%w: %w", ErrAudioUnavailable, err)
		}
	})
	return speakerErr
}

// Player is the beep-backed Interface implementation.
type Player struct {
	state  State
	src    source
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64

	// gen identifies the current stream; end-of-stream callbacks of
	// replaced streams compare unequal and are ignored.
	gen      atomic.Uint64
	finished atomic.Bool
}

// New opens the audio device and returns a stopped player at full volume.
func New() (*Player, error) {
	if err := initSpeaker(); err != nil {
		return nil, err
	}
	return &Player{level: 1}, nil
}

// Play implements Interface.
func (p *Player) Play(path string) error {
	p.Stop()

	src, format, err := openTrack(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}

	var s beep.Streamer = src
	if format.SampleRate != SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, SampleRate, src)
	}
	ctrl := &beep.Ctrl{Streamer: s}
	vol := &effects.Volume{Streamer: ctrl, Base: volumeBase}
	applyLevel(vol, p.level)

	gen := p.gen.Add(1)
	p.finished.Store(false)
	p.src, p.format, p.ctrl, p.volume = src, format, ctrl, vol
	p.state = Playing

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		if p.gen.Load() == gen {
			p.finished.Store(true)
		}
	})))

	log.Debug().
		Str("path", path).
		Int("rate", int(format.SampleRate)).
		Int("channels", format.NumChannels).
		Msg("track started")
	return nil
}

// Stop implements Interface.
func (p *Player) Stop() {
	p.gen.Add(1)
	p.finished.Store(false)
	if !p.state.IsActive() {
		return
	}

	speaker.Clear()
	if p.src != nil {
		if err := p.src.Close(); err != nil {
			log.Debug().Err(err).Msg("close track")
		}
	}
	p.src, p.ctrl, p.volume = nil, nil, nil
	p.state = Stopped
}

// Pause implements Interface.
func (p *Player) Pause() {
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume implements Interface.
func (p *Player) Resume() {
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// SetVolume implements Interface. The level is kept across tracks.
func (p *Player) SetVolume(level float64) {
	p.level = clampLevel(level)
	if p.volume == nil {
		return
	}
	speaker.Lock()
	applyLevel(p.volume, p.level)
	speaker.Unlock()
}

// State implements Interface.
func (p *Player) State() State { return p.state }

// Finished implements Interface.
func (p *Player) Finished() bool { return p.finished.Load() }

// Position implements Interface.
func (p *Player) Position() time.Duration {
	if p.src == nil {
		return 0
	}
	speaker.Lock()
	pos := p.src.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration implements Interface. Zero when unknown.
func (p *Player) Duration() time.Duration {
	if p.src == nil {
		return 0
	}
	return p.format.SampleRate.D(p.src.Len())
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	p.Stop()
	speaker.Close()
}
