// Package mpris exposes the player over MPRIS so desktop media keys can
// drive it.
//
// The D-Bus side never touches playback state. Media keys become
// playback commands on a channel read by the event loop, and property
// queries read the last snapshot the loop published.
package mpris

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/tags"
)

// BusName is the suffix registered under org.mpris.MediaPlayer2.
const BusName = "lofi"

// Bridge carries commands in and snapshots out.
type Bridge struct {
	cmds chan playback.Command

	mu    sync.Mutex
	snap  playback.Snapshot
	tag   tags.Tag
	art   string
	artOf string
}

// NewBridge creates a bridge whose command channel holds buffer commands.
func NewBridge(buffer int) *Bridge {
	return &Bridge{cmds: make(chan playback.Command, buffer)}
}

// Commands is read by the event loop.
func (b *Bridge) Commands() <-chan playback.Command {
	return b.cmds
}

// Publish records the state shown to MPRIS clients.
func (b *Bridge) Publish(snap playback.Snapshot, tag tags.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = snap
	b.tag = tag
	if dir := filepath.Dir(snap.Track.Path); snap.HasTrack && dir != b.artOf {
		b.artOf = dir
		b.art = findCover(dir)
	}
}

// Current returns the last published state.
func (b *Bridge) Current() (playback.Snapshot, tags.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap, b.tag
}

func (b *Bridge) cover() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.art
}

// Next skips forward.
func (b *Bridge) Next() { b.send(playback.Next) }

// Previous skips back.
func (b *Bridge) Previous() { b.send(playback.Prev) }

// PlayPause toggles pause.
func (b *Bridge) PlayPause() { b.send(playback.TogglePause) }

// Play resumes. The loop ignores it unless paused, so repeated presses
// before the next tick stay idempotent.
func (b *Bridge) Play() { b.send(playback.Resume) }

// Pause pauses. The player has no stopped state, so Stop pauses too.
func (b *Bridge) Pause() { b.send(playback.Pause) }

func (b *Bridge) send(cmd playback.Command) {
	select {
	case b.cmds <- cmd:
		log.Debug().Stringer("command", cmd).Msg("mpris command")
	default:
		log.Warn().Stringer("command", cmd).Msg("mpris command dropped: input buffer full")
	}
}

// Status is the MPRIS playback status string.
func (b *Bridge) Status() string {
	snap, _ := b.Current()
	switch {
	case snap.Playing():
		return "Playing"
	case snap.Loaded:
		return "Paused"
	default:
		return "Stopped"
	}
}

var coverNames = []string{
	"cover.jpg", "cover.png", "folder.jpg", "folder.png", "front.jpg", "front.png",
}

func findCover(dir string) string {
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func trackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
