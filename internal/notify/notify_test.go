package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	r := &Recorder{}
	p := NewNowPlaying(r)

	p.Announce("rain.mp3", "")
	p.Announce("snow.flac", "Nujabes - Luv(sic)")

	sent := r.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "Now playing", sent[0].Title)
	assert.Equal(t, "rain.mp3", sent[0].Body)
	assert.Zero(t, sent[0].ReplacesID)
	assert.Equal(t, "Nujabes - Luv(sic)", sent[1].Title)
	assert.Equal(t, uint32(1), sent[1].ReplacesID)
}

func TestNowPlaying_FailureKeepsLastID(t *testing.T) {
	r := &Recorder{}
	p := NewNowPlaying(r)
	p.Announce("a.mp3", "")

	r.Err = errors.New("bus gone")
	p.Announce("b.mp3", "")
	r.Err = nil
	p.Announce("c.mp3", "")

	sent := r.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, uint32(1), sent[1].ReplacesID)
}

func TestNowPlaying_Dismiss(t *testing.T) {
	r := &Recorder{}
	p := NewNowPlaying(r)

	p.Dismiss()
	assert.Empty(t, r.Closed())

	p.Announce("a.mp3", "")
	p.Dismiss()
	p.Dismiss()
	assert.Equal(t, []uint32{1}, r.Closed())
}

func TestNoop(t *testing.T) {
	var n Notifier = noop{}
	id, err := n.Notify(Notification{Title: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(1))
}
