// Package notify sends "now playing" desktop notifications.
package notify

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// AppName is the application name sent with every notification.
const AppName = "Lo-Fi Player"

// Urgency is the freedesktop notification priority.
type Urgency byte

// UrgencyLow keeps track changes out of the way.
const UrgencyLow Urgency = 0

// Notification is one desktop message.
type Notification struct {
	Title      string
	Body       string
	Timeout    int32  // ms, -1 = server default
	ReplacesID uint32 // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID. It returns 0 and a nil error
	// when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// NowPlaying announces track changes, replacing its previous message so
// only one notification is on screen.
type NowPlaying struct {
	mu       sync.Mutex
	notifier Notifier
	lastID   uint32
}

// NewNowPlaying wraps notifier.
func NewNowPlaying(notifier Notifier) *NowPlaying {
	return &NowPlaying{notifier: notifier}
}

// Announce shows track and its tag line. Failures are logged and dropped.
func (p *NowPlaying) Announce(track, tagLine string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := Notification{
		Title:      "Now playing",
		Body:       track,
		Timeout:    5000,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	}
	if tagLine != "" {
		n.Title = tagLine
	}
	id, err := p.notifier.Notify(n)
	if err != nil {
		log.Warn().Err(err).Str("track", track).Msg("desktop notification failed")
		return
	}
	if id != 0 {
		p.lastID = id
	}
}

// Dismiss closes the last notification, if any.
func (p *NowPlaying) Dismiss() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastID == 0 {
		return
	}
	if err := p.notifier.Close(p.lastID); err != nil {
		log.Debug().Err(err).Msg("close notification")
	}
	p.lastID = 0
}
