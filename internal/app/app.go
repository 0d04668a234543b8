package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/keymap"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/mpris"
	"github.com/llehouerou/lofi/internal/notify"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/tags"
	"github.com/llehouerou/lofi/internal/ui/nowplaying"
	"github.com/llehouerou/lofi/internal/ui/settings"
)

// InputBuffer is how many commands may wait for a tick. Further input
// is dropped until the loop catches up.
const InputBuffer = 16

type mode int

const (
	modePlaying mode = iota
	modeSettings
)

// Deps are the collaborators of the event loop. Only Store is required.
type Deps struct {
	Store config.Store
	// Scan lists the music folder; library.Scan when nil.
	Scan func(dir string) ([]library.Track, error)
	// ReadTags reads a track's tags; tags.Read when nil.
	ReadTags func(path string) (*tags.Tag, error)
	// Remote receives media key commands and published snapshots.
	Remote *mpris.Bridge
	// Announcer shows a notification on automatic track changes.
	Announcer *notify.NowPlaying
}

// Model is the bubbletea model of the running player.
type Model struct {
	state    *playback.State
	settings config.Settings
	deps     Deps

	resolver *keymap.Resolver
	screen   *nowplaying.Screen
	modal    *settings.Modal
	mode     mode

	pending   []playback.Command
	notice    string
	noticeErr bool
	tagCache  map[string]tags.Tag

	width, height int
}

// New builds the loop around a started session.
func New(sess Session, deps Deps) Model {
	if deps.Scan == nil {
		deps.Scan = library.Scan
	}
	if deps.ReadTags == nil {
		deps.ReadTags = tags.Read
	}
	m := Model{
		state:    sess.State,
		settings: sess.Settings,
		deps:     deps,
		resolver: keymap.NewResolver(keymap.Default),
		screen:   nowplaying.New(keymap.Default),
		tagCache: make(map[string]tags.Tag),
	}
	if sess.Warning != nil {
		m.setNotice(sess.Warning)
	}
	m.screen.Redraw(playback.RegionAll, m.view())
	m.publish()
	return m
}

// Init starts the tick and the background watchers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(), WatchStderr()}
	if m.deps.Remote != nil {
		cmds = append(cmds, WatchRemote(m.deps.Remote.Commands()))
	}
	return tea.Batch(cmds...)
}

// View renders the current mode.
func (m Model) View() string {
	if m.mode == modeSettings && m.modal != nil {
		return m.modal.View()
	}
	return m.screen.View()
}

// State exposes the playback state.
func (m Model) State() *playback.State {
	return m.state
}

// Settings returns the settings in effect.
func (m Model) Settings() config.Settings {
	return m.settings
}

func (m Model) view() nowplaying.View {
	v := nowplaying.View{
		Snapshot:  m.state.Snapshot(),
		Notice:    m.notice,
		NoticeErr: m.noticeErr,
	}
	if v.HasTrack {
		tag := m.tagsFor(v.Track)
		v.TrackTitle = tag.Display()
	}
	return v
}

func (m Model) redraw(region playback.Region) {
	if region == playback.RegionNone {
		return
	}
	m.screen.Redraw(region, m.view())
}

func (m Model) publish() {
	if m.deps.Remote == nil {
		return
	}
	snap := m.state.Snapshot()
	var tag tags.Tag
	if snap.HasTrack {
		tag = m.tagsFor(snap.Track)
	}
	m.deps.Remote.Publish(snap, tag)
}

// tagsFor reads a track's tags once and caches the result, including
// the absence of tags.
func (m Model) tagsFor(t library.Track) tags.Tag {
	if tag, ok := m.tagCache[t.Path]; ok {
		return tag
	}
	var tag tags.Tag
	if read, err := m.deps.ReadTags(t.Path); err != nil {
		log.Debug().Err(err).Str("track", t.Name).Msg("no tags")
	} else if read != nil {
		tag = *read
	}
	m.tagCache[t.Path] = tag
	return tag
}

func (m Model) announce() {
	if m.deps.Announcer == nil || !m.settings.NotificationsEnabled() {
		return
	}
	t, ok := m.state.Current()
	if !ok {
		return
	}
	tag := m.tagsFor(t)
	m.deps.Announcer.Announce(t.Name, tag.Display())
}
