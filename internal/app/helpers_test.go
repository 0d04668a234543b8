package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/player"
	"github.com/llehouerou/lofi/internal/tags"
	"github.com/llehouerou/lofi/internal/ui/nowplaying"
	"github.com/llehouerou/lofi/internal/ui/testutil"
)

func tracksOf(names ...string) []library.Track {
	out := make([]library.Track, len(names))
	for i, n := range names {
		out[i] = library.Track{Name: n, Path: "/music/" + n}
	}
	return out
}

func scanOf(tracks []library.Track, err error) func(string) ([]library.Track, error) {
	return func(string) ([]library.Track, error) { return tracks, err }
}

func noTags(string) (*tags.Tag, error) { return nil, tags.ErrNoTags }

func noCapture(config.Store) (config.Settings, error) {
	panic("capture must not run when settings exist")
}

func testStore(t *testing.T) *config.MemoryStore {
	t.Helper()
	s := config.Default()
	s.MusicPath = t.TempDir()
	return config.NewMemoryStore(s)
}

type fixture struct {
	mock  *player.Mock
	store *config.MemoryStore
	model Model
}

func newFixture(t *testing.T, deps Deps, names ...string) *fixture {
	t.Helper()
	mock := player.NewMock()
	store := testStore(t)
	sess, err := Prepare(store, mock, noCapture, scanOf(tracksOf(names...), nil))
	require.NoError(t, err)
	mock.Reset()

	deps.Store = store
	if deps.ReadTags == nil {
		deps.ReadTags = noTags
	}
	if deps.Scan == nil {
		deps.Scan = scanOf(tracksOf(names...), nil)
	}
	return &fixture{mock: mock, store: store, model: New(sess, deps)}
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(Model)
	return cmd
}

func (f *fixture) press(keys ...string) {
	for _, k := range keys {
		f.send(testutil.Key(k))
	}
}

func (f *fixture) tick() tea.Cmd {
	return f.send(TickMsg(time.Now()))
}

func (f *fixture) line(row int) string {
	return testutil.StripANSI(f.model.screen.Line(row))
}

func (f *fixture) trackLine() string {
	return f.line(nowplaying.RowTrack)
}
