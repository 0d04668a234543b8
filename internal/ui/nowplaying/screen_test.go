package nowplaying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/lofi/internal/keymap"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/ui/testutil"
)

func testView() View {
	return View{
		Snapshot: playback.Snapshot{
			Track:    library.Track{Name: "rain.mp3", Path: "/music/rain.mp3"},
			HasTrack: true,
			Count:    3,
			Loaded:   true,
			Volume:   1,
		},
	}
}

func plain(s *Screen, row int) string {
	return testutil.StripANSI(s.Line(row))
}

func TestScreen_FullRedraw(t *testing.T) {
	s := New(keymap.Default)
	changed := s.Redraw(playback.RegionAll, testView())

	assert.Contains(t, changed, RowTitle)
	assert.Contains(t, changed, RowTrack)
	assert.Equal(t, Title, plain(s, RowTitle))
	assert.Equal(t, "  q: Quit   =: +volume  s: Settings", plain(s, RowHelp))
	assert.Equal(t, "  n: Next   -: -volume", plain(s, RowHelp+1))
	assert.Equal(t, "  b: Prev   ' ': Pause", plain(s, RowHelp+2))
	assert.Equal(t, "  song: rain.mp3", plain(s, RowTrack))
	assert.Equal(t, "  volume: 1", plain(s, RowVolume))
	assert.Equal(t, "  paused: ▶", plain(s, RowPause))
	assert.Empty(t, plain(s, RowNotice))

	lines := testutil.Lines(s.View())
	require.Len(t, lines, Rows)
	assert.Equal(t, "  song: rain.mp3", lines[RowTrack])
}

func TestScreen_VolumeRedrawLeavesTrackCached(t *testing.T) {
	s := New(keymap.Default)
	v := testView()
	s.Redraw(playback.RegionAll, v)
	before := s.Line(RowTrack)

	v.Track = library.Track{Name: "other.mp3"}
	v.Volume = 0
	changed := s.Redraw(playback.RegionVolume, v)

	assert.Equal(t, []int{RowVolume}, changed)
	assert.Equal(t, before, s.Line(RowTrack))
	assert.Equal(t, "  volume: 0 MUTE", plain(s, RowVolume))
}

func TestScreen_UnchangedRowsNotReported(t *testing.T) {
	s := New(keymap.Default)
	v := testView()
	s.Redraw(playback.RegionAll, v)

	assert.Empty(t, s.Redraw(playback.RegionAll, v))
	assert.Empty(t, s.Redraw(playback.RegionNone, v))
}

func TestScreen_TrackLine(t *testing.T) {
	tests := []struct {
		name string
		view func(View) View
		want string
	}{
		{
			name: "with tags",
			view: func(v View) View {
				v.TrackTitle = "Nujabes - Aruarian Dance"
				return v
			},
			want: "  song: rain.mp3 · Nujabes - Aruarian Dance",
		},
		{
			name: "control characters dropped",
			view: func(v View) View {
				v.Track.Name = "bad\x1b[2Jname.mp3"
				return v
			},
			want: "  song: bad[2Jname.mp3",
		},
		{
			name: "no track",
			view: func(v View) View {
				v.HasTrack = false
				return v
			},
			want: "  song:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(keymap.Default)
			s.Redraw(playback.RegionTrack, tt.view(testView()))
			assert.Equal(t, tt.want, plain(s, RowTrack))
		})
	}
}

func TestScreen_PauseAndNotice(t *testing.T) {
	s := New(keymap.Default)
	v := testView()
	v.Paused = true
	v.Notice = "Failed to play 'x.mp3': boom"
	v.NoticeErr = true

	changed := s.Redraw(playback.RegionPause|playback.RegionNotice, v)

	assert.ElementsMatch(t, []int{RowPause, RowNotice}, changed)
	assert.Equal(t, "  paused: ⏸", plain(s, RowPause))
	assert.Equal(t, "  Failed to play 'x.mp3': boom", plain(s, RowNotice))

	v.Notice = ""
	s.Redraw(playback.RegionNotice, v)
	assert.Empty(t, plain(s, RowNotice))
}

func TestScreen_TruncatesToWidth(t *testing.T) {
	s := New(keymap.Default)
	s.SetSize(12, 24)
	v := testView()
	v.Track.Name = "a-very-long-file-name.flac"

	s.Redraw(playback.RegionTrack, v)

	got := plain(s, RowTrack)
	assert.Equal(t, 12, testutil.Width(got))
	assert.Contains(t, got, "…")
}

func TestScreen_LineOutOfRange(t *testing.T) {
	s := New(keymap.Default)
	assert.Empty(t, s.Line(-1))
	assert.Empty(t, s.Line(Rows))
}
