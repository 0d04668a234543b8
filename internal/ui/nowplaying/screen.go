// Package nowplaying renders the player's main screen.
//
// The screen is a fixed grid of rows. Each row is cached and only the rows
// in a redraw region are recomputed, so a volume change does not touch the
// track line.
package nowplaying

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/lofi/internal/keymap"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/ui"
	"github.com/llehouerou/lofi/internal/ui/render"
	"github.com/llehouerou/lofi/internal/ui/styles"
)

// Row indices.
const (
	RowTitle  = 0
	RowHelp   = 2
	RowTrack  = 6
	RowVolume = 7
	RowPause  = 8
	RowNotice = 10

	Rows = RowNotice + 1
)

// Title is shown on the first row.
const Title = "Lo-Fi Player"

const indent = "  "

// helpColumns are the column offsets of the key help, three entries per
// column.
var helpColumns = []int{2, 12, 24}

const helpRows = 3

// View is everything the screen shows.
type View struct {
	playback.Snapshot
	// TrackTitle is "artist - title" from the file's tags, or empty.
	TrackTitle string
	Notice     string
	NoticeErr  bool
}

// Screen caches the rendered rows.
type Screen struct {
	ui.Base
	help  []key.Binding
	lines [Rows]string
}

// New creates a screen whose help lists the given bindings.
func New(bindings []keymap.Binding) *Screen {
	return &Screen{help: keymap.Help(bindings)}
}

// Redraw recomputes the rows in region and returns the indices of the
// rows whose content changed.
func (s *Screen) Redraw(region playback.Region, v View) []int {
	var changed []int
	set := func(row int, line string) {
		if w := s.Width(); w > 0 {
			line = render.TruncateStyled(line, w)
		}
		if s.lines[row] != line {
			s.lines[row] = line
			changed = append(changed, row)
		}
	}

	if region.Has(playback.RegionChrome) {
		set(RowTitle, s.title())
		for i, line := range s.helpLines() {
			set(RowHelp+i, line)
		}
	}
	if region.Has(playback.RegionTrack) {
		set(RowTrack, trackLine(v))
	}
	if region.Has(playback.RegionVolume) {
		set(RowVolume, volumeLine(v.Volume))
	}
	if region.Has(playback.RegionPause) {
		set(RowPause, pauseLine(v.Paused))
	}
	if region.Has(playback.RegionNotice) {
		set(RowNotice, noticeLine(v.Notice, v.NoticeErr))
	}
	return changed
}

// Line returns the cached row i.
func (s *Screen) Line(i int) string {
	if i < 0 || i >= Rows {
		return ""
	}
	return s.lines[i]
}

// View joins the cached rows.
func (s *Screen) View() string {
	return strings.Join(s.lines[:], "\n")
}

func (s *Screen) title() string {
	t := styles.T()
	return styles.BoldGradient(Title, t.Dusk, t.Dawn)
}

func (s *Screen) helpLines() []string {
	st := styles.T().S()
	cols := (len(s.help) + helpRows - 1) / helpRows
	lines := make([]string, helpRows)
	for row := range helpRows {
		cells := make([]string, 0, cols)
		offsets := make([]int, 0, cols)
		for col := range cols {
			i := col*helpRows + row
			if i >= len(s.help) || col >= len(helpColumns) {
				break
			}
			h := s.help[i].Help()
			cells = append(cells, h.Key+": "+h.Desc)
			offsets = append(offsets, helpColumns[col])
		}
		lines[row] = st.Base.Render(render.Columns(cells, offsets))
	}
	return lines
}

func trackLine(v View) string {
	st := styles.T().S()
	if !v.HasTrack {
		return indent + st.Label.Render("song:")
	}
	name := render.Sanitize(v.Track.Name)
	line := indent + st.Label.Render("song:") + " " + st.Value.Render(name)
	if v.TrackTitle != "" {
		line += st.Muted.Render(" · " + render.Sanitize(v.TrackTitle))
	}
	return line
}

func volumeLine(volume int) string {
	st := styles.T().S()
	line := indent + st.Label.Render("volume:") + " " + st.Value.Render(strconv.Itoa(volume))
	if volume == 0 {
		line += " " + st.Mute.Render("MUTE")
	}
	return line
}

func pauseLine(paused bool) string {
	st := styles.T().S()
	sym := "▶"
	if paused {
		sym = "⏸"
	}
	return indent + st.Label.Render("paused:") + " " + st.Value.Render(sym)
}

func noticeLine(notice string, isErr bool) string {
	if notice == "" {
		return ""
	}
	st := styles.T().S()
	notice = render.Sanitize(notice)
	if isErr {
		return indent + st.Error.Render(notice)
	}
	return indent + st.Warning.Render(notice)
}
