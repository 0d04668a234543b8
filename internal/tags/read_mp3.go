package tags

import (
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
)

func readID3v2(path string) (*Tag, error) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3.Close()

	if !id3.HasFrames() {
		return nil, ErrNoTags
	}

	t := &Tag{
		Path:   path,
		Title:  id3.Title(),
		Artist: id3.Artist(),
		Album:  id3.Album(),
		Genre:  id3.Genre(),
	}
	t.TrackNumber = parseTrackNumber(id3.GetTextFrame("TRCK").Text)
	return t, nil
}

// parseTrackNumber accepts "N" and "N/M".
func parseTrackNumber(s string) int {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
