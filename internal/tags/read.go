package tags

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// ErrNoTags is returned when a file carries no readable metadata.
var ErrNoTags = errors.New("no tags")

// Read returns the display tags of a music file.
func Read(path string) (*Tag, error) {
	t, err := readGeneric(path)
	if err == nil && !t.Empty() {
		return t, nil
	}

	fallback, ferr := readFallback(path)
	if ferr == nil && !fallback.Empty() {
		return fallback, nil
	}
	if err != nil {
		return nil, err
	}
	if ferr != nil && !errors.Is(ferr, ErrNoTags) {
		return nil, ferr
	}
	return nil, ErrNoTags
}

func readGeneric(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	track, _ := m.Track()
	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		TrackNumber: track,
	}
	if t.Artist == "" {
		t.Artist = m.AlbumArtist()
	}
	t.sanitize()
	return t, nil
}

func readFallback(path string) (*Tag, error) {
	var (
		t   *Tag
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		// dhowden/tag trips over some UTF-16 ID3 frames
		t, err = readID3v2(path)
	case ExtFLAC:
		t, err = readFLACComments(path)
	case ExtOGG, ExtOGA, ExtOPUS, ExtM4A, ExtMP4:
		t, err = readTaglib(path)
	default:
		return nil, ErrNoTags
	}
	if err != nil {
		return nil, err
	}
	t.sanitize()
	return t, nil
}
