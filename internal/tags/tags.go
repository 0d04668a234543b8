// Package tags reads the few pieces of metadata the player displays.
// dhowden/tag handles most files; per-format readers take over when it
// cannot parse a file.
package tags

import (
	"path/filepath"
	"strings"
)

// File extensions the player can decode.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtOPUS = ".opus"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

var musicExts = map[string]bool{
	ExtMP3: true, ExtFLAC: true, ExtWAV: true, ExtOGG: true,
	ExtOGA: true, ExtOPUS: true, ExtM4A: true, ExtMP4: true,
}

// IsMusicFile reports whether path has a playable extension (case-insensitive).
func IsMusicFile(path string) bool {
	return musicExts[strings.ToLower(filepath.Ext(path))]
}

// Tag is display metadata for one track. Empty fields mean "not tagged".
type Tag struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	Genre       string
	TrackNumber int
}

// Display returns "artist - title", just the title, or "" when untagged.
func (t *Tag) Display() string {
	if t == nil || t.Title == "" {
		return ""
	}
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// Empty reports whether no display field is set.
func (t *Tag) Empty() bool {
	return t == nil || (t.Title == "" && t.Artist == "" && t.Album == "")
}

func (t *Tag) sanitize() {
	t.Title = clean(t.Title)
	t.Artist = clean(t.Artist)
	t.Album = clean(t.Album)
	t.Genre = clean(t.Genre)
}

// clean strips NULs left by some ID3 writers and surrounding space.
func clean(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\x00", ""))
}

// first returns the first non-empty value for any of keys.
func first(m map[string][]string, keys ...string) string {
	for _, k := range keys {
		for _, v := range m[k] {
			if v != "" {
				return v
			}
		}
	}
	return ""
}
