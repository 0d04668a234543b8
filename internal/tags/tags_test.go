package tags

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"a.flac", true},
		{"a.wav", true},
		{"a.ogg", true},
		{"a.oga", true},
		{"a.opus", true},
		{"a.m4a", true},
		{"a.mp4", true},
		{"cover.jpg", false},
		{"notes.txt", false},
		{"mp3", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMusicFile(tt.path))
		})
	}
}

func TestTag_Display(t *testing.T) {
	var nilTag *Tag
	assert.Empty(t, nilTag.Display())
	assert.Empty(t, (&Tag{Artist: "Nujabes"}).Display())
	assert.Equal(t, "Aruarian Dance", (&Tag{Title: "Aruarian Dance"}).Display())
	assert.Equal(t, "Nujabes - Aruarian Dance", (&Tag{Title: "Aruarian Dance", Artist: "Nujabes"}).Display())
}

func TestParseTrackNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"5", 5},
		{"5/10", 5},
		{" 7 ", 7},
		{"x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTrackNumber(tt.in))
		})
	}
}

// createMinimalMP3 writes one MPEG1 Layer3 frame header plus padding.
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	frame := make([]byte, 417)
	frame[0], frame[1], frame[2] = 0xff, 0xfb, 0x90
	require.NoError(t, os.WriteFile(path, frame, 0o600))
}

func writeID3(t *testing.T, path, title, artist string) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)
	tag.SetArtist(artist)
	tag.SetAlbum("Modal Soul")
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, "3/14")
	require.NoError(t, tag.Save())
}

func TestRead_MP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	createMinimalMP3(t, path)
	writeID3(t, path, "Feather", "Nujabes")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Feather", got.Title)
	assert.Equal(t, "Nujabes", got.Artist)
	assert.Equal(t, "Modal Soul", got.Album)
	assert.Equal(t, "Nujabes - Feather", got.Display())
}

func TestReadID3v2_Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.mp3")
	createMinimalMP3(t, path)
	writeID3(t, path, "Luv(sic)", "Nujabes")

	got, err := readID3v2(path)
	require.NoError(t, err)
	assert.Equal(t, "Luv(sic)", got.Title)
	assert.Equal(t, 3, got.TrackNumber)
}

func TestRead_Untagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	createMinimalMP3(t, path)

	got, err := Read(path)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.mp3"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoTags))
}

func TestRead_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadFLACComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.flac")
	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-metadata", "title=Shiki No Uta", "-metadata", "artist=MINMI", path)
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}

	got, err := readFLACComments(path)
	require.NoError(t, err)
	assert.Equal(t, "Shiki No Uta", got.Title)
	assert.Equal(t, "MINMI", got.Artist)

	viaRead, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "MINMI - Shiki No Uta", viaRead.Display())
}
