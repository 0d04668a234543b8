package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "track.mp3", "track.mp3"},
		{"control chars", "a\x1b[2Jb\x07", "a[2Jb"},
		{"tab and nbsp", "a\tb\u00a0c", "a b c"},
		{"invalid utf8", "a\xffb", "ab"},
		{"wide chars", "夜の音.flac", "夜の音.flac"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long na…", Truncate("long name here", 8))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "夜…", Truncate("夜の音", 4))
}

func TestColumns(t *testing.T) {
	got := Columns([]string{"q: Quit", "=: +volume", "s: Settings"}, []int{2, 12, 24})
	assert.Equal(t, "  q: Quit   =: +volume  s: Settings", got)

	got = Columns([]string{"a very long cell", "x"}, []int{0, 5})
	assert.Equal(t, "a v… x", got)
}
