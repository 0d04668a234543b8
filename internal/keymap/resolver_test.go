//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/lofi/internal/playback"
)

func TestResolver_Default(t *testing.T) {
	r := NewResolver(Default)

	tests := []struct {
		key  string
		want playback.Command
	}{
		{"q", playback.Quit},
		{"ctrl+c", playback.Quit},
		{" ", playback.TogglePause},
		{"n", playback.Next},
		{"b", playback.Prev},
		{"=", playback.VolumeUp},
		{"-", playback.VolumeDown},
		{"s", playback.Settings},
		{"x", playback.None},
		{"Q", playback.None},
		{"enter", playback.None},
		{"", playback.None},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{playback.Next, []string{"n"}, "Next"},
		{playback.Prev, []string{"n"}, "Prev"},
	})
	assert.Equal(t, playback.Prev, r.Resolve("n"))
}
