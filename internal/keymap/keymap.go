// Package keymap maps key presses to playback commands.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/lofi/internal/playback"
)

// Binding ties keys to a command. The first key is the one shown in help.
type Binding struct {
	Command     playback.Command
	Keys        []string
	Description string
}

// Default is the player's key map, in help display order.
var Default = []Binding{
	{playback.Quit, []string{"q", "ctrl+c"}, "Quit"},
	{playback.Next, []string{"n"}, "Next"},
	{playback.Prev, []string{"b"}, "Prev"},
	{playback.VolumeUp, []string{"="}, "+volume"},
	{playback.VolumeDown, []string{"-"}, "-volume"},
	{playback.TogglePause, []string{" "}, "Pause"},
	{playback.Settings, []string{"s"}, "Settings"},
}

// HelpKey returns how a key is written in help text.
func HelpKey(k string) string {
	if k == " " {
		return "' '"
	}
	return k
}

// Help returns the bindings as bubbles key bindings carrying help text.
func Help(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(HelpKey(b.Keys[0]), b.Description),
		))
	}
	return out
}
