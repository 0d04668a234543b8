package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Settings is the user-editable configuration persisted in lofi.toml.
type Settings struct {
	MusicPath     string
	Notifications string // "on" or "off"
}

// Default returns settings with every optional field at its default.
func Default() Settings {
	return Settings{Notifications: "on"}
}

// NotificationsEnabled reports whether desktop notifications are on.
func (s Settings) NotificationsEnabled() bool {
	return s.Notifications != "off"
}

// Field describes one settings key: how it is prompted, validated and
// copied in and out of Settings.
type Field struct {
	Key      string
	Prompt   string
	ErrMsg   string
	Required bool
	Validate func(value string) bool
	Get      func(Settings) string
	Set      func(s *Settings, value string)
}

// Fields lists every settings key in display order.
var Fields = []Field{
	{
		Key:      "music_path",
		Prompt:   "Enter the path to the music folder: ",
		ErrMsg:   "path to the music folder does not exist",
		Required: true,
		Validate: isDir,
		Get:      func(s Settings) string { return s.MusicPath },
		Set:      func(s *Settings, v string) { s.MusicPath = expandPath(strings.TrimSpace(v)) },
	},
	{
		Key:      "notifications",
		Prompt:   "Show desktop notifications on track change (on/off): ",
		ErrMsg:   "value must be on or off",
		Validate: isOnOff,
		Get:      func(s Settings) string { return s.Notifications },
		Set:      func(s *Settings, v string) { s.Notifications = strings.ToLower(strings.TrimSpace(v)) },
	},
}

// Required returns the fields that must be captured on first run.
func Required() []Field {
	var out []Field
	for _, f := range Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every field of s.
func (s Settings) Validate() error {
	for _, f := range Fields {
		v := f.Get(s)
		if v == "" && !f.Required {
			continue
		}
		if !f.Validate(v) {
			return &ValidationError{Key: f.Key, Value: v, Msg: f.ErrMsg}
		}
	}
	return nil
}

func isDir(v string) bool {
	v = expandPath(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	info, err := os.Stat(v)
	return err == nil && info.IsDir()
}

func isOnOff(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "off":
		return true
	}
	return false
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
