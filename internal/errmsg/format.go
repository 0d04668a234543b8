// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpAudioInit    Op = "initialize audio output"
	OpTerminalInit Op = "initialize terminal"

	// Settings
	OpSettingsLoad    Op = "load settings"
	OpSettingsSave    Op = "save settings"
	OpSettingsCapture Op = "capture settings"

	// Library
	OpLibraryScan   Op = "scan music folder"
	OpLibraryReload Op = "reload music folder"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpPlaybackSkip  Op = "play"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
