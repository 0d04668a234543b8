// Package logging routes zerolog's global logger to a file, since the
// terminal belongs to the UI while the player runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "LOFI_LOG_LEVEL"

const logFile = "lofi/lofi.log"

// Path returns the log file location, creating its directory.
func Path() (string, error) {
	return xdg.StateFile(logFile)
}

// Setup opens the log file and installs it as the global logger output.
// The returned closer flushes nothing but releases the file.
func Setup() (io.Closer, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Configure(f, os.Getenv(LevelEnv))
	return f, nil
}

// Configure points the global logger at w with the named level.
// Unknown or empty names fall back to info.
func Configure(w io.Writer, level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel maps a zerolog level name to a level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Discard silences logging; used when the log file cannot be opened.
func Discard() {
	log.Logger = zerolog.Nop()
}
