package config

import (
	"errors"
	"fmt"
)

// ErrNotExist is returned by Load when no settings file has been written yet.
var ErrNotExist = errors.New("settings file does not exist")

// ValidationError reports a settings value that failed its validator.
type ValidationError struct {
	Key   string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s (missing)", e.Key, e.Msg)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Key, e.Msg, e.Value)
}
