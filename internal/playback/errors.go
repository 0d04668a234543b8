package playback

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/lofi/internal/library"
)

// ErrEmptyLibrary is returned when there is no track to play.
var ErrEmptyLibrary = errors.New("music folder has no playable tracks")

// LoadError reports tracks the backend refused to play. When Exhausted
// is false playback moved on to a later track and the error is only a
// notice; when true no track in the list could be played.
type LoadError struct {
	Failed    []library.Track
	Err       error // last backend error
	Exhausted bool
}

func (e *LoadError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("no playable track (%d failed): %v", len(e.Failed), e.Err)
	}
	names := make([]string, len(e.Failed))
	for i, t := range e.Failed {
		names[i] = t.Name
	}
	return fmt.Sprintf("skipped %s: %v", strings.Join(names, ", "), e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsExhausted reports whether err is a LoadError with no playable track.
func IsExhausted(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Exhausted
}
