package playback

// Command is a user intent, from a key press or a remote media key.
type Command int

const (
	None Command = iota
	Quit
	TogglePause
	Next
	Prev
	VolumeUp
	VolumeDown
	Settings
	// Resume and Pause come from remote Play and Pause, which must not
	// toggle.
	Resume
	Pause
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle-pause"
	case Next:
		return "next"
	case Prev:
		return "prev"
	case VolumeUp:
		return "volume-up"
	case VolumeDown:
		return "volume-down"
	case Settings:
		return "settings"
	case Resume:
		return "resume"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// Region is a set of screen lines to redraw.
type Region uint8

const (
	RegionTrack Region = 1 << iota
	RegionVolume
	RegionPause
	RegionNotice
	RegionChrome // title and key help

	RegionNone Region = 0
	RegionAll         = RegionTrack | RegionVolume | RegionPause | RegionNotice | RegionChrome
)

// Has reports whether every line of o is in r.
func (r Region) Has(o Region) bool { return r&o == o && o != 0 }

// Effect is what the event loop must do after a command.
type Effect struct {
	Redraw       Region
	Quit         bool
	OpenSettings bool
	// Advanced is set when the track changed on its own.
	Advanced bool
	// Err is a non-fatal failure to show as a notice.
	Err error
}
