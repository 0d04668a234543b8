package player

// State is the backend's transport state.
//
//	Stopped --Play--> Playing --Pause--> Paused --Resume--> Playing
//	any state --Stop--> Stopped
//
// Pause while not Playing and Resume while not Paused are ignored.
// A track reaching its end stays Playing with Finished set.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
