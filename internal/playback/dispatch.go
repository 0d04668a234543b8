package playback

// Dispatch applies cmd to s and reports what changed. It keeps no state
// of its own.
func Dispatch(cmd Command, s *State) Effect {
	switch cmd {
	case Quit:
		s.Stop()
		return Effect{Quit: true}
	case TogglePause:
		return pauseEffect(s.TogglePause())
	case Resume:
		return pauseEffect(s.Resume())
	case Pause:
		return pauseEffect(s.Pause())
	case Next:
		return move(s, s.Advance)
	case Prev:
		return move(s, s.Retreat)
	case VolumeUp:
		if s.IncreaseVolume() {
			return Effect{Redraw: RegionVolume}
		}
		return Effect{}
	case VolumeDown:
		if s.DecreaseVolume() {
			return Effect{Redraw: RegionVolume}
		}
		return Effect{}
	case Settings:
		return Effect{OpenSettings: true}
	default:
		return Effect{}
	}
}

func pauseEffect(changed bool) Effect {
	if !changed {
		return Effect{}
	}
	return Effect{Redraw: RegionPause}
}

func move(s *State, step func() error) Effect {
	wasPaused := s.Paused()
	err := step()
	eff := Effect{Redraw: RegionTrack, Err: err}
	if wasPaused != s.Paused() {
		eff.Redraw |= RegionPause
	}
	if err != nil {
		eff.Redraw |= RegionNotice
	}
	return eff
}

// Poll advances once when the current track finished and playback is
// not paused. It returns an empty Effect otherwise.
func Poll(s *State) Effect {
	if !s.Finished() {
		return Effect{}
	}
	eff := move(s, s.Advance)
	eff.Advanced = true
	return eff
}
