package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/lofi/internal/errmsg"
	"github.com/llehouerou/lofi/internal/playback"
	"github.com/llehouerou/lofi/internal/ui/settings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.SetSize(msg.Width, msg.Height)
		if m.modal != nil {
			m.modal.SetSize(msg.Width, msg.Height)
		}
		m.redraw(playback.RegionAll)
		return m, nil

	case TickMsg:
		if m.mode != modePlaying {
			return m, nil
		}
		return m.handleTick()

	case RemoteMsg:
		m.enqueue(msg.Command)
		if m.deps.Remote == nil {
			return m, nil
		}
		return m, WatchRemote(m.deps.Remote.Commands())

	case StderrMsg:
		log.Warn().Str("line", msg.Line).Msg("stderr")
		m.notice, m.noticeErr = msg.Line, false
		m.redraw(playback.RegionNotice)
		return m, WatchStderr()

	case settings.ClosedMsg:
		return m.handleSettingsClosed(msg)

	case tea.KeyMsg:
		if m.mode == modeSettings {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)
	}

	if m.mode == modeSettings {
		return m.updateModal(msg)
	}
	return m, nil
}

// handleKey queues a bound key for the next tick. Quit does not wait.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.resolver.Resolve(msg.String())
	switch cmd {
	case playback.None:
		return m, nil
	case playback.Quit:
		return m.quit()
	}
	m.enqueue(cmd)
	return m, nil
}

func (m *Model) enqueue(cmd playback.Command) {
	if len(m.pending) >= InputBuffer {
		log.Debug().Stringer("command", cmd).Msg("input buffer full, dropping command")
		return
	}
	m.pending = append(m.pending, cmd)
}

// handleTick runs one iteration of the playing loop: at most one queued
// command, then the auto-advance check.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	changed := false
	if len(m.pending) > 0 {
		cmd := m.pending[0]
		m.pending = m.pending[1:]
		eff := playback.Dispatch(cmd, m.state)
		log.Debug().Stringer("command", cmd).Uint8("redraw", uint8(eff.Redraw)).Msg("dispatch")
		switch {
		case eff.Quit:
			return m.quit()
		case eff.OpenSettings:
			return m.openSettings()
		}
		m.apply(eff)
		changed = eff.Redraw != playback.RegionNone
	}

	if eff := playback.Poll(m.state); eff.Advanced {
		log.Debug().Msg("track finished, advancing")
		m.apply(eff)
		changed = true
	}

	if changed {
		m.publish()
	}
	return m, TickCmd()
}

func (m *Model) apply(eff playback.Effect) {
	region := eff.Redraw
	switch {
	case eff.Err != nil:
		m.setNotice(eff.Err)
		region |= playback.RegionNotice
	case region.Has(playback.RegionTrack) && m.notice != "":
		m.notice, m.noticeErr = "", false
		region |= playback.RegionNotice
	}
	m.redraw(region)
	if eff.Advanced && !playback.IsExhausted(eff.Err) {
		m.announce()
	}
}

func (m *Model) setNotice(err error) {
	m.notice, m.noticeErr = noticeFor(err), true
}

// noticeFor formats a non-fatal playback error for the notice line.
func noticeFor(err error) string {
	var le *playback.LoadError
	if errors.As(err, &le) {
		if le.Exhausted {
			return errmsg.Format(errmsg.OpPlaybackStart, le)
		}
		names := make([]string, len(le.Failed))
		for i, t := range le.Failed {
			names[i] = t.Name
		}
		return errmsg.FormatWith(errmsg.OpPlaybackSkip, strings.Join(names, ", "), le.Err)
	}
	return errmsg.Format(errmsg.OpPlaybackStart, err)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.state.Stop()
	if m.deps.Announcer != nil {
		m.deps.Announcer.Dismiss()
	}
	log.Info().Msg("quit")
	return m, tea.Quit
}

// openSettings suspends the loop: no tick is scheduled until the modal
// closes.
func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.mode = modeSettings
	m.modal = settings.NewModal(m.deps.Store, m.settings)
	m.modal.SetSize(m.width, m.height)
	log.Debug().Msg("settings opened")
	return m, m.modal.Init()
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}
	_, cmd := m.modal.Update(msg)
	return m, cmd
}

// handleSettingsClosed re-reads the settings, rescans the music folder
// and resumes the loop. A failed reload keeps the current library.
func (m Model) handleSettingsClosed(msg settings.ClosedMsg) (tea.Model, tea.Cmd) {
	m.mode = modePlaying
	m.modal = nil
	m.notice, m.noticeErr = "", false
	log.Debug().Bool("changed", msg.Changed).Msg("settings closed")

	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("reload after settings")
	}
	m.redraw(playback.RegionAll)
	m.publish()
	return m, TickCmd()
}

func (m *Model) reload() error {
	s, err := m.deps.Store.Load()
	if err != nil {
		m.notice, m.noticeErr = errmsg.Format(errmsg.OpSettingsLoad, err), true
		return err
	}
	m.settings = s

	tracks, err := m.deps.Scan(s.MusicPath)
	if err == nil {
		err = m.state.ReloadLibrary(tracks)
	}
	if err != nil {
		m.notice, m.noticeErr = errmsg.FormatWith(errmsg.OpLibraryReload, s.MusicPath, err), true
		return err
	}
	return nil
}
