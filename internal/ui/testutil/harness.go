package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a bubbletea model for testing, providing helpers to
// simulate key presses and inspect the returned commands.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a harness and captures the model's init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// Type sends every rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendEnter sends the enter key.
func (h *Harness) SendEnter() tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyEnter})
}

// SendEscape sends the escape key.
func (h *Harness) SendEscape() tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyEscape})
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ViewContains checks if the unstyled view contains substr on one line.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// Key builds the message bubbletea sends for a key press. Named keys
// such as "enter", "esc" and "ctrl+c" map to their key types; anything
// else is sent as runes.
func Key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
