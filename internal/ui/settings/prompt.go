// Package settings provides the first-run settings capture and the
// settings modal shown while playing.
package settings

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/ui/styles"
)

const inputWidth = 60

// prompt asks for one field, re-prompting in place while the value is
// invalid.
type prompt struct {
	field config.Field
	input textinput.Model
	err   string
}

func newPrompt(f config.Field, initial string) prompt {
	ti := textinput.New()
	ti.Prompt = f.Prompt
	ti.CharLimit = 1024
	ti.Width = inputWidth
	ti.SetValue(initial)
	ti.Focus()
	return prompt{field: f, input: ti}
}

// submit returns the entered value when it passes the field's validator.
// Otherwise the error is shown and the input cleared.
func (p *prompt) submit() (string, bool) {
	v := strings.TrimSpace(p.input.Value())
	if !p.field.Validate(v) {
		p.err = p.field.ErrMsg
		p.input.SetValue("")
		return "", false
	}
	p.err = ""
	return v, true
}

func (p *prompt) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p prompt) view() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n")
	if p.err != "" {
		b.WriteString(styles.T().S().Error.Render(p.err))
	}
	return b.String()
}
