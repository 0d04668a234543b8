package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/ui/styles"
)

// ErrAbandoned is returned when the user leaves the first-run prompt.
var ErrAbandoned = errors.New("settings capture abandoned")

// Capture prompts for each field in turn.
type Capture struct {
	fields    []config.Field
	idx       int
	prompt    prompt
	settings  config.Settings
	done      bool
	abandoned bool
}

// NewCapture starts a capture of fields over the default settings.
func NewCapture(fields []config.Field) *Capture {
	c := &Capture{fields: fields, settings: config.Default()}
	if len(fields) == 0 {
		c.done = true
		return c
	}
	c.prompt = newPrompt(fields[0], "")
	return c
}

// Init implements tea.Model.
func (c *Capture) Init() tea.Cmd {
	if c.done {
		return tea.Quit
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (c *Capture) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if c.done || c.abandoned {
		return c, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, c.prompt.update(msg)
	}
	switch key.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		c.abandoned = true
		return c, tea.Quit
	case tea.KeyEnter:
		v, ok := c.prompt.submit()
		if !ok {
			return c, nil
		}
		c.prompt.field.Set(&c.settings, v)
		c.idx++
		if c.idx == len(c.fields) {
			c.done = true
			return c, tea.Quit
		}
		c.prompt = newPrompt(c.fields[c.idx], "")
		return c, textinput.Blink
	}
	return c, c.prompt.update(msg)
}

// View implements tea.Model.
func (c *Capture) View() string {
	if c.done || c.abandoned {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.T().S().Muted.Render("First run: a few settings are needed (esc to quit)."))
	b.WriteString("\n\n")
	b.WriteString(c.prompt.view())
	return b.String()
}

// Result returns the captured settings.
func (c *Capture) Result() (config.Settings, error) {
	if !c.done {
		return config.Settings{}, ErrAbandoned
	}
	return c.settings, nil
}

// RunCapture runs the capture as its own program and saves the result
// to store, overwriting the whole file.
func RunCapture(store config.Store, opts ...tea.ProgramOption) (config.Settings, error) {
	final, err := tea.NewProgram(NewCapture(config.Required()), opts...).Run()
	if err != nil {
		return config.Settings{}, fmt.Errorf("run settings prompt: %w", err)
	}
	c, ok := final.(*Capture)
	if !ok {
		return config.Settings{}, ErrAbandoned
	}
	s, err := c.Result()
	if err != nil {
		return config.Settings{}, err
	}
	if err := store.Save(s); err != nil {
		return config.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return s, nil
}
