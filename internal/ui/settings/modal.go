package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lofi/internal/config"
	"github.com/llehouerou/lofi/internal/errmsg"
	"github.com/llehouerou/lofi/internal/library"
	"github.com/llehouerou/lofi/internal/ui"
	"github.com/llehouerou/lofi/internal/ui/render"
	"github.com/llehouerou/lofi/internal/ui/styles"
)

// ClosedMsg is sent when the modal is dismissed.
type ClosedMsg struct {
	// Changed is set when at least one value was saved.
	Changed bool
}

type page int

const (
	pageInfo page = iota
	pageChooser
	pageEditor
)

// maxChoices is the number of fields the chooser can select with one digit.
const maxChoices = 9

// Modal shows the saved settings and edits them one field at a time.
type Modal struct {
	ui.Base
	store    config.Store
	fields   []config.Field
	settings config.Settings
	summary  string
	page     page
	prompt   prompt
	notice   string
	changed  bool
}

// NewModal opens the modal on the info page.
func NewModal(store config.Store, s config.Settings) *Modal {
	m := &Modal{
		store:    store,
		fields:   config.Fields,
		settings: s,
	}
	m.summarize()
	return m
}

// Settings returns the settings as last saved by the modal.
func (m *Modal) Settings() config.Settings {
	return m.settings
}

// Init implements tea.Model.
func (m *Modal) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.page == pageEditor {
			return m, m.prompt.update(msg)
		}
		return m, nil
	}

	switch m.page {
	case pageInfo:
		return m, m.handleInfoKey(key)
	case pageChooser:
		return m, m.handleChooserKey(key)
	case pageEditor:
		return m, m.handleEditorKey(key)
	}
	return m, nil
}

func (m *Modal) handleInfoKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "c":
		m.notice = ""
		m.page = pageChooser
	case "q", "esc":
		changed := m.changed
		return func() tea.Msg { return ClosedMsg{Changed: changed} }
	}
	return nil
}

func (m *Modal) handleChooserKey(key tea.KeyMsg) tea.Cmd {
	k := key.String()
	switch k {
	case "q", "esc":
		m.page = pageInfo
		return nil
	}
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return nil
	}
	i := int(k[0] - '1')
	if i >= len(m.fields) {
		return nil
	}
	f := m.fields[i]
	m.prompt = newPrompt(f, f.Get(m.settings))
	m.page = pageEditor
	return textinput.Blink
}

func (m *Modal) handleEditorKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEscape:
		m.page = pageInfo
		return nil
	case tea.KeyEnter:
		v, ok := m.prompt.submit()
		if !ok {
			return nil
		}
		m.save(v)
		return nil
	}
	return m.prompt.update(key)
}

func (m *Modal) save(value string) {
	next := m.settings
	m.prompt.field.Set(&next, value)
	if err := m.store.Save(next); err != nil {
		m.notice = errmsg.Format(errmsg.OpSettingsSave, err)
		m.page = pageInfo
		return
	}
	m.settings = next
	m.changed = true
	m.page = pageInfo
	if m.prompt.field.Key == "music_path" {
		m.summarize()
	}
}

func (m *Modal) summarize() {
	sum, err := library.Summarize(m.settings.MusicPath)
	if err != nil {
		m.summary = "unavailable"
		return
	}
	m.summary = sum.String()
}

// View implements tea.Model.
func (m *Modal) View() string {
	var out string
	switch m.page {
	case pageChooser:
		out = m.chooserView()
	case pageEditor:
		out = m.editorView()
	default:
		out = m.infoView()
	}
	w := m.Width()
	if w <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = render.TruncateStyled(line, w)
	}
	return strings.Join(lines, "\n")
}

func (m *Modal) infoView() string {
	st := styles.T().S()
	var b strings.Builder
	b.WriteString("Settings:\n\n")
	for i, f := range m.fields {
		fmt.Fprintf(&b, "  %d: %s - %s\n", i+1, f.Key, f.Get(m.settings))
	}
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("  music folder: " + m.summary))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(st.Error.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(st.Subtle.Render("change settings (c) or back (q)"))
	return b.String()
}

func (m *Modal) chooserView() string {
	var b strings.Builder
	b.WriteString("Choose a setting to change:\n\n")
	for i, f := range m.fields {
		if i >= maxChoices {
			break
		}
		fmt.Fprintf(&b, "  %d: %s\n", i+1, f.Key)
	}
	b.WriteString("\n")
	b.WriteString(styles.T().S().Subtle.Render("Press number or q to cancel"))
	return b.String()
}

func (m *Modal) editorView() string {
	var b strings.Builder
	b.WriteString(m.prompt.view())
	b.WriteString("\n")
	b.WriteString(styles.T().S().Subtle.Render("enter to save, esc to cancel"))
	return b.String()
}
