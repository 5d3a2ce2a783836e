// Package preview shows the generated commit message in an editable
// terminal view before anything is committed.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Action is the user's decision about the previewed message.
type Action int

const (
	ActionCommit Action = iota
	ActionCancel
)

// Result carries the (possibly edited) message and the chosen action.
type Result struct {
	Message string
	Action  Action
}

// KeyMap defines the preview key bindings.
type KeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "commit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model is the Bubble Tea model for the preview screen.
type Model struct {
	editor textarea.Model
	keys   KeyMap
	width  int
	height int
	result *Result
	done   bool
}

// NewModel creates a preview model pre-filled with the message.
func NewModel(message string) Model {
	ta := textarea.New()
	ta.SetValue(message)
	ta.CharLimit = 0
	ta.Focus()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width, height = w, h
	}
	ta.SetWidth(width - 6)
	editorHeight := strings.Count(message, "\n") + 3
	if max := height - 6; editorHeight > max && max > 3 {
		editorHeight = max
	}
	ta.SetHeight(editorHeight)

	return Model{
		editor: ta,
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.SetWidth(msg.Width - 6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.result = &Result{Message: strings.TrimSpace(m.editor.Value()), Action: ActionCommit}
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.result = &Result{Action: ActionCancel}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	header := titleStyle.Render("Commit message")
	help := helpStyle.Render(fmt.Sprintf("%s %s  %s %s",
		m.keys.Confirm.Help().Key, m.keys.Confirm.Help().Desc,
		m.keys.Cancel.Help().Key, m.keys.Cancel.Help().Desc,
	))

	return frameStyle.Width(m.width - 4).Render(
		header + "\n\n" + m.editor.View() + "\n\n" + help,
	)
}

// Run shows the preview and blocks until the user confirms or cancels.
func Run(message string) (*Result, error) {
	p := tea.NewProgram(NewModel(message))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	m, ok := final.(Model)
	if !ok || m.result == nil {
		return &Result{Action: ActionCancel}, nil
	}
	return m.result, nil
}
