package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"viteroad/internal/ui/theme"
)

// Editor wraps bubbles/textarea as the practice code editor.
type Editor struct {
	Model   textarea.Model
	Focused bool
}

// NewEditor creates a code editor seeded with the given content.
func NewEditor(content string, width, height int) Editor {
	ta := textarea.New()
	ta.SetValue(content)
	ta.Prompt = "│ "
	ta.ShowLineNumbers = true
	ta.SetWidth(width)
	ta.SetHeight(height)
	return Editor{Model: ta}
}

// Init returns nil; focus is driven by the owning screen.
func (e Editor) Init() tea.Cmd {
	return nil
}

// Focus gives the editor keyboard input.
func (e Editor) Focus() (Editor, tea.Cmd) {
	e.Focused = true
	return e, e.Model.Focus()
}

// Blur releases keyboard input.
func (e Editor) Blur() Editor {
	e.Focused = false
	e.Model.Blur()
	return e
}

// Update forwards messages to the textarea while focused.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	if !e.Focused {
		return e, nil
	}
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetValue replaces the editor buffer.
func (e *Editor) SetValue(content string) {
	e.Model.SetValue(content)
}

// Value returns the current buffer contents.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetSize resizes the editor viewport.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// View renders the editor inside a border that signals focus.
func (e Editor) View() string {
	border := theme.Border
	if e.Focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(e.Model.View())
}
