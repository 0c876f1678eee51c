package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdoc/quizdoc/internal/ui/theme"
)

// PathInput wraps bubbles/textinput for entering file paths.
type PathInput struct {
	Model  textinput.Model
	errMsg string
}

// NewPathInput creates a focused path input with a placeholder.
func NewPathInput(placeholder, initial string) PathInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if initial != "" {
		ti.SetValue(initial)
	}
	ti.Focus()
	return PathInput{Model: ti}
}

// Init returns the initial command.
func (p PathInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update handles messages.
func (p PathInput) Update(msg tea.Msg) (PathInput, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the input plus any error line below it.
func (p PathInput) View() string {
	view := p.Model.View()
	if p.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(p.errMsg)
	}
	return view
}

// Value returns the trimmed path.
func (p PathInput) Value() string {
	return strings.TrimSpace(p.Model.Value())
}

// SetError displays an error line under the input.
func (p *PathInput) SetError(msg string) {
	p.errMsg = msg
}
