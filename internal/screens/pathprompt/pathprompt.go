// Package pathprompt is a pushed screen asking for a single file path.
package pathprompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdoc/quizdoc/internal/router"
	"github.com/quizdoc/quizdoc/internal/screen"
	"github.com/quizdoc/quizdoc/internal/ui/components"
	uilayout "github.com/quizdoc/quizdoc/internal/ui/layout"
	"github.com/quizdoc/quizdoc/internal/ui/theme"
)

// PromptScreen collects a file path and hands it to onSubmit. The
// resulting message is delivered after the prompt pops itself, so the
// screen underneath receives it.
type PromptScreen struct {
	title    string
	input    components.PathInput
	onSubmit func(path string) tea.Msg
}

var _ screen.Screen = (*PromptScreen)(nil)
var _ screen.KeyHintProvider = (*PromptScreen)(nil)

// New creates a prompt screen.
func New(title, placeholder, initial string, onSubmit func(string) tea.Msg) *PromptScreen {
	return &PromptScreen{
		title:    title,
		input:    components.NewPathInput(placeholder, initial),
		onSubmit: onSubmit,
	}
}

func (s *PromptScreen) Title() string { return s.title }

func (s *PromptScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PromptScreen) KeyHints() []uilayout.KeyHint {
	return []uilayout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *PromptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		path := s.input.Value()
		if path == "" {
			s.input.SetError("A path is required.")
			return s, nil
		}
		result := s.onSubmit(path)
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return result },
		)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptScreen) View(width, height int) string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.title)

	card := theme.Card.Render(strings.Join([]string{
		label,
		"",
		s.input.View(),
	}, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
