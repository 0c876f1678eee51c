// Package recent lists past generations from the history store.
package recent

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdoc/quizdoc/internal/history"
	"github.com/quizdoc/quizdoc/internal/screen"
	uilayout "github.com/quizdoc/quizdoc/internal/ui/layout"
	"github.com/quizdoc/quizdoc/internal/ui/theme"
)

const listLimit = 50

type loadedMsg struct {
	Entries []history.Entry
	Err     error
}

// RecentScreen displays past generations, newest first.
type RecentScreen struct {
	store    *history.Store
	entries  []history.Entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*RecentScreen)(nil)
var _ screen.KeyHintProvider = (*RecentScreen)(nil)

// New creates a RecentScreen backed by the given store.
func New(store *history.Store) *RecentScreen {
	return &RecentScreen{store: store}
}

func (s *RecentScreen) Title() string { return "Recent" }

func (s *RecentScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.store.Recent(context.Background(), listLimit)
		return loadedMsg{Entries: entries, Err: err}
	}
}

func (s *RecentScreen) KeyHints() []uilayout.KeyHint {
	return []uilayout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RecentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.entries = msg.Entries
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *RecentScreen) View(width, height int) string {
	switch {
	case !s.loaded:
		return theme.Hint.Render("Loading...")
	case s.errMsg != "":
		return theme.StatusError.Render("Failed to load history: " + s.errMsg)
	case len(s.entries) == 0:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No generations yet."))
	}

	var rows []string
	for i, e := range s.entries {
		line := fmt.Sprintf("%s  %-40s %2d questions  %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(e.Title, 40),
			e.Questions,
			e.OutputPath,
		)
		if i == s.selected {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(rows, "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
