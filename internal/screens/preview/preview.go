// Package preview shows the assembled document outline as scrollable
// text, without touching the filesystem.
package preview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdoc/quizdoc/internal/layout"
	"github.com/quizdoc/quizdoc/internal/screen"
	uilayout "github.com/quizdoc/quizdoc/internal/ui/layout"
	"github.com/quizdoc/quizdoc/internal/ui/theme"
)

// PreviewScreen renders the block outline of an assembled document.
type PreviewScreen struct {
	lines  []string
	offset int
	height int
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)

// New creates a preview of the given document.
func New(doc layout.Document) *PreviewScreen {
	return &PreviewScreen{lines: Outline(doc)}
}

func (s *PreviewScreen) Title() string { return "Preview" }

func (s *PreviewScreen) Init() tea.Cmd { return nil }

func (s *PreviewScreen) KeyHints() []uilayout.KeyHint {
	return []uilayout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.scroll(-1)
	case "down", "j":
		s.scroll(1)
	case "pgup":
		s.scroll(-s.height)
	case "pgdown", "space":
		s.scroll(s.height)
	case "home", "g":
		s.offset = 0
	case "end", "shift+g":
		s.scroll(len(s.lines))
	}
	return s, nil
}

func (s *PreviewScreen) scroll(delta int) {
	s.offset += delta
	max := len(s.lines) - s.height
	if max < 0 {
		max = 0
	}
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

func (s *PreviewScreen) View(width, height int) string {
	s.height = height - 1
	if s.height < 1 {
		s.height = 1
	}

	end := s.offset + s.height
	if end > len(s.lines) {
		end = len(s.lines)
	}
	visible := s.lines[s.offset:end]

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		MaxWidth(width).
		Render(strings.Join(visible, "\n"))

	position := theme.Hint.Render(fmt.Sprintf(" %d-%d of %d lines", s.offset+1, end, len(s.lines)))
	return body + "\n" + position
}

// Outline flattens a document into one text line per block, with table
// rows expanded. It mirrors the renderer's traversal order exactly.
func Outline(doc layout.Document) []string {
	lines := []string{fmt.Sprintf("Document title: %s", doc.Title), ""}

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case layout.Spacer:
			lines = append(lines, fmt.Sprintf("        (spacer %.1fmm)", b.Height))
		case layout.PageBreak:
			lines = append(lines, "-------- page break --------")
		case layout.TitleText:
			lines = append(lines, fmt.Sprintf("TITLE    %s", b.Text))
		case layout.SubtitleText:
			lines = append(lines, fmt.Sprintf("SUBTITLE %s", b.Text))
		case layout.SectionHeading:
			lines = append(lines, fmt.Sprintf("HEADING  %s", b.Text))
		case layout.BodyParagraph:
			switch b.Style {
			case layout.StyleQuestion:
				lines = append(lines, b.Text)
			case layout.StyleOption:
				lines = append(lines, "    "+b.Text)
			}
		case layout.Table:
			lines = append(lines, fmt.Sprintf("TABLE    %s", strings.Join(b.Header, " | ")))
			for _, row := range b.Rows {
				lines = append(lines, "         "+strings.Join(row, " | "))
			}
		}
	}

	return lines
}
