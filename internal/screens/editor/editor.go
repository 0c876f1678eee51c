// Package editor is the main screen: a JSON buffer the user edits
// directly, plus the actions that turn it into a PDF.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdoc/quizdoc/internal/generate"
	"github.com/quizdoc/quizdoc/internal/history"
	"github.com/quizdoc/quizdoc/internal/layout"
	"github.com/quizdoc/quizdoc/internal/quiz"
	"github.com/quizdoc/quizdoc/internal/render"
	"github.com/quizdoc/quizdoc/internal/router"
	"github.com/quizdoc/quizdoc/internal/screen"
	"github.com/quizdoc/quizdoc/internal/screens/pathprompt"
	"github.com/quizdoc/quizdoc/internal/screens/preview"
	"github.com/quizdoc/quizdoc/internal/screens/recent"
	uilayout "github.com/quizdoc/quizdoc/internal/ui/layout"
	"github.com/quizdoc/quizdoc/internal/ui/theme"
)

// statusKind distinguishes the three error kinds plus neutral states in
// the status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusOK
	statusParseErr
	statusSchemaErr
	statusRenderErr
)

// EditorScreen holds the editable JSON buffer and dispatches the three
// user actions: load sample, open file, generate.
type EditorScreen struct {
	svc    *generate.Service
	hist   *history.Store
	ta     textarea.Model
	strict bool

	status string
	kind   statusKind
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates the editor with the sample quiz preloaded, matching the
// tool's startup behavior. hist may be nil.
func New(svc *generate.Service, hist *history.Store) *EditorScreen {
	ta := textarea.New()
	ta.SetValue(string(quiz.SampleJSON()))
	ta.Focus()

	return &EditorScreen{
		svc:  svc,
		hist: hist,
		ta:   ta,
	}
}

func (e *EditorScreen) Title() string { return "Editor" }

func (e *EditorScreen) Init() tea.Cmd {
	return e.ta.Focus()
}

func (e *EditorScreen) KeyHints() []uilayout.KeyHint {
	return []uilayout.KeyHint{
		{Key: "^G", Description: "Generate PDF"},
		{Key: "^O", Description: "Open"},
		{Key: "^L", Description: "Sample"},
		{Key: "^P", Description: "Preview"},
		{Key: "^R", Description: "Recent"},
		{Key: "^T", Description: "Strict"},
	}
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+l":
			e.ta.SetValue(string(quiz.SampleJSON()))
			e.setStatus(statusInfo, "Sample quiz loaded.")
			return e, nil

		case "ctrl+o":
			return e, pushPrompt("Open JSON file", "path/to/quiz.json", "", e.openFile)

		case "ctrl+g":
			// Validate before asking for a path so schema problems
			// surface immediately.
			if _, err := e.svc.Check([]byte(e.ta.Value()), e.options()); err != nil {
				e.setError(err)
				return e, nil
			}
			return e, pushPrompt("Save PDF as", "path/to/quiz.pdf", "quiz.pdf", func(path string) tea.Msg {
				return generateRequestMsg{Path: path}
			})

		case "ctrl+p":
			q, err := e.svc.Check([]byte(e.ta.Value()), e.options())
			if err != nil {
				e.setError(err)
				return e, nil
			}
			doc := layout.BuildDocument(q)
			return e, func() tea.Msg {
				return router.PushScreenMsg{Screen: preview.New(doc)}
			}

		case "ctrl+r":
			if e.hist == nil {
				e.setStatus(statusInfo, "History is unavailable.")
				return e, nil
			}
			hist := e.hist
			return e, func() tea.Msg {
				return router.PushScreenMsg{Screen: recent.New(hist)}
			}

		case "ctrl+t":
			e.strict = !e.strict
			if e.strict {
				e.setStatus(statusInfo, "Strict validation on.")
			} else {
				e.setStatus(statusInfo, "Strict validation off.")
			}
			return e, nil
		}

	case fileOpenedMsg:
		if msg.Err != nil {
			e.setError(msg.Err)
			return e, nil
		}
		e.ta.SetValue(string(msg.Content))
		e.setStatus(statusInfo, fmt.Sprintf("Opened %s.", msg.Path))
		return e, nil

	case generateRequestMsg:
		e.setStatus(statusInfo, "Generating...")
		raw := []byte(e.ta.Value())
		opts := e.options()
		svc := e.svc
		return e, func() tea.Msg {
			res, err := svc.Generate(context.Background(), raw, msg.Path, opts)
			return generateDoneMsg{Result: res, Err: err}
		}

	case generateDoneMsg:
		if msg.Err != nil {
			e.setError(msg.Err)
			return e, nil
		}
		e.setStatus(statusOK, fmt.Sprintf("PDF saved: %s", msg.Result.OutputPath))
		return e, nil
	}

	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return e, cmd
}

func (e *EditorScreen) View(width, height int) string {
	statusLine := e.renderStatus(width)
	taHeight := height - lipgloss.Height(statusLine) - 1
	if taHeight < 1 {
		taHeight = 1
	}
	e.ta.SetWidth(width - 2)
	e.ta.SetHeight(taHeight)

	return e.ta.View() + "\n" + statusLine
}

// pushPrompt pushes a path prompt screen whose submit result is routed
// back to this screen after the prompt pops itself.
func pushPrompt(title, placeholder, initial string, onSubmit func(string) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: pathprompt.New(title, placeholder, initial, onSubmit)}
	}
}

// options returns the generation options for the current editor state.
func (e *EditorScreen) options() generate.Options {
	return generate.Options{Strict: e.strict}
}

// openFile reads and parse-checks a file. Schema validation happens on
// generate, not on load, so any well-formed JSON may enter the buffer.
func (e *EditorScreen) openFile(path string) tea.Msg {
	content, err := os.ReadFile(path)
	if err != nil {
		return fileOpenedMsg{Path: path, Err: err}
	}
	var v any
	if err := json.Unmarshal(content, &v); err != nil {
		return fileOpenedMsg{Path: path, Err: &quiz.ParseError{Err: err}}
	}
	return fileOpenedMsg{Path: path, Content: content}
}

// setError classifies err into one of the three error kinds and shows
// it in the status line. The buffer is never touched.
func (e *EditorScreen) setError(err error) {
	var perr *quiz.ParseError
	var serr *quiz.SchemaError
	var werr *render.WriteError
	switch {
	case errors.As(err, &perr):
		e.setStatus(statusParseErr, fmt.Sprintf("JSON error: %v", perr.Err))
	case errors.As(err, &serr):
		e.setStatus(statusSchemaErr, fmt.Sprintf("Schema error: %s", serr.Reason))
	case errors.As(err, &werr):
		e.setStatus(statusRenderErr, fmt.Sprintf("Write error: %v", werr.Err))
	default:
		e.setStatus(statusRenderErr, err.Error())
	}
}

func (e *EditorScreen) setStatus(kind statusKind, msg string) {
	e.kind = kind
	e.status = msg
}

func (e *EditorScreen) renderStatus(width int) string {
	var style lipgloss.Style
	switch e.kind {
	case statusOK:
		style = theme.StatusOK
	case statusParseErr, statusSchemaErr, statusRenderErr:
		style = theme.StatusError
	case statusInfo:
		style = theme.StatusInfo
	default:
		style = theme.Hint
	}

	text := e.status
	if text == "" {
		text = "Edit the quiz JSON, then press ^G to generate a PDF."
		style = theme.Hint
	}
	if e.strict {
		text += "  [strict]"
	}

	return style.MaxWidth(width).Render(" " + text)
}
