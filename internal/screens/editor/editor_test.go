package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdoc/quizdoc/internal/generate"
	"github.com/quizdoc/quizdoc/internal/quiz"
	"github.com/quizdoc/quizdoc/internal/render"
)

func newTestEditor() *EditorScreen {
	return New(generate.New(nil), nil)
}

func TestNew_BufferPreloadedWithSample(t *testing.T) {
	e := newTestEditor()
	assert.Equal(t, string(quiz.SampleJSON()), e.ta.Value())
}

func TestFileOpened_ReplacesBuffer(t *testing.T) {
	e := newTestEditor()
	content := []byte(`{"anything": "parseable"}`)

	s, _ := e.Update(fileOpenedMsg{Path: "x.json", Content: content})
	e = s.(*EditorScreen)

	assert.Equal(t, string(content), e.ta.Value())
	assert.Equal(t, statusInfo, e.kind)
}

func TestFileOpened_ErrorLeavesBufferUnchanged(t *testing.T) {
	e := newTestEditor()
	before := e.ta.Value()

	s, _ := e.Update(fileOpenedMsg{Path: "x.json", Err: errors.New("no such file")})
	e = s.(*EditorScreen)

	assert.Equal(t, before, e.ta.Value())
	assert.Equal(t, statusRenderErr, e.kind)
}

// The three failure modes must land in distinct status kinds.
func TestSetError_ClassifiesKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want statusKind
	}{
		{"parse", &quiz.ParseError{Err: errors.New("bad token")}, statusParseErr},
		{"schema", &quiz.SchemaError{Reason: "missing top-level key: title"}, statusSchemaErr},
		{"render", &render.WriteError{Path: "/x.pdf", Err: errors.New("permission denied")}, statusRenderErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			e.setError(tt.err)
			assert.Equal(t, tt.want, e.kind)
			assert.NotEmpty(t, e.status)
		})
	}
}

func TestGenerateDone_Success(t *testing.T) {
	e := newTestEditor()
	s, _ := e.Update(generateDoneMsg{Result: generate.Result{OutputPath: "/tmp/quiz.pdf"}})
	e = s.(*EditorScreen)

	assert.Equal(t, statusOK, e.kind)
	assert.Contains(t, e.status, "/tmp/quiz.pdf")
}

func TestGenerateRequest_RunsPipeline(t *testing.T) {
	e := newTestEditor()
	out := filepath.Join(t.TempDir(), "out.pdf")

	s, cmd := e.Update(generateRequestMsg{Path: out})
	e = s.(*EditorScreen)
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(generateDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, out, done.Result.OutputPath)
}

func TestGenerateRequest_SchemaErrorSurfaces(t *testing.T) {
	e := newTestEditor()
	e.ta.SetValue(`{"title": "only a title"}`)

	s, cmd := e.Update(generateRequestMsg{Path: filepath.Join(t.TempDir(), "x.pdf")})
	e = s.(*EditorScreen)
	require.NotNil(t, cmd)

	done := cmd().(generateDoneMsg)
	require.Error(t, done.Err)

	s, _ = e.Update(done)
	e = s.(*EditorScreen)
	assert.Equal(t, statusSchemaErr, e.kind)
}

func TestOpenFile_RejectsMalformedJSON(t *testing.T) {
	e := newTestEditor()
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, writeFile(path, "{not json"))

	msg := e.openFile(path).(fileOpenedMsg)
	require.Error(t, msg.Err)
	var perr *quiz.ParseError
	assert.ErrorAs(t, msg.Err, &perr)
}

func TestOpenFile_AcceptsInvalidSchema(t *testing.T) {
	// Schema validation happens on generate, not on load: any
	// well-formed JSON may enter the buffer.
	e := newTestEditor()
	path := filepath.Join(t.TempDir(), "wrong-shape.json")
	require.NoError(t, writeFile(path, `{"title": "no questions"}`))

	msg := e.openFile(path).(fileOpenedMsg)
	require.NoError(t, msg.Err)
	assert.Equal(t, `{"title": "no questions"}`, string(msg.Content))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
