package editor

import "github.com/quizdoc/quizdoc/internal/generate"

// fileOpenedMsg is sent after an open-file prompt resolves. Content is
// nil when reading or parsing failed; the buffer is left untouched.
type fileOpenedMsg struct {
	Path    string
	Content []byte
	Err     error
}

// generateRequestMsg is sent when the user has chosen an output path.
type generateRequestMsg struct {
	Path string
}

// generateDoneMsg is sent when a generation attempt finishes.
type generateDoneMsg struct {
	Result generate.Result
	Err    error
}
