// Package generate runs the full pipeline: parse -> validate ->
// assemble -> render -> record. The TUI and the CLI subcommands both go
// through it so the two surfaces behave identically.
package generate

import (
	"context"

	"github.com/quizdoc/quizdoc/internal/history"
	"github.com/quizdoc/quizdoc/internal/layout"
	"github.com/quizdoc/quizdoc/internal/quiz"
	"github.com/quizdoc/quizdoc/internal/render"
)

// Options configure a single generation request.
type Options struct {
	// Strict layers the JSON Schema checks on top of the shallow
	// validator.
	Strict bool
}

// Result describes a completed generation.
type Result struct {
	Quiz       quiz.Quiz
	Blocks     []layout.Block
	OutputPath string
}

// Service wires the pipeline together. History may be nil; recording is
// best-effort and never fails a generation.
type Service struct {
	History *history.Store
}

// New creates a Service.
func New(h *history.Store) *Service {
	return &Service{History: h}
}

// Check parses and validates raw input without producing output.
// Returns the typed quiz on success; the error is a *quiz.ParseError or
// *quiz.SchemaError otherwise.
func (s *Service) Check(raw []byte, opts Options) (quiz.Quiz, error) {
	data, err := quiz.Parse(raw)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if err := quiz.Validate(data); err != nil {
		return quiz.Quiz{}, err
	}
	if opts.Strict {
		if err := quiz.ValidateStrict(data); err != nil {
			return quiz.Quiz{}, err
		}
	}
	return quiz.FromMap(data), nil
}

// Generate validates raw input, writes the PDF to outPath, and records
// the generation. Errors keep their kind: parse and schema failures
// happen before any file is touched, and render failures leave no
// partial output.
func (s *Service) Generate(ctx context.Context, raw []byte, outPath string, opts Options) (Result, error) {
	q, err := s.Check(raw, opts)
	if err != nil {
		return Result{}, err
	}

	doc := layout.BuildDocument(q)
	if err := render.WritePDF(outPath, doc); err != nil {
		return Result{}, err
	}

	if s.History != nil {
		// Best-effort: a failed log entry must not fail a generation
		// whose PDF is already on disk.
		_ = s.History.Record(ctx, history.Entry{
			Title:      doc.Title,
			Questions:  len(q.Questions),
			Solutions:  len(q.Solutions),
			OutputPath: outPath,
		})
	}

	return Result{Quiz: q, Blocks: doc.Blocks, OutputPath: outPath}, nil
}
