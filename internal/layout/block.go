// Package layout turns a validated quiz into the ordered block sequence
// the PDF renderer consumes. It is pure data transformation: no I/O, no
// error paths, same input always produces the same blocks.
package layout

// Block is one abstract unit of document structure. The renderer walks
// the sequence in order and never reorders or filters it.
type Block interface {
	isBlock()
}

// TitleText is the document title on the title page.
type TitleText struct {
	Text string
}

// SubtitleText is the dimmed line under the title.
type SubtitleText struct {
	Text string
}

// SectionHeading starts a named section ("Questions", "Solution Table").
type SectionHeading struct {
	Text string
}

// ParagraphStyle selects the body text treatment.
type ParagraphStyle int

const (
	// StyleQuestion is a question stem: "1. Which OSI layer ...".
	StyleQuestion ParagraphStyle = iota
	// StyleOption is an indented answer option: "A) Physical".
	StyleOption
)

// BodyParagraph is a run of body text.
type BodyParagraph struct {
	Text  string
	Style ParagraphStyle
}

// Spacer is fixed vertical whitespace, in millimeters.
type Spacer struct {
	Height float64
}

// PageBreak forces the next block onto a new page.
type PageBreak struct{}

// Table is the solution table: a header row plus one row per solution
// entry. ColWidths are millimeters; presentation constants (grid,
// header shading, padding, font size) live in the renderer's table
// style below.
type Table struct {
	Header    []string
	Rows      [][]string
	ColWidths []float64
}

func (TitleText) isBlock()      {}
func (SubtitleText) isBlock()   {}
func (SectionHeading) isBlock() {}
func (BodyParagraph) isBlock()  {}
func (Spacer) isBlock()         {}
func (PageBreak) isBlock()      {}
func (Table) isBlock()          {}

// Document is the block sequence plus the fixed page metadata handed to
// the renderer.
type Document struct {
	// Title is the PDF's declared title metadata.
	Title  string
	Blocks []Block
}

// Page geometry, millimeters. Presentation defaults, not data-derived.
const (
	PageWidth  = 210.0 // A4 portrait
	PageHeight = 297.0
	Margin     = 20.0
)

// Table presentation defaults.
const (
	TableGridWidth   = 0.2 // mm
	TableFontSize    = 10.0
	TableCellPadding = 2.0 // mm
)

// Table colors (RGB).
var (
	TableGridColor  = [3]int{128, 128, 128}
	TableHeaderFill = [3]int{211, 211, 211}
)

// DefaultTitle is the PDF title metadata fallback when the quiz title
// is empty.
const DefaultTitle = "Quiz"
