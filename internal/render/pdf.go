// Package render writes an assembled document to a PDF file. It is a
// thin adapter over go-pdf/fpdf; all document structure decisions are
// made upstream in the layout package.
package render

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/quizdoc/quizdoc/internal/layout"
)

// WriteError indicates rendering or writing the output file failed.
// The partial output file, if any, has already been removed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write PDF %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Font sizes (points) and line heights (mm) per block kind.
const (
	titleFontSize    = 18.0
	titleLineHeight  = 9.0
	subtitleFontSize = 12.0
	headingFontSize  = 14.0
	questionFontSize = 11.0
	optionFontSize   = 10.5
	bodyLineHeight   = 5.0
	optionIndent     = 4.5 // mm
)

const fontFamily = "Helvetica"

// WritePDF renders the document to a PDF file at path. On any failure
// the file is removed so a half-written PDF never looks like a
// successful generation.
func WritePDF(path string, doc layout.Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(true, layout.Margin)
	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	// Core fonts are cp1252; translate the UTF-8 input.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, block := range doc.Blocks {
		renderBlock(pdf, tr, block)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		_ = os.Remove(path)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func renderBlock(pdf *fpdf.Fpdf, tr func(string) string, block layout.Block) {
	switch b := block.(type) {
	case layout.Spacer:
		pdf.Ln(b.Height)

	case layout.PageBreak:
		pdf.AddPage()

	case layout.TitleText:
		pdf.SetFont(fontFamily, "B", titleFontSize)
		pdf.MultiCell(0, titleLineHeight, tr(b.Text), "", "C", false)
		pdf.Ln(4)

	case layout.SubtitleText:
		pdf.SetFont(fontFamily, "", subtitleFontSize)
		pdf.SetTextColor(128, 128, 128)
		pdf.MultiCell(0, 6, tr(b.Text), "", "C", false)
		pdf.SetTextColor(0, 0, 0)

	case layout.SectionHeading:
		pdf.SetFont(fontFamily, "B", headingFontSize)
		pdf.MultiCell(0, 7, tr(b.Text), "", "L", false)
		pdf.Ln(2)

	case layout.BodyParagraph:
		switch b.Style {
		case layout.StyleQuestion:
			pdf.Ln(2)
			pdf.SetFont(fontFamily, "", questionFontSize)
			pdf.MultiCell(0, bodyLineHeight, tr(b.Text), "", "L", false)
		case layout.StyleOption:
			pdf.SetFont(fontFamily, "", optionFontSize)
			pdf.SetX(layout.Margin + optionIndent)
			pdf.MultiCell(0, bodyLineHeight, tr(b.Text), "", "L", false)
		}

	case layout.Table:
		renderTable(pdf, tr, b)
	}
}

// renderTable draws the solution table: shaded, centered header row and
// grid lines on every cell, rows growing to fit wrapped text.
func renderTable(pdf *fpdf.Fpdf, tr func(string) string, table layout.Table) {
	pdf.SetLineWidth(layout.TableGridWidth)
	pdf.SetDrawColor(layout.TableGridColor[0], layout.TableGridColor[1], layout.TableGridColor[2])
	pdf.SetFillColor(layout.TableHeaderFill[0], layout.TableHeaderFill[1], layout.TableHeaderFill[2])
	pdf.SetFont(fontFamily, "", layout.TableFontSize)

	tableRow(pdf, tr, table.Header, table.ColWidths, true)
	for _, row := range table.Rows {
		tableRow(pdf, tr, row, table.ColWidths, false)
	}
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, cells []string, widths []float64, header bool) {
	const lineHeight = 4.5 // mm, for 10pt text
	pad := layout.TableCellPadding

	// Row height follows the tallest wrapped cell.
	maxLines := 1
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		lines := pdf.SplitText(tr(cell), widths[i]-2*pad)
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	height := float64(maxLines)*lineHeight + 2*pad

	if pdf.GetY()+height > layout.PageHeight-layout.Margin {
		pdf.AddPage()
	}

	align := "L"
	rectStyle := "D"
	if header {
		align = "C"
		rectStyle = "FD"
	}

	x := layout.Margin
	y := pdf.GetY()
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		pdf.Rect(x, y, widths[i], height, rectStyle)
		// Content anchored to the cell's top edge.
		pdf.SetXY(x+pad, y+pad)
		pdf.MultiCell(widths[i]-2*pad, lineHeight, tr(cell), "", align, false)
		x += widths[i]
	}
	pdf.SetXY(layout.Margin, y+height)
}
