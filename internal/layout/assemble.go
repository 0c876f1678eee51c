package layout

import (
	"fmt"

	"github.com/quizdoc/quizdoc/internal/quiz"
)

// Vertical spacing, millimeters.
const (
	titleDrop   = 60.0 // pushes the title block toward page center
	sectionGap  = 2.0  // after a section heading
	questionGap = 1.5  // between question groups
)

var (
	solutionHeader    = []string{"#", "Answer", "Explanation"}
	solutionColWidths = []float64{15, 20, 130}
)

// Assemble maps a validated quiz to its block sequence. The recipe is
// fixed: title page, page break, numbered question list with options in
// constant A-D order, page break, solution table. Callers rely on this
// exact order for output compatibility.
func Assemble(q quiz.Quiz) []Block {
	blocks := []Block{
		Spacer{Height: titleDrop},
		TitleText{Text: q.Title},
		SubtitleText{Text: q.Subtitle},
		PageBreak{},
		SectionHeading{Text: "Questions"},
		Spacer{Height: sectionGap},
	}

	for i, question := range q.Questions {
		blocks = append(blocks, BodyParagraph{
			Text:  fmt.Sprintf("%d. %s", i+1, question.Text),
			Style: StyleQuestion,
		})
		for _, letter := range quiz.OptionLetters {
			blocks = append(blocks, BodyParagraph{
				Text:  fmt.Sprintf("%s) %s", letter, question.Options[letter]),
				Style: StyleOption,
			})
		}
		blocks = append(blocks, Spacer{Height: questionGap})
	}

	blocks = append(blocks,
		PageBreak{},
		SectionHeading{Text: "Solution Table"},
	)

	table := Table{
		Header:    solutionHeader,
		ColWidths: solutionColWidths,
	}
	for _, row := range q.Solutions {
		table.Rows = append(table.Rows, []string{row.Number, row.Answer, row.Explanation})
	}
	blocks = append(blocks, table)

	return blocks
}

// BuildDocument assembles the quiz and attaches the document metadata.
func BuildDocument(q quiz.Quiz) Document {
	title := q.Title
	if title == "" {
		title = DefaultTitle
	}
	return Document{
		Title:  title,
		Blocks: Assemble(q),
	}
}
