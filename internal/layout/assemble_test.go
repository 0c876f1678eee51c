package layout

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdoc/quizdoc/internal/quiz"
)

func quizWithQuestions(n int) quiz.Quiz {
	q := quiz.Quiz{Title: "T", Subtitle: "S"}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			Text: fmt.Sprintf("question %d", i+1),
			Options: map[string]string{
				"A": "a", "B": "b", "C": "c", "D": "d",
			},
		})
	}
	return q
}

func bodyParagraphs(blocks []Block) []BodyParagraph {
	var out []BodyParagraph
	for _, b := range blocks {
		if p, ok := b.(BodyParagraph); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestAssemble_FixedPrefix(t *testing.T) {
	blocks := Assemble(quizWithQuestions(1))

	require.Greater(t, len(blocks), 6)
	assert.Equal(t, Spacer{Height: 60}, blocks[0])
	assert.Equal(t, TitleText{Text: "T"}, blocks[1])
	assert.Equal(t, SubtitleText{Text: "S"}, blocks[2])
	assert.Equal(t, PageBreak{}, blocks[3])
	assert.Equal(t, SectionHeading{Text: "Questions"}, blocks[4])
	assert.IsType(t, Spacer{}, blocks[5])
}

// Each question contributes exactly five body paragraphs: the numbered
// stem followed by the four options in constant A-D order.
func TestAssemble_QuestionGroups(t *testing.T) {
	const n = 7
	q := quizWithQuestions(n)
	paras := bodyParagraphs(Assemble(q))

	require.Len(t, paras, n*5)
	for i := 0; i < n; i++ {
		group := paras[i*5 : i*5+5]
		assert.Equal(t, fmt.Sprintf("%d. question %d", i+1, i+1), group[0].Text)
		assert.Equal(t, StyleQuestion, group[0].Style)
		for j, letter := range quiz.OptionLetters {
			assert.Equal(t, fmt.Sprintf("%s) %s", letter, q.Questions[i].Options[letter]), group[j+1].Text)
			assert.Equal(t, StyleOption, group[j+1].Style)
		}
	}
}

func TestAssemble_EmptySolutionTable(t *testing.T) {
	blocks := Assemble(quizWithQuestions(1))

	table, ok := blocks[len(blocks)-1].(Table)
	require.True(t, ok, "last block must be the solution table")
	assert.Equal(t, []string{"#", "Answer", "Explanation"}, table.Header)
	assert.Empty(t, table.Rows)
	assert.Equal(t, []float64{15, 20, 130}, table.ColWidths)
}

func TestAssemble_SolutionRowsInOrder(t *testing.T) {
	q := quizWithQuestions(1)
	q.Solutions = []quiz.SolutionRow{
		{Number: "10", Answer: "D", Explanation: "ten"},
		{Number: "2", Answer: "A", Explanation: "two"},
	}
	blocks := Assemble(q)

	table := blocks[len(blocks)-1].(Table)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"10", "D", "ten"}, table.Rows[0])
	assert.Equal(t, []string{"2", "A", "two"}, table.Rows[1])
}

// Round-trip property: the built-in sample (5 questions, 5 rows) yields
// exactly 2 page breaks and 25 question-related body paragraphs.
func TestAssemble_SampleCounts(t *testing.T) {
	blocks := Assemble(quiz.Sample())

	var pageBreaks int
	for _, b := range blocks {
		if _, ok := b.(PageBreak); ok {
			pageBreaks++
		}
	}
	assert.Equal(t, 2, pageBreaks)
	assert.Len(t, bodyParagraphs(blocks), 25)
}

func TestAssemble_Idempotent(t *testing.T) {
	q := quiz.Sample()
	first := Assemble(q)
	second := Assemble(q)
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestBuildDocument_TitleFallback(t *testing.T) {
	q := quizWithQuestions(1)
	assert.Equal(t, "T", BuildDocument(q).Title)

	q.Title = ""
	assert.Equal(t, DefaultTitle, BuildDocument(q).Title)
}
