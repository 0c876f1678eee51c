// Package quiz defines the quiz document data model and the schema
// checks applied to user-supplied JSON before a document is assembled.
package quiz

// RequiredKeys are the top-level keys every quiz object must carry,
// checked in this order.
var RequiredKeys = []string{"title", "subtitle", "questions", "solution_table"}

// OptionLetters are the four fixed answer slots of a question. Options
// are always addressed through this list, never through map iteration
// order.
var OptionLetters = []string{"A", "B", "C", "D"}

// Quiz is the root value describing one document's content. It is built
// fresh from user input on every generation request and never mutated
// after validation.
type Quiz struct {
	Title     string
	Subtitle  string
	Questions []Question
	Solutions []SolutionRow
}

// Question is a single multiple-choice question. Options holds exactly
// the four letters in OptionLetters after validation.
type Question struct {
	Text    string
	Options map[string]string
}

// SolutionRow is one entry of the answer key. Number is display-only
// and is not required to match the question's position; Answer is
// conventionally one of A-D but not enforced.
type SolutionRow struct {
	Number      string
	Answer      string
	Explanation string
}
