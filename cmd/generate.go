package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdoc/quizdoc/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF from quiz JSON without the TUI",
	Long: `Read quiz JSON from a file (or stdin), validate it, and write the PDF.

Useful for scripting and for regenerating a document without opening the editor.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("in", "i", "-", "Input JSON file (- for stdin)")
	generateCmd.Flags().StringP("out", "o", "", "Output PDF path (required)")
	generateCmd.Flags().Bool("strict", false, "Apply strict schema validation")
	_ = generateCmd.MarkFlagRequired("out")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	strict, _ := cmd.Flags().GetBool("strict")

	raw, err := readInput(in)
	if err != nil {
		return err
	}

	hist, err := openHistory(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
	} else {
		defer hist.Close()
	}

	svc := generate.New(hist)
	res, err := svc.Generate(cmd.Context(), raw, out, generate.Options{Strict: strict})
	if err != nil {
		return err
	}

	fmt.Printf("PDF saved: %s (%d questions, %d solution rows)\n",
		res.OutputPath, len(res.Quiz.Questions), len(res.Quiz.Solutions))
	return nil
}

// readInput reads the whole input, from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return raw, nil
}
