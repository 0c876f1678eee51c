package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdoc/quizdoc/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check quiz JSON against the expected schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringP("in", "i", "-", "Input JSON file (- for stdin)")
	validateCmd.Flags().Bool("strict", false, "Apply strict schema validation")
}

func runValidate(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	strict, _ := cmd.Flags().GetBool("strict")

	raw, err := readInput(in)
	if err != nil {
		return err
	}

	data, err := quiz.Parse(raw)
	if err != nil {
		return err
	}
	if err := quiz.Validate(data); err != nil {
		return err
	}
	if strict {
		if err := quiz.ValidateStrict(data); err != nil {
			return err
		}
	}

	q := quiz.FromMap(data)
	fmt.Printf("valid: %d questions, %d solution rows\n", len(q.Questions), len(q.Solutions))
	return nil
}
