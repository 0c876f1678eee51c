package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdoc/quizdoc/internal/quiz"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample quiz JSON",
	Long:  "Emit the built-in example quiz, ready to edit or to pipe into generate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			fmt.Print(string(quiz.SampleJSON()))
			return nil
		}
		if err := os.WriteFile(out, quiz.SampleJSON(), 0o644); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
		fmt.Println("Sample written to", out)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringP("out", "o", "", "Write the sample to a file instead of stdout")
}
