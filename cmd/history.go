package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent PDF generations",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	hist, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer hist.Close()

	entries, err := hist.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No generations recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40s %2dq %2ds  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Title, e.Questions, e.Solutions, e.OutputPath)
	}
	return nil
}
