package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdoc/quizdoc/internal/app"
	"github.com/quizdoc/quizdoc/internal/generate"
	"github.com/quizdoc/quizdoc/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "quizdoc",
	Short: "Turn quiz JSON into printable PDFs",
	Long:  "Quizdoc — terminal tool that converts a quiz description (title, questions, answer key) into a paginated PDF.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the history database file (overrides QUIZDOC_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp opens the history store, builds the pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	hist, err := openHistory(cmd)
	if err != nil {
		// A broken history store must not keep the editor from working.
		fmt.Fprintln(os.Stderr, "History unavailable:", err)
	} else {
		defer hist.Close()
	}

	return app.Run(app.Options{
		Service: generate.New(hist),
		History: hist,
	})
}

// resolveDBPath returns the history database path using --db flag
// (highest priority), then QUIZDOC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultPath()
}

// openHistory opens the generation log. Returns a nil store with an
// error when it cannot be opened; callers treat that as non-fatal.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	hist, err := history.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return hist, nil
}
