package cmd

import (
	"github.com/abhisek/deltabase/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deltabase",
	Short: "Chapter-wise quiz player for JEE/NEET prep",
	Long:  "DeltaBase — terminal quiz player over chapter-wise question banks for physics, chemistry, mathematics and biology.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DELTABASE_DB env var)")
	rootCmd.PersistentFlags().String("data", ".", "Question data root: a directory or an http(s) base URL")
	rootCmd.PersistentFlags().String("subject", "physics", "Subject (physics, chemistry, mathematics, biology)")

	addQuizFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DELTABASE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
