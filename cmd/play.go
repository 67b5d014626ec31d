package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/deltabase/internal/app"
	"github.com/abhisek/deltabase/internal/fetch"
	"github.com/abhisek/deltabase/internal/picker"
	"github.com/abhisek/deltabase/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func init() {
	addQuizFlags(playCmd)
}

// addQuizFlags registers the session flags shared by the root and play
// commands.
func addQuizFlags(cmd *cobra.Command) {
	cmd.Flags().String("chapter", "", "Chapter slug (skips the chapter list)")
	cmd.Flags().String("difficulty", "", "Difficulty tier or \"mixed\"")
	cmd.Flags().Int("count", 0, "Number of questions")
	cmd.Flags().Int("minutes", 0, "Countdown in minutes (0 = no timer)")
}

// newFetcher picks the transport from the data root: http(s) URLs hit
// the network, anything else is a local directory.
func newFetcher(dataRoot string) fetch.Fetcher {
	if strings.HasPrefix(dataRoot, "http://") || strings.HasPrefix(dataRoot, "https://") {
		return fetch.NewHTTPFetcher(dataRoot)
	}
	return &fetch.FileFetcher{Dir: dataRoot}
}

// runQuiz opens the store, builds the cached dataset pipeline, and
// launches the TUI.
func runQuiz(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	dataRoot, _ := cmd.Flags().GetString("data")
	subject, _ := cmd.Flags().GetString("subject")
	chapter, _ := cmd.Flags().GetString("chapter")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	minutes, _ := cmd.Flags().GetInt("minutes")

	// Bad flag combinations fail here rather than inside the TUI.
	if difficulty != "" && count > 0 {
		if err := picker.ValidateCount(difficulty, count); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		KV:         st,
		Cache:      fetch.NewCache(st, newFetcher(dataRoot)),
		Subject:    subject,
		Chapter:    chapter,
		Difficulty: difficulty,
		Count:      count,
		Minutes:    minutes,
	})
}
