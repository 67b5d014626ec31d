package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the saved performance profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prof := profile.Load(st)
		if len(prof.Subjects) == 0 {
			fmt.Println("No quiz history yet. Play a quiz first!")
			return nil
		}

		subjects := make([]string, 0, len(prof.Subjects))
		for s := range prof.Subjects {
			subjects = append(subjects, s)
		}
		sort.Strings(subjects)

		for _, s := range subjects {
			rec := prof.Subjects[s]
			fmt.Printf("%s — %d/%d correct (%d%%)  %s\n",
				s, rec.Totals.Correct, rec.Totals.Total, rec.Totals.Accuracy(),
				accuracyBar(rec.Totals.Accuracy()))

			cats := make([]string, 0, len(rec.Categories))
			for c := range rec.Categories {
				cats = append(cats, c)
			}
			sort.Strings(cats)
			for _, c := range cats {
				cs := rec.Categories[c]
				fmt.Printf("  %-14s %d/%d (%d%%)\n", c, cs.Correct, cs.Total, cs.Accuracy())
			}
			fmt.Println()
		}

		fmt.Printf("Overall: %d/%d correct (%d%%)\n",
			prof.Overall.Correct, prof.Overall.Total, prof.Overall.Accuracy)
		return nil
	},
}

// accuracyBar renders a 20-cell bar for a 0-100 accuracy value.
func accuracyBar(pct int) string {
	filled := pct / 5
	if filled > 20 {
		filled = 20
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}
