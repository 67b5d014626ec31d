package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/deltabase/internal/profile"
	"github.com/abhisek/deltabase/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the performance profile (and optionally cached datasets)",
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

		if err := profile.Reset(st); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Println("Profile cleared.")

		clearCache, _ := cmd.Flags().GetBool("cache")
		if !clearCache {
			return nil
		}

		keys, err := st.Keys("db:")
		if err != nil {
			return fmt.Errorf("list cache keys: %w", err)
		}
		n := 0
		for _, k := range keys {
			// cache keys are db:{subject}:{slug}; the profile record has
			// no second colon and was already removed above
			if !strings.Contains(k[len("db:"):], ":") {
				continue
			}
			if err := st.Remove(k); err != nil {
				return fmt.Errorf("remove %s: %w", k, err)
			}
			n++
		}
		fmt.Printf("Dropped %d cached dataset(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("cache", false, "Also drop cached chapter datasets")
}
