package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/deltabase/internal/bank"
	"github.com/abhisek/deltabase/internal/fetch"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Inspect a chapter's dataset without playing (no database)",
	Long: `Fetch, lint, and normalize one chapter's question bank and print a report.

This is a stateless developer tool — nothing is cached and no profile is
touched. Useful for checking a dataset before publishing it.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("chapter", "", "Chapter slug (required)")
	_ = previewCmd.MarkFlagRequired("chapter")
}

func runPreview(cmd *cobra.Command, args []string) error {
	dataRoot, _ := cmd.Flags().GetString("data")
	subject, _ := cmd.Flags().GetString("subject")
	chapter, _ := cmd.Flags().GetString("chapter")

	fetcher := newFetcher(dataRoot)
	path := fetch.DatasetPath(subject, chapter)

	raw, err := fetcher.Fetch(context.Background(), path)
	if err != nil {
		return err
	}
	v, err := fetch.Parse(path, raw)
	if err != nil {
		return err
	}

	findings, err := bank.Lint(v)
	if err != nil {
		return fmt.Errorf("lint dataset: %w", err)
	}

	b := bank.Normalize(v)

	fmt.Printf("%s / %s — %d questions after normalization\n\n", subject, chapter, b.Count())

	for _, tier := range bank.Tiers {
		qs := b[tier]
		if len(qs) == 0 {
			continue
		}
		valid := 0
		byCategory := map[bank.Category]int{}
		for _, q := range qs {
			if q.Valid() {
				valid++
			}
			byCategory[q.Type]++
		}
		fmt.Printf("  %-10s %3d questions (%d playable)\n", tier, len(qs), valid)
		cats := make([]string, 0, len(byCategory))
		for c := range byCategory {
			cats = append(cats, string(c))
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Printf("             %-14s %d\n", c, byCategory[bank.Category(c)])
		}
	}

	if len(findings) > 0 {
		fmt.Printf("\n%d lint finding(s):\n", len(findings))
		for _, f := range findings {
			fmt.Println("  -", f)
		}
	} else {
		fmt.Println("\nNo lint findings.")
	}
	return nil
}
