package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/seed"
)

// newStatsCmd creates the "stats" subcommand: per-collection record
// counts.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-collection record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			return printStats(seed.New(st, logger))
		},
	}
}

// printStats renders per-collection counts in the selected output mode.
func printStats(seeder *seed.Seeder) error {
	stats, err := seeder.Stats()
	if err != nil {
		return err
	}
	if flags.jsonMode {
		return printJSON(stats)
	}
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-12s %d\n", name, stats[name])
	}
	return nil
}
