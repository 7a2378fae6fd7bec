package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/seed"
)

// newReseedCmd creates the "reseed" subcommand: wipe every collection
// and regenerate the demo dataset.
func newReseedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reseed",
		Short: "Wipe and regenerate the demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			seeder := seed.New(st, logger)
			if err := seeder.Reseed(); err != nil {
				return err
			}
			return printStats(seeder)
		},
	}
}
