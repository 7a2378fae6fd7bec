package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/seed"
)

// newSeedCmd creates the "seed" subcommand: populate an empty store
// with demo data. Already-seeded stores are left untouched.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			seeder := seed.New(st, logger)
			seeded, err := seeder.CheckSeeded()
			if err != nil {
				return err
			}
			if seeded {
				fmt.Println("store already seeded; use reseed to regenerate")
				return nil
			}
			if err := seeder.SeedAll(); err != nil {
				return err
			}
			return printStats(seeder)
		},
	}
}
