package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/seed"
)

// newClearCmd creates the "clear" subcommand: empty every collection.
func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every record from every collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := seed.New(st, logger).ClearAll(); err != nil {
				return err
			}
			fmt.Println("all collections cleared")
			return nil
		},
	}
}
