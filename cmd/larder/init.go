package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInitCmd creates the "init" subcommand: create the data directory
// and apply the schema without writing any records.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the data directory and schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			info, err := st.Info()
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(info)
			}
			fmt.Printf("initialized %s (schema v%d, %d collections)\n",
				info.Name, info.Version, len(info.Collections))
			return nil
		},
	}
}
