package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the "info" subcommand: store introspection.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show database name, schema version, and totals",
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
			fmt.Printf("database:    %s\n", info.Name)
			fmt.Printf("schema:      v%d\n", info.Version)
			fmt.Printf("collections: %s\n", strings.Join(info.Collections, ", "))
			fmt.Printf("records:     %d\n", info.Records)
			return nil
		},
	}
}
