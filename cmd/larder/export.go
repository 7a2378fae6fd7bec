package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newExportCmd creates the "export" subcommand: write a full snapshot
// of every collection to a JSON file.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full snapshot to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Export()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding snapshot: %w", err)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}

			var total int
			for _, records := range snap {
				total += len(records)
			}
			fmt.Printf("exported %d records from %d collections to %s\n",
				total, len(snap), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "larder-export.json", "output file path")
	return cmd
}
