package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// newImportCmd creates the "import" subcommand: restore collections
// from a snapshot file produced by export.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore collections from a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			var snap types.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("decoding snapshot: %w", err)
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Import(snap); err != nil {
				return err
			}

			var total int
			for _, records := range snap {
				total += len(records)
			}
			fmt.Printf("imported %d records across %d collections\n", total, len(snap))
			return nil
		},
	}
}
