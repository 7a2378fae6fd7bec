package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the larder CLI version.
const version = "0.2.0"

// newVersionCmd creates the "version" subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the larder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.jsonMode {
				return printJSON(map[string]string{"version": version})
			}
			fmt.Println("larder", version)
			return nil
		},
	}
}
