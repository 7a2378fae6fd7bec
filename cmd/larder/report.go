package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/seed"
)

// newReportCmd creates the "report" subcommand: derive the business
// projections from current store contents.
func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Derive sales, growth, task, and product reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			data, err := seed.New(st, logger).BusinessData()
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(data)
			}

			fmt.Println("monthly sales")
			for _, m := range data.Sales {
				fmt.Printf("  %s  %10.2f  (%d orders)\n", m.Month, m.Revenue, m.Orders)
			}
			fmt.Println("customer growth")
			for _, g := range data.CustomerGrowth {
				fmt.Printf("  %s  +%d (total %d)\n", g.Month, g.NewCustomers, g.Total)
			}
			fmt.Printf("task completion: %.0f%%\n", data.TaskCompletion.CompletionRate*100)
			for status, n := range data.TaskCompletion.ByStatus {
				fmt.Printf("  %-12s %d\n", status, n)
			}
			fmt.Println("top products")
			limit := 10
			if len(data.ProductPerformance) < limit {
				limit = len(data.ProductPerformance)
			}
			for _, p := range data.ProductPerformance[:limit] {
				fmt.Printf("  %-28s %10.2f  (%d sold)\n", p.Name, p.Revenue, p.Quantity)
			}
			return nil
		},
	}
}
