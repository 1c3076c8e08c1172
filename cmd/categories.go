package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rudram/trivl/internal/opentdb"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the question categories and their IDs",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCATEGORY")
		fmt.Fprintln(w, "0\tAny Category")
		for _, c := range opentdb.Categories {
			fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Name)
		}
		_ = w.Flush()
	},
}
