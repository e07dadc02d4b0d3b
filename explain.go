package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"znkr.io/distle/edit"
	"znkr.io/distle/report"
)

var explainCmd = &cobra.Command{
	Use:   "explain FROM TO",
	Short: "Show the edit sequence that turns one word into another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := args[0], args[1]
		w := cmd.OutOrStdout()

		t := edit.NewTable(from, to)
		fb := edit.ReconstructTable(t, from, to).String()
		if fb == "" {
			fb = "-"
		}
		fmt.Fprintf(w, "distance  %d\n", t.Distance())
		fmt.Fprintf(w, "sequence  %s\n", fb)

		if show, _ := cmd.Flags().GetBool("table"); show {
			fmt.Fprintf(w, "\n%s", t)
		}
		fmt.Fprintf(w, "\n%s", report.Alignment(from, to))
		return nil
	},
}

func init() {
	explainCmd.Flags().Bool("table", false, "print the distance table")
}
