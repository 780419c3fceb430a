package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

var listCmd = &cobra.Command{
	Use:   "list <file.kicad_sch>",
	Short: "List every component's Reference, Value, and Footprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the schematic path")
		}
		doc, err := sexpedit.Load(args[0])
		if err != nil {
			return err
		}
		components := kicadsch.ListComponents(doc.Root())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REFERENCE\tVALUE\tFOOTPRINT")
		for _, c := range components {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Reference, c.Value, c.Footprint)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
