package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

var getCmd = &cobra.Command{
	Use:   "get <file.kicad_sch> <reference>",
	Short: "Show every property of one component, with visibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("expected exactly two arguments: file and reference")
		}
		doc, err := sexpedit.Load(args[0])
		if err != nil {
			return err
		}
		detail, err := kicadsch.GetComponent(doc.Root(), args[1])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVALUE\tVISIBLE")
		for _, p := range detail.Properties {
			fmt.Fprintf(w, "%s\t%s\t%v\n", p.Name, p.Value, p.Visible)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
