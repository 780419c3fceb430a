package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/sexpedit"
	"github.com/kicadtools/sexpedit/sexprtest"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file.kicad_sch>",
	Short: "Print the parsed span tree, for diagnosing a file sexpedit won't parse as expected",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the schematic path")
		}
		doc, err := sexpedit.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), sexprtest.DumpTree(doc.Root()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
