package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

var renameCmd = &cobra.Command{
	Use:   "rename-net <file.kicad_sch> <old> <new>",
	Short: "Rename a net across all its label/global_label/hierarchical_label occurrences",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			_ = cmd.Help()
			return errors.New("expected exactly three arguments: file, old name, new name")
		}
		path, old, newName := args[0], args[1], args[2]

		doc, err := sexpedit.Load(path)
		if err != nil {
			return err
		}
		n, err := kicadsch.RenameNet(doc, doc.Root(), old, newName)
		if err != nil {
			return err
		}
		if err := doc.Commit(path); err != nil {
			return err
		}
		logger.WithField("old", old).WithField("new", newName).WithField("count", n).Info("renamed net")
		fmt.Fprintf(cmd.OutOrStdout(), "renamed %d occurrence(s)\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
