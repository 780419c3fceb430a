package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

var infoFields []string

var infoCmd = &cobra.Command{
	Use:   "set-info <file.kicad_sch>",
	Short: "Update title block fields (title, rev, date, company, comment1..N)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the schematic path")
		}
		path := args[0]

		fields := map[string]string{}
		for _, kv := range infoFields {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid --field %q, expected name=value", kv)
			}
			fields[parts[0]] = parts[1]
		}

		doc, err := sexpedit.Load(path)
		if err != nil {
			return err
		}
		n, err := kicadsch.UpdateSchematicInfo(doc, doc.Root(), fields)
		if err != nil {
			return err
		}
		if err := doc.Commit(path); err != nil {
			return err
		}
		logger.WithField("fields", n).Info("updated title block")
		fmt.Fprintf(cmd.OutOrStdout(), "%d field(s) updated\n", n)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringArrayVar(&infoFields, "field", nil, "name=value title block field to set, e.g. title=\"New Title\"")
	rootCmd.AddCommand(infoCmd)
}
