package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/internal/editplan"
)

var planCmd = &cobra.Command{
	Use:   "apply-plan <plan.yaml>",
	Short: "Apply a batch of component/net/title-block edits across many files",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the plan file")
		}
		plan, err := editplan.Load(resolvePlanPath(args[0]))
		if err != nil {
			return err
		}
		results, err := editplan.Apply(plan, logger)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d component(s), %d rename(s), %d info field(s)\n",
				r.Path, r.ComponentsAffected, r.LabelsRenamed, r.SchematicFieldsAffected)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
