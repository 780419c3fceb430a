package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

var (
	setValues   []string
	hideNames   []string
	showNames   []string
	removeNames []string
)

var setCmd = &cobra.Command{
	Use:   "set <file.kicad_sch> <reference>",
	Short: "Update one or more properties on a component",
	Long:  "Update a component's property values, visibility, or remove properties outright. Value-only edits touch only that value's bytes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("expected exactly two arguments: file and reference")
		}
		path, reference := args[0], args[1]

		doc, err := sexpedit.Load(path)
		if err != nil {
			return err
		}
		root := doc.Root()
		version := kicadsch.DetectVersion(root)
		if version == kicadsch.VersionUnknown {
			version = kicadVersionFromHint(cfg.DefaultKicadVersionHint)
		}

		edits := map[string]kicadsch.PropertyEdit{}
		for _, kv := range setValues {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid --set %q, expected name=value", kv)
			}
			v := parts[1]
			e := edits[parts[0]]
			e.Value = &v
			edits[parts[0]] = e
		}
		falseVal, trueVal := false, true
		for _, name := range hideNames {
			e := edits[name]
			e.Visible = &falseVal
			edits[name] = e
		}
		for _, name := range showNames {
			e := edits[name]
			e.Visible = &trueVal
			edits[name] = e
		}
		for _, name := range removeNames {
			e := edits[name]
			e.Remove = true
			edits[name] = e
		}

		n, err := kicadsch.UpdateComponent(doc, root, reference, edits, version)
		if err != nil {
			return err
		}
		if err := doc.Commit(path); err != nil {
			return err
		}
		logger.WithField("reference", reference).WithField("properties", n).Info("updated component")
		fmt.Fprintf(cmd.OutOrStdout(), "%d propert(y/ies) updated on %s\n", n, reference)
		return nil
	},
}

func init() {
	setCmd.Flags().StringArrayVar(&setValues, "set", nil, "name=value pairs to assign")
	setCmd.Flags().StringArrayVar(&hideNames, "hide", nil, "property names to hide")
	setCmd.Flags().StringArrayVar(&showNames, "show", nil, "property names to show")
	setCmd.Flags().StringArrayVar(&removeNames, "remove", nil, "property names to delete")
	rootCmd.AddCommand(setCmd)
}
