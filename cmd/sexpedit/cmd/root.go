package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sexpedit",
		Short:        "sexpedit",
		SilenceUsage: true,
		Long:         `Surgical editor for KiCad .kicad_sch schematic files. Edits targeted values while leaving every untouched byte identical.`,
	}

	verbose bool
	logger  logrus.FieldLogger
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	log := logrus.New()
	logger = log
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if wd, err := os.Getwd(); err == nil {
			if loaded, err := LoadConfig(wd); err == nil {
				cfg = loaded
			} else {
				log.WithError(err).Warn("failed to load sexpedit.yaml, using defaults")
			}
		}
	})

	return rootCmd.Execute()
}
