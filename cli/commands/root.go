// Package commands implements the classql command tree.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/telemetry"
)

// NewRootCommand creates the classql root command.
func NewRootCommand() *cobra.Command {
	var verbose bool
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "classql",
		Short: "Utility-class queries for your database",
		Long: `ClassQL turns utility-class strings like db-users-name-where-id-1
into parameterized SQL, runs them against your database and renders the
results as HTML fragments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			if cfgFile != "" {
				config.SetConfigFile(cfgFile)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches ., $HOME, $HOME/.config/classql)")
	cmd.PersistentFlags().Bool("no-telemetry", false, "Disable anonymous usage reporting")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewQueryCommand())
	cmd.AddCommand(NewSchemaCommand())
	cmd.AddCommand(NewDocsCommand())
	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute is the main entry point for the CLI
func Execute() error {
	err := NewRootCommand().Execute()
	telemetry.Shutdown()
	if err != nil {
		ui.PrintError("%v", err)
	}
	return err
}
