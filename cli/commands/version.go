package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/cli/internal/update"
	"github.com/satishbabariya/classql/cli/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	var checkUpdate bool
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "version", start, err) }()

			info := version.Get()
			if full {
				ui.PrintBox("classql", info.FullString())
			} else {
				printers := ui.GetColorPrinters()
				ui.ColorPrint(printers["primary"], "%s\n", info.String())
			}

			if checkUpdate {
				if err := update.CheckForUpdates(info.Version); err != nil {
					ui.PrintWarning("%v", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "Check for a newer release")
	cmd.Flags().BoolVar(&full, "full", false, "Print build details")

	return cmd
}
