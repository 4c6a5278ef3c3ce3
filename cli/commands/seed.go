package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	var dbPath string
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create and seed the demo database",
		Long: `Create the users, products and posts tables and fill them with
generated demo data. An existing database file is only replaced with
--force.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "seed", start, err) }()

			if dbPath == "" {
				dbPath = cfg.DatabasePath
			}

			if _, statErr := config.AppFs.Stat(dbPath); statErr == nil {
				if !force {
					return fmt.Errorf("database %s exists. Use --force to reseed", dbPath)
				}
				if err := config.AppFs.Remove(dbPath); err != nil {
					return fmt.Errorf("failed to remove %s: %w", dbPath, err)
				}
			} else if !os.IsNotExist(statErr) {
				return statErr
			}

			c, err := client.NewClient("sqlite", dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = c.Disconnect(cmd.Context()) }()

			if err := c.Connect(cmd.Context()); err != nil {
				return err
			}

			spinner, err := ui.PrintSpinner(fmt.Sprintf("Seeding %s", dbPath))
			if err != nil {
				return err
			}

			summary, err := seed.Run(cmd.Context(), c.DB())
			if err != nil {
				spinner.Fail("Seeding failed")
				return err
			}
			spinner.Success("Database seeded")

			ui.PrintTable(
				[]string{"Table", "Rows"},
				[][]string{
					{"users", fmt.Sprintf("%d", summary.Users)},
					{"products", fmt.Sprintf("%d", summary.Products)},
					{"posts", fmt.Sprintf("%d", summary.Posts)},
				},
			)
			ui.PrintSuccess("Seed complete in %s", time.Since(start).Round(time.Millisecond))

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing database file")

	return cmd
}
