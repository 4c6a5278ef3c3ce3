package commands

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/seed"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up a ClassQL configuration",
		Long: `Walk through the initial setup: where the database lives, where the
server listens, and whether to seed demo data right away. The answers
are written to .classql.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "init", start, err) }()

			ui.PrintHeader("ClassQL", "Utility-class queries for your database")

			if err := survey.AskOne(&survey.Input{
				Message: "Database file path:",
				Default: cfg.DatabasePath,
			}, &cfg.DatabasePath, survey.WithValidator(survey.Required)); err != nil {
				return err
			}

			if err := survey.AskOne(&survey.Input{
				Message: "Listen address:",
				Default: cfg.ListenAddr,
			}, &cfg.ListenAddr, survey.WithValidator(survey.Required)); err != nil {
				return err
			}

			if err := survey.AskOne(&survey.Confirm{
				Message: "Enable anonymous usage reporting?",
				Default: false,
			}, &cfg.Telemetry); err != nil {
				return err
			}

			seedNow := true
			if err := survey.AskOne(&survey.Confirm{
				Message: "Seed the demo database now?",
				Default: true,
			}, &seedNow); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			ui.PrintSuccess("Configuration saved")

			if seedNow {
				c, err := client.NewClient("sqlite", cfg.DatabasePath)
				if err != nil {
					return err
				}
				defer func() { _ = c.Disconnect(cmd.Context()) }()

				if err := c.Connect(cmd.Context()); err != nil {
					return err
				}

				summary, err := seed.Run(cmd.Context(), c.DB())
				if err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
				ui.PrintSuccess("Seeded %d users, %d products, %d posts",
					summary.Users, summary.Products, summary.Posts)
			}

			fmt.Println()
			ui.PrintInfo("Next steps:")
			ui.PrintList([]string{
				"classql serve",
				"classql query db-users-name-limit-5",
				"classql docs",
			})

			return nil
		},
	}
}
