package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/cli/internal/version"
	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/seed"
	"github.com/satishbabariya/classql/telemetry"
)

// storeLocation resolves the provider and connection string for a
// command. An explicit --db flag wins, then DATABASE_URL for non-sqlite
// providers, then the configured sqlite path.
func storeLocation(cfg *config.Config, dbFlag string) (provider, dsn string) {
	if dbFlag != "" {
		return "sqlite", dbFlag
	}
	if cfg.Provider != "sqlite" && cfg.DatabaseURL != "" {
		return cfg.Provider, cfg.DatabaseURL
	}
	return "sqlite", cfg.DatabasePath
}

// openClient connects to the configured store. A missing sqlite database
// file is created and seeded first.
func openClient(ctx context.Context, cfg *config.Config, dbFlag string) (*client.Client, error) {
	provider, dsn := storeLocation(cfg, dbFlag)

	seedNeeded := false
	if provider == "sqlite" {
		if _, err := config.AppFs.Stat(dsn); os.IsNotExist(err) {
			seedNeeded = true
		}
	}

	c, err := client.NewClient(provider, dsn)
	if err != nil {
		return nil, err
	}
	c.Use(client.LoggingMiddleware())

	if err := c.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dsn, err)
	}

	if seedNeeded {
		ui.PrintInfo("Seeding new database %s", dsn)
		if _, err := seed.Run(ctx, c.DB()); err != nil {
			_ = c.Disconnect(ctx)
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return c, nil
}

// trackCommand reports one command execution when telemetry is enabled.
func trackCommand(cfg *config.Config, name string, start time.Time, err error) {
	telemetry.Init(version.Version, cfg.Telemetry)
	telemetry.RecordCommand(name, cfg.Provider, time.Since(start), err)
}
