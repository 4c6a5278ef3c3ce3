package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/runtime/client"
	"github.com/satishbabariya/classql/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var addr string
	var dbPath string
	var templateDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ClassQL demo server",
		Long: `Start the web server: the landing page with live examples, the
schema explorer and the JSON query API. A missing sqlite database is
created and seeded on first start.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "serve", start, err) }()

			if addr == "" {
				addr = cfg.ListenAddr
			}
			if templateDir == "" {
				templateDir = cfg.TemplateDir
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := openClient(ctx, cfg, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = c.Disconnect(context.Background()) }()
			c.Use(client.SlowQueryMiddleware(500 * time.Millisecond))

			srv, err := server.NewServer(c, server.Options{
				Addr:        addr,
				TemplateDir: templateDir,
			})
			if err != nil {
				return err
			}

			ui.PrintInfo("Serving on http://%s", addr)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (host:port)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().StringVar(&templateDir, "templates", "", "Serve templates from this directory and reload on change")

	return cmd
}
