package commands

import (
	_ "embed"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
)

//go:embed docs.md
var dslReference string

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the query class reference",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "docs", start, err) }()

			return ui.PrintMarkdown(dslReference)
		},
	}
}
