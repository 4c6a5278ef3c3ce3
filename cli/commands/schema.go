package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/runtime/introspect"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show the tables and columns of the database",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "schema", start, err) }()

			c, err := openClient(cmd.Context(), cfg, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = c.Disconnect(cmd.Context()) }()

			in, err := introspect.NewIntrospector(c)
			if err != nil {
				return err
			}

			tables, err := in.Tables(cmd.Context())
			if err != nil {
				return err
			}

			for _, table := range tables {
				ui.PrintSection(fmt.Sprintf("%s (%d rows)", table.Name, table.RowCount))

				rows := make([][]string, 0, len(table.Columns))
				for _, col := range table.Columns {
					rows = append(rows, []string{col.Name, col.Type})
				}
				ui.PrintTable([]string{"Column", "Type"}, rows)
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")

	return cmd
}
