package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/classql/cli/internal/config"
	"github.com/satishbabariya/classql/cli/internal/ui"
	"github.com/satishbabariya/classql/query/compiler"
	"github.com/satishbabariya/classql/query/executor"
	"github.com/satishbabariya/classql/query/parser"
	"github.com/satishbabariya/classql/render"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	var joinSpec string
	var asMode string
	var dbPath string
	var sqlOnly bool

	cmd := &cobra.Command{
		Use:   "query <class>...",
		Short: "Compile and run a utility-class query",
		Long: `Parse the first query class among the arguments, compile it to SQL
and run it. With --sql-only the query is printed without touching the
database; with --as the rows are rendered as an HTML fragment instead
of a table.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			start := time.Now()
			defer func() { trackCommand(cfg, "query", start, err) }()

			desc, ok := parser.ParseClassList(strings.Join(args, " "))
			if !ok {
				return fmt.Errorf("no query class found in %q", strings.Join(args, " "))
			}

			if joinSpec != "" {
				join, ok := parser.ParseJoinParam(joinSpec)
				if !ok {
					ui.PrintWarning("Ignoring invalid join spec %q", joinSpec)
				} else {
					desc = desc.WithJoin(*join)
				}
			}

			compiled, err := compiler.Compile(desc)
			if err != nil {
				return err
			}

			ui.PrintCodeBlock(compiled.SQL, "sql")
			ui.PrintInfo("Params: %v", compiled.Params)

			if sqlOnly {
				return nil
			}

			c, err := openClient(cmd.Context(), cfg, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = c.Disconnect(cmd.Context()) }()

			result, err := executor.NewExecutor(c).Run(cmd.Context(), desc)
			if err != nil {
				return err
			}

			if asMode != "" {
				fmt.Println(render.Rows(result.Rows, result.Columns, render.ParseMode(asMode)))
				return nil
			}

			printRows(result)
			ui.PrintSuccess("%d rows in %s", result.Count, time.Since(start).Round(time.Millisecond))

			return nil
		},
	}

	cmd.Flags().StringVar(&joinSpec, "join", "", "Join spec (table:parentCol-childCol:col1,col2:type)")
	cmd.Flags().StringVar(&asMode, "as", "", "Render rows as an HTML fragment (span, div, ul, ol, table, json, code)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.Flags().BoolVar(&sqlOnly, "sql-only", false, "Compile and print the SQL without executing")

	return cmd
}

// printRows shows a result as a terminal table.
func printRows(result *executor.Result) {
	if result.Count == 0 {
		ui.PrintInfo("No results")
		return
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		cells := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			if v, ok := row[col]; ok && v != nil {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, cells)
	}

	ui.PrintTable(result.Columns, rows)
}
