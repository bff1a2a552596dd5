package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/sarchlab/ilptopo/datarecording"
	"github.com/sarchlab/ilptopo/simulation"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.sqlite3> [table...]",
		Short: "Print the tables of a recording.",
		Long: `inspect prints the rows of a recording made with --record. ` +
			`All known tables are printed unless some are named.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return inspect(c, args[0], args[1:])
		},
	}
}

func inspect(c *cobra.Command, file string, tables []string) error {
	reader, err := datarecording.NewReader(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	types := simulation.RowTypes()
	types[datarecording.ExecTableName] = datarecording.ExecInfo{}

	for name, row := range types {
		reader.MapTable(name, row)
	}

	if len(tables) == 0 {
		for _, name := range reader.ListTables() {
			if _, ok := types[name]; ok {
				tables = append(tables, name)
			}
		}
	}

	for _, name := range tables {
		if _, ok := types[name]; !ok {
			return fmt.Errorf("unknown table %q", name)
		}

		rows, total, err := reader.Query(c.Context(), name,
			datarecording.QueryParams{})
		if err != nil {
			return err
		}

		printRows(c.OutOrStdout(), name, rows, total)
	}

	return nil
}

func printRows(w io.Writer, table string, rows []any, total int) {
	fmt.Fprintf(w, "%s (%d rows)\n", table, total)

	for _, row := range rows {
		v := reflect.ValueOf(row).Elem()
		fields := make([]string, 0, v.NumField())

		for i := 0; i < v.NumField(); i++ {
			fields = append(fields,
				fmt.Sprintf("%s=%v", v.Type().Field(i).Name, v.Field(i)))
		}

		fmt.Fprintf(w, "  %s\n", strings.Join(fields, " "))
	}
}
