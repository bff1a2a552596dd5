package cmd

import (
	"github.com/spf13/cobra"
)

func newCheckCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the parameters and print the assembled topology.",
		Long: `check runs every construction stage, including the ` +
			`wiring verification, and prints the resulting topology ` +
			`without handing it to an engine.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			t, err := o.buildTopology(c)
			if err != nil {
				return err
			}

			return t.WriteSummary(c.OutOrStdout())
		},
	}
}
