// Package cmd provides the command-line interface of ilptopo.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCommand creates the ilptopo command with all its sub-commands.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ilptopo",
		Short: "Build a single-core ILP-study system and run it on an engine.",
		Long: `ilptopo validates the experiment parameters, assembles a ` +
			`single-core system with private L1 caches, a shared L2 cache ` +
			`and a memory, and hands the topology to a simulation engine. ` +
			`Without --engine the topology is printed instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, opts)
		},
	}

	opts.addBuildFlags(rootCmd)
	opts.addRunFlags(rootCmd)

	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}

// Execute runs the root command and exits the process. The exit code is
// non-zero if the command fails.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "ilptopo: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
