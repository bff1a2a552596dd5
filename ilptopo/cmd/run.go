package cmd

import (
	"errors"
	"fmt"

	"github.com/sarchlab/ilptopo/simulation"
	"github.com/spf13/cobra"
)

func runSimulation(c *cobra.Command, o *options) error {
	if err := o.monitorFlagsMustBeConsistent(c); err != nil {
		return err
	}

	t, err := o.buildTopology(c)
	if err != nil {
		return err
	}

	s, err := o.simulationBuilder(c).Build()
	if err != nil {
		return err
	}

	result, runErr := s.Run(c.Context(), t)
	if runErr == nil {
		fmt.Fprintln(c.OutOrStdout(), result)
	}

	if s.GetMonitor() != nil {
		waitForInterrupt(c, s.GetMonitor().URL())
	}

	if err := s.Terminate(); err != nil && runErr == nil {
		return err
	}

	return runErr
}

func (o *options) monitorFlagsMustBeConsistent(c *cobra.Command) error {
	if o.monitor {
		return nil
	}

	if c.Flags().Changed("monitor-port") {
		return errors.New("--monitor-port requires --monitor")
	}

	if o.openBrowser {
		return errors.New("--open-browser requires --monitor")
	}

	return nil
}

func (o *options) simulationBuilder(c *cobra.Command) simulation.Builder {
	b := simulation.MakeBuilder()

	if o.enginePath != "" {
		b = b.WithEngine(simulation.NewExecEngine(
			o.enginePath, o.engineArgs, c.OutOrStdout(), c.ErrOrStderr()))
	} else {
		b = b.WithEngine(simulation.NewDryRunEngine(c.OutOrStdout()))
	}

	if c.Flags().Changed("record") {
		b = b.WithRecording(o.record)
	}

	if o.monitor {
		b = b.WithMonitoring()

		if o.monitorPort > 0 {
			b = b.WithMonitorPort(o.monitorPort)
		}

		if o.openBrowser {
			b = b.WithBrowser()
		}
	}

	return b
}

func waitForInterrupt(c *cobra.Command, url string) {
	fmt.Fprintf(c.ErrOrStderr(),
		"Monitoring at %s, press Ctrl+C to exit.\n", url)

	<-c.Context().Done()
}
