package cmd

import (
	"errors"
	"log"

	"github.com/sarchlab/ilptopo/config"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/topology"
	"github.com/spf13/cobra"
)

type options struct {
	raw        param.Raw
	configPath string
	verbose    bool

	enginePath  string
	engineArgs  []string
	record      string
	monitor     bool
	monitorPort int
	openBrowser bool
}

func (o *options) addBuildFlags(c *cobra.Command) {
	d := param.DefaultRaw("")
	f := c.PersistentFlags()

	f.StringVar(&o.raw.Binary, "binary", "",
		"Path to the binary to execute (required).")
	f.StringVar(&o.raw.CPUType, "cpu-type", d.CPUType,
		"CPU model to use: minor or o3.")
	f.StringVar(&o.raw.BranchPredictor, "bp", d.BranchPredictor,
		"Branch predictor to use: tournament, local or none.")
	f.IntVar(&o.raw.IssueWidth, "issue-width", d.IssueWidth,
		"Issue width of every pipeline stage.")
	f.IntVar(&o.raw.SMTThreads, "smt-threads", d.SMTThreads,
		"Number of hardware threads.")
	f.StringVar(&o.raw.MemSize, "mem-size", d.MemSize,
		"Size of the main memory, for example 512MB.")
	f.StringVar(&o.configPath, "config", "",
		"YAML file that overrides the built-in defaults.")
	f.BoolVarP(&o.verbose, "verbose", "v", false,
		"Print every construction event to stderr.")
}

func (o *options) addRunFlags(c *cobra.Command) {
	f := c.Flags()

	f.StringVar(&o.enginePath, "engine", "",
		"External simulator that reads the topology as JSON on stdin.")
	f.StringSliceVar(&o.engineArgs, "engine-arg", nil,
		"Argument passed to the external simulator. Can be repeated.")
	f.StringVar(&o.record, "record", "",
		"Record the topology into <name>.sqlite3. An empty name "+
			"generates a unique one.")
	f.BoolVar(&o.monitor, "monitor", false,
		"Serve the topology over HTTP while the engine runs.")
	f.IntVar(&o.monitorPort, "monitor-port", 0,
		"Port of the monitoring server. A random port is used if not set.")
	f.BoolVar(&o.openBrowser, "open-browser", false,
		"Open the monitoring page in a browser.")
}

func (o *options) topologyBuilder(c *cobra.Command) (topology.Builder, error) {
	b := topology.MakeBuilder()

	if o.configPath != "" {
		f, err := config.Load(o.configPath)
		if err != nil {
			return b, err
		}

		b, err = f.Apply(b)
		if err != nil {
			return b, err
		}
	}

	if o.verbose {
		logger := log.New(c.ErrOrStderr(), "", 0)
		b = b.WithHook(sim.NewPrintHook(logger))
	}

	return b, nil
}

func (o *options) buildTopology(c *cobra.Command) (*topology.Topology, error) {
	if !c.Flags().Changed("binary") {
		return nil, errors.New(`required flag "binary" not set`)
	}

	b, err := o.topologyBuilder(c)
	if err != nil {
		return nil, err
	}

	return b.Build(o.raw)
}
