package cpu

import (
	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/sim"
)

const (
	wideIssueThreshold = 2
	narrowROBEntries   = 128
	wideROBEntries     = 192
	numIQEntries       = 64
	numLQEntries       = 32
	numSQEntries       = 32
)

// Comp is a CPU core with an instruction port and a data port.
type Comp struct {
	*sim.ComponentBase

	icachePort *sim.Port
	dcachePort *sim.Port
	config     Config
}

// Kind returns the engine-side type of the CPU.
func (c *Comp) Kind() string {
	return c.config.Variant.EngineType()
}

// Config returns the pipeline parameters of the CPU.
func (c *Comp) Config() Config {
	return c.config
}

// ICachePort returns the port that fetches instructions.
func (c *Comp) ICachePort() *sim.Port {
	return c.icachePort
}

// DCachePort returns the port that accesses data.
func (c *Comp) DCachePort() *sim.Port {
	return c.dcachePort
}

// Builder can build CPUs.
type Builder struct {
	variant   Variant
	width     int
	threads   int
	predictor bpred.Descriptor
}

// MakeBuilder creates a builder for a single-issue in-order CPU with a
// tournament predictor.
func MakeBuilder() Builder {
	return Builder{
		variant:   InOrder,
		width:     1,
		threads:   1,
		predictor: bpred.Resolve(bpred.Tournament, bpred.DefaultCapabilities()),
	}
}

// WithVariant sets the pipeline model.
func (b Builder) WithVariant(variant Variant) Builder {
	b.variant = variant
	return b
}

// WithWidth sets the width of every out-of-order pipeline stage.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithThreads sets the number of hardware threads.
func (b Builder) WithThreads(threads int) Builder {
	b.threads = threads
	return b
}

// WithPredictor sets the resolved branch predictor.
func (b Builder) WithPredictor(predictor bpred.Descriptor) Builder {
	b.predictor = predictor
	return b
}

// Build builds a CPU.
func (b Builder) Build(name string) *Comp {
	b.mustBePositive()

	c := &Comp{}
	c.ComponentBase = sim.NewComponentBase(name)

	switch b.variant {
	case InOrder:
		c.config = b.inOrderConfig()
	case OutOfOrder:
		c.config = b.outOfOrderConfig()
	default:
		panic("unknown cpu variant")
	}

	c.config.NumInterruptControllers = c.config.Threads

	c.icachePort = sim.NewPort(c, sim.MemSide, "ICachePort")
	c.dcachePort = sim.NewPort(c, sim.MemSide, "DCachePort")
	c.AddPort("ICachePort", c.icachePort)
	c.AddPort("DCachePort", c.dcachePort)

	return c
}

// The in-order model has no per-stage width and cannot run more than one
// thread.
func (b Builder) inOrderConfig() Config {
	return Config{
		Variant:          InOrder,
		Width:            b.width,
		Threads:          1,
		RequestedThreads: b.threads,
		Predictor:        b.predictor,
	}
}

func (b Builder) outOfOrderConfig() Config {
	robEntries := narrowROBEntries
	if b.width > wideIssueThreshold {
		robEntries = wideROBEntries
	}

	return Config{
		Variant:           OutOfOrder,
		Width:             b.width,
		Threads:           b.threads,
		RequestedThreads:  b.threads,
		Stages:            uniformStageWidths(b.width),
		ROBEntries:        robEntries,
		IQEntries:         numIQEntries,
		LoadQueueEntries:  numLQEntries,
		StoreQueueEntries: numSQEntries,
		Predictor:         b.predictor,
	}
}

func (b Builder) mustBePositive() {
	if b.width < 1 {
		panic("cpu width must be at least 1")
	}

	if b.threads < 1 {
		panic("cpu thread count must be at least 1")
	}
}
