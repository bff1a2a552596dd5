package mem

import (
	"github.com/sarchlab/ilptopo/sim"
)

// Config describes a simple memory.
type Config struct {
	Size          uint64
	AccessLatency sim.VTimeInSec
	Range         AddrRange
}

// Comp is a simple fixed-latency memory with a single CPU-side port.
type Comp struct {
	*sim.ComponentBase

	port   *sim.Port
	config Config
}

// Kind returns the engine-side type of the memory.
func (c *Comp) Kind() string {
	return "SimpleMemory"
}

// Config returns the parameters of the memory.
func (c *Comp) Config() Config {
	return c.config
}

// Port returns the port that faces the system bus.
func (c *Comp) Port() *sim.Port {
	return c.port
}

// Builder can build simple memories.
type Builder struct {
	size          uint64
	accessLatency sim.VTimeInSec
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		size:          512 * MB,
		accessLatency: 50 * sim.NS,
	}
}

// WithSize sets the capacity of the memory.
func (b Builder) WithSize(size uint64) Builder {
	b.size = size
	return b
}

// WithAccessLatency sets the fixed access latency of the memory.
func (b Builder) WithAccessLatency(latency sim.VTimeInSec) Builder {
	b.accessLatency = latency
	return b
}

// Build builds a new memory.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		config: Config{
			Size:          b.size,
			AccessLatency: b.accessLatency,
			Range: AddrRange{
				Start: 0,
				Size:  b.size,
			},
		},
	}
	c.ComponentBase = sim.NewComponentBase(name)

	c.port = sim.NewPort(c, sim.CPUSide, "Port")
	c.AddPort("Port", c.port)

	return c
}
