package cache

import (
	"fmt"

	"github.com/sarchlab/ilptopo/sim"
)

// Level is the position of a cache in the hierarchy.
type Level int

// Cache levels.
const (
	L1Instruction Level = iota
	L1Data
	L2
)

func (l Level) String() string {
	switch l {
	case L1Instruction:
		return "L1I"
	case L1Data:
		return "L1D"
	case L2:
		return "L2"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Config describes one cache. Latencies are in cycles of the system clock.
type Config struct {
	Level           Level
	Size            uint64
	Associativity   int
	TagLatency      int
	DataLatency     int
	ResponseLatency int
	MSHRs           int
	TargetsPerMSHR  int
}

// Comp is a cache with one CPU-side port and one memory-side port.
type Comp struct {
	*sim.ComponentBase

	cpuSidePort *sim.Port
	memSidePort *sim.Port
	config      Config
}

// Kind returns the engine-side type of the cache.
func (c *Comp) Kind() string {
	return "Cache"
}

// Config returns the parameters of the cache.
func (c *Comp) Config() Config {
	return c.config
}

// CPUSidePort returns the port that receives requests from above.
func (c *Comp) CPUSidePort() *sim.Port {
	return c.cpuSidePort
}

// MemSidePort returns the port that sends requests below.
func (c *Comp) MemSidePort() *sim.Port {
	return c.memSidePort
}
