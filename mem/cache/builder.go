package cache

import (
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/sim"
)

// Builder can build caches. A Builder is a value; every With method returns
// a modified copy and never changes the receiver.
type Builder struct {
	level           Level
	size            uint64
	associativity   int
	tagLatency      int
	dataLatency     int
	responseLatency int
	mshrs           int
	targetsPerMSHR  int
}

// MakeL1IBuilder creates a builder with the L1 instruction cache defaults.
func MakeL1IBuilder() Builder {
	return makeL1Builder(L1Instruction)
}

// MakeL1DBuilder creates a builder with the L1 data cache defaults.
func MakeL1DBuilder() Builder {
	return makeL1Builder(L1Data)
}

func makeL1Builder(level Level) Builder {
	return Builder{
		level:           level,
		size:            32 * mem.KB,
		associativity:   2,
		tagLatency:      2,
		dataLatency:     2,
		responseLatency: 2,
		mshrs:           4,
		targetsPerMSHR:  16,
	}
}

// MakeL2Builder creates a builder with the L2 cache defaults.
func MakeL2Builder() Builder {
	return Builder{
		level:           L2,
		size:            512 * mem.KB,
		associativity:   8,
		tagLatency:      12,
		dataLatency:     12,
		responseLatency: 12,
		mshrs:           16,
		targetsPerMSHR:  16,
	}
}

// WithSize sets the capacity of the cache in bytes.
func (b Builder) WithSize(size uint64) Builder {
	b.size = size
	return b
}

// WithAssociativity sets the number of ways.
func (b Builder) WithAssociativity(associativity int) Builder {
	b.associativity = associativity
	return b
}

// WithTagLatency sets the tag lookup latency.
func (b Builder) WithTagLatency(latency int) Builder {
	b.tagLatency = latency
	return b
}

// WithDataLatency sets the data access latency.
func (b Builder) WithDataLatency(latency int) Builder {
	b.dataLatency = latency
	return b
}

// WithResponseLatency sets the latency of sending a response back up.
func (b Builder) WithResponseLatency(latency int) Builder {
	b.responseLatency = latency
	return b
}

// WithMSHRs sets the number of miss status holding registers.
func (b Builder) WithMSHRs(mshrs int) Builder {
	b.mshrs = mshrs
	return b
}

// WithTargetsPerMSHR sets how many requests can wait on one MSHR.
func (b Builder) WithTargetsPerMSHR(targets int) Builder {
	b.targetsPerMSHR = targets
	return b
}

// Config returns the configuration that Build would produce.
func (b Builder) Config() Config {
	return Config{
		Level:           b.level,
		Size:            b.size,
		Associativity:   b.associativity,
		TagLatency:      b.tagLatency,
		DataLatency:     b.dataLatency,
		ResponseLatency: b.responseLatency,
		MSHRs:           b.mshrs,
		TargetsPerMSHR:  b.targetsPerMSHR,
	}
}

// Build builds a cache.
func (b Builder) Build(name string) *Comp {
	c := &Comp{config: b.Config()}
	c.ComponentBase = sim.NewComponentBase(name)

	b.addPorts(c)

	return c
}

func (b Builder) addPorts(c *Comp) {
	c.cpuSidePort = sim.NewPort(c, sim.CPUSide, "CPUSidePort")
	c.memSidePort = sim.NewPort(c, sim.MemSide, "MemSidePort")

	c.AddPort("CPUSidePort", c.cpuSidePort)
	c.AddPort("MemSidePort", c.memSidePort)
}
