package topology

import (
	"github.com/sarchlab/ilptopo/cpu"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/mem/cache"
	"github.com/sarchlab/ilptopo/noc/wiring"
	"github.com/sarchlab/ilptopo/noc/xbar"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/workload"
)

// A Topology is a verified description of a simulated system. It is created
// by a Builder and does not change afterwards. Getters return copies.
type Topology struct {
	id         string
	name       string
	params     param.Params
	parts      parts
	wires      []*wiring.Wire
	workload   workload.Config
	downgrades []Downgrade
}

// ID returns an identifier that is unique to this build.
func (t *Topology) ID() string {
	return t.id
}

// Name returns the name of the root component.
func (t *Topology) Name() string {
	return t.name
}

// Params returns the validated parameters the topology was built from.
func (t *Topology) Params() param.Params {
	return t.params
}

// System returns the system-wide parameters.
func (t *Topology) System() SystemConfig {
	return t.parts.system.Config()
}

// CPU returns the pipeline parameters of the core.
func (t *Topology) CPU() cpu.Config {
	return t.parts.cpu.Config()
}

// L1I returns the L1 instruction cache parameters.
func (t *Topology) L1I() cache.Config {
	return t.parts.caches.L1I.Config()
}

// L1D returns the L1 data cache parameters.
func (t *Topology) L1D() cache.Config {
	return t.parts.caches.L1D.Config()
}

// L2 returns the L2 cache parameters.
func (t *Topology) L2() cache.Config {
	return t.parts.caches.L2.Config()
}

// Caches returns the parameters of all caches, L1I first.
func (t *Topology) Caches() []cache.Config {
	return t.parts.caches.Configs()
}

// L1Bus returns the parameters of the crossbar below the L1 caches.
func (t *Topology) L1Bus() xbar.Config {
	return t.parts.l1Bus.Config()
}

// MemBus returns the parameters of the system memory bus.
func (t *Topology) MemBus() xbar.Config {
	return t.parts.memBus.Config()
}

// Memory returns the memory parameters.
func (t *Topology) Memory() mem.Config {
	return t.parts.memory.Config()
}

// Wires returns the wires in the order they were connected.
func (t *Topology) Wires() []*wiring.Wire {
	wires := make([]*wiring.Wire, len(t.wires))
	copy(wires, t.wires)

	return wires
}

// Workload returns the process assignment.
func (t *Topology) Workload() workload.Config {
	c := t.workload
	c.Processes = make([]workload.Process, len(t.workload.Processes))

	for i, p := range t.workload.Processes {
		p.Cmd = append([]string(nil), p.Cmd...)
		c.Processes[i] = p
	}

	return c
}

// Downgrades returns the parameters that were replaced by supported values.
func (t *Topology) Downgrades() []Downgrade {
	return append([]Downgrade(nil), t.downgrades...)
}

// Components returns all components, the root first, then the core, the
// caches, the buses and the memory.
func (t *Topology) Components() []sim.Component {
	p := t.parts

	return []sim.Component{
		p.system,
		p.cpu,
		p.caches.L1I,
		p.caches.L1D,
		p.l1Bus,
		p.caches.L2,
		p.memBus,
		p.memory,
	}
}

// Component returns the component with the given name, or nil.
func (t *Topology) Component(name string) sim.Component {
	for _, c := range t.Components() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
