// Package topology assembles the components of a simulated system into one
// verified, immutable topology.
package topology

import (
	"strconv"

	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/mem/cache"
	"github.com/sarchlab/ilptopo/noc/xbar"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/workload"
)

// Stage is a step of the build pipeline.
type Stage int

// The stages run in this order. Each runs once.
const (
	StageValidate Stage = iota
	StageSelectPredictor
	StageBuildCPU
	StageBuildCaches
	StageWire
	StageAssignWorkload
	StageAssemble
)

var stageNames = []string{
	"Validate",
	"SelectPredictor",
	"BuildCPU",
	"BuildCaches",
	"Wire",
	"AssignWorkload",
	"Assemble",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}

	return stageNames[s]
}

// HookPosStageDone marks the end of a stage. The item is the Stage.
var HookPosStageDone = &sim.HookPos{Name: "StageDone"}

// HookPosFeatureDowngrade marks a parameter being replaced by a supported
// value. The item is the Downgrade.
var HookPosFeatureDowngrade = &sim.HookPos{Name: "FeatureDowngrade"}

// Builder can build topologies.
type Builder struct {
	name         string
	clock        sim.Freq
	memMode      string
	capabilities bpred.CapabilityTable
	caches       cache.HierarchyBuilder
	memory       mem.Builder
	l1Bus        xbar.Builder
	memBus       xbar.Builder
	assigner     workload.Assigner
	hooks        []sim.Hook
}

// MakeBuilder creates a builder with the default system parameters.
func MakeBuilder() Builder {
	return Builder{
		name:         "System",
		clock:        2 * sim.GHz,
		memMode:      "timing",
		capabilities: bpred.DefaultCapabilities(),
		caches:       cache.MakeHierarchyBuilder(),
		memory:       mem.MakeBuilder(),
		l1Bus:        xbar.MakeL2XBarBuilder(),
		memBus:       xbar.MakeSystemXBarBuilder(),
		assigner:     workload.MakeAssigner(),
	}
}

// WithName sets the name of the root component.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithClock sets the system clock.
func (b Builder) WithClock(clock sim.Freq) Builder {
	b.clock = clock
	return b
}

// WithSupportedPredictors sets the predictor kinds the engine provides.
func (b Builder) WithSupportedPredictors(t bpred.CapabilityTable) Builder {
	b.capabilities = t
	return b
}

// WithCacheHierarchyBuilder sets the builder of the caches.
func (b Builder) WithCacheHierarchyBuilder(h cache.HierarchyBuilder) Builder {
	b.caches = h
	return b
}

// CacheHierarchyBuilder returns the builder of the caches.
func (b Builder) CacheHierarchyBuilder() cache.HierarchyBuilder {
	return b.caches
}

// WithMemoryBuilder sets the builder of the memory. The memory size always
// comes from the parameters.
func (b Builder) WithMemoryBuilder(m mem.Builder) Builder {
	b.memory = m
	return b
}

// MemoryBuilder returns the builder of the memory.
func (b Builder) MemoryBuilder() mem.Builder {
	return b.memory
}

// WithL1BusBuilder sets the builder of the crossbar below the L1 caches.
func (b Builder) WithL1BusBuilder(x xbar.Builder) Builder {
	b.l1Bus = x
	return b
}

// L1BusBuilder returns the builder of the crossbar below the L1 caches.
func (b Builder) L1BusBuilder() xbar.Builder {
	return b.l1Bus
}

// WithMemBusBuilder sets the builder of the system memory bus.
func (b Builder) WithMemBusBuilder(x xbar.Builder) Builder {
	b.memBus = x
	return b
}

// MemBusBuilder returns the builder of the system memory bus.
func (b Builder) MemBusBuilder() xbar.Builder {
	return b.memBus
}

// WithHook adds a hook that observes the build.
func (b Builder) WithHook(hook sim.Hook) Builder {
	hooks := make([]sim.Hook, len(b.hooks), len(b.hooks)+1)
	copy(hooks, b.hooks)
	b.hooks = append(hooks, hook)

	return b
}

// Build runs the pipeline on the raw parameters. It returns the first error
// found and never returns a partial topology.
func (b Builder) Build(raw param.Raw) (*Topology, error) {
	a := &assembler{Builder: b}
	for _, h := range b.hooks {
		a.AcceptHook(h)
	}

	return a.run(raw)
}
