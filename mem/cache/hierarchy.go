package cache

import "github.com/sarchlab/ilptopo/sim"

// A Hierarchy is a two-level cache hierarchy with private L1 instruction and
// data caches and one L2 cache.
type Hierarchy struct {
	L1I *Comp
	L1D *Comp
	L2  *Comp
}

// Caches returns the caches from the top of the hierarchy to the bottom,
// instruction side first.
func (h Hierarchy) Caches() []*Comp {
	return []*Comp{h.L1I, h.L1D, h.L2}
}

// Configs returns the configurations of the caches, in the order of Caches.
func (h Hierarchy) Configs() []Config {
	caches := h.Caches()
	configs := make([]Config, 0, len(caches))

	for _, c := range caches {
		configs = append(configs, c.Config())
	}

	return configs
}

// HierarchyBuilder builds the three caches of a Hierarchy.
type HierarchyBuilder struct {
	l1i Builder
	l1d Builder
	l2  Builder
}

// MakeHierarchyBuilder creates a HierarchyBuilder that uses the default
// builder of each level.
func MakeHierarchyBuilder() HierarchyBuilder {
	return HierarchyBuilder{
		l1i: MakeL1IBuilder(),
		l1d: MakeL1DBuilder(),
		l2:  MakeL2Builder(),
	}
}

// WithL1IBuilder replaces the builder of the L1 instruction cache.
func (b HierarchyBuilder) WithL1IBuilder(l1i Builder) HierarchyBuilder {
	b.l1i = l1i
	return b
}

// WithL1DBuilder replaces the builder of the L1 data cache.
func (b HierarchyBuilder) WithL1DBuilder(l1d Builder) HierarchyBuilder {
	b.l1d = l1d
	return b
}

// WithL2Builder replaces the builder of the L2 cache.
func (b HierarchyBuilder) WithL2Builder(l2 Builder) HierarchyBuilder {
	b.l2 = l2
	return b
}

// L1IBuilder returns the builder of the L1 instruction cache.
func (b HierarchyBuilder) L1IBuilder() Builder {
	return b.l1i
}

// L1DBuilder returns the builder of the L1 data cache.
func (b HierarchyBuilder) L1DBuilder() Builder {
	return b.l1d
}

// L2Builder returns the builder of the L2 cache.
func (b HierarchyBuilder) L2Builder() Builder {
	return b.l2
}

// Build builds the hierarchy. The L1 caches are named under the CPU and the
// L2 cache under the parent.
func (b HierarchyBuilder) Build(cpuName, parentName string) Hierarchy {
	return Hierarchy{
		L1I: b.l1i.Build(sim.BuildName(cpuName, "ICache")),
		L1D: b.l1d.Build(sim.BuildName(cpuName, "DCache")),
		L2:  b.l2.Build(sim.BuildName(parentName, "L2Cache")),
	}
}
