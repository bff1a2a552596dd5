package topology

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/cpu"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/mem/cache"
	"github.com/sarchlab/ilptopo/noc/wiring"
	"github.com/sarchlab/ilptopo/noc/xbar"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/workload"
)

// parts holds the components of a topology under construction.
type parts struct {
	system *System
	cpu    *cpu.Comp
	caches cache.Hierarchy
	l1Bus  *xbar.Comp
	memBus *xbar.Comp
	memory *mem.Comp
}

// components lists the components in the order their ports are verified.
// Instruction-side caches come before data-side ones and caches come before
// buses.
func (p parts) components() []sim.Component {
	return []sim.Component{
		p.caches.L1I,
		p.caches.L1D,
		p.caches.L2,
		p.l1Bus,
		p.memBus,
		p.cpu,
		p.memory,
		p.system,
	}
}

type assembler struct {
	sim.HookableBase
	Builder

	params     param.Params
	predictor  bpred.Descriptor
	parts      parts
	wiring     *wiring.Wiring
	workload   workload.Config
	downgrades []Downgrade
}

func (a *assembler) Name() string {
	return a.name
}

func (a *assembler) run(raw param.Raw) (*Topology, error) {
	var err error

	a.params, err = param.Validate(raw)
	if err != nil {
		return nil, err
	}

	a.recordClamps()
	a.stageDone(StageValidate)

	a.selectPredictor()
	a.stageDone(StageSelectPredictor)

	a.buildCPU()
	a.stageDone(StageBuildCPU)

	a.buildCaches()
	a.stageDone(StageBuildCaches)

	a.wire()
	a.stageDone(StageWire)

	a.workload = a.assigner.Assign(a.params.Binary, a.parts.cpu.Config().Threads)
	a.stageDone(StageAssignWorkload)

	if err := verify(a.wiring, a.parts); err != nil {
		return nil, err
	}

	t := a.assemble()
	a.stageDone(StageAssemble)

	return t, nil
}

func (a *assembler) recordClamps() {
	if a.params.WidthClamped() {
		a.downgrade("issue-width",
			strconv.Itoa(a.params.RequestedWidth),
			strconv.Itoa(a.params.Width))
	}

	if a.params.ThreadsClamped() {
		a.downgrade("smt-threads",
			strconv.Itoa(a.params.RequestedThreads),
			strconv.Itoa(a.params.Threads))
	}
}

func (a *assembler) selectPredictor() {
	a.predictor = bpred.Resolve(a.params.Predictor, a.capabilities)

	if a.predictor.Fallback() {
		a.downgrade("bp", a.predictor.Requested.String(), a.predictor.EngineType())
	}
}

func (a *assembler) buildCPU() {
	a.parts.system = newSystem(a.name, SystemConfig{
		Clock:   a.clock,
		MemMode: a.memMode,
	})

	a.parts.cpu = cpu.MakeBuilder().
		WithVariant(a.params.Variant).
		WithWidth(a.params.Width).
		WithThreads(a.params.Threads).
		WithPredictor(a.predictor).
		Build(sim.BuildNameWithIndex(a.name, "CPU", 0))

	config := a.parts.cpu.Config()
	if config.ThreadsDowngraded() {
		a.downgrade(
			fmt.Sprintf("smt-threads on %s", config.Variant.EngineType()),
			strconv.Itoa(config.RequestedThreads),
			strconv.Itoa(config.Threads))
	}
}

func (a *assembler) buildCaches() {
	a.parts.caches = a.caches.Build(a.parts.cpu.Name(), a.name)
	a.parts.memory = a.memory.
		WithSize(a.params.MemSize).
		Build(sim.BuildName(a.name, "Mem"))
}

func (a *assembler) wire() {
	a.parts.l1Bus = a.l1Bus.
		WithNumCPUSidePorts(2).
		WithNumMemSidePorts(1).
		Build(sim.BuildName(a.name, "L2Bus"))
	a.parts.memBus = a.memBus.
		WithNumCPUSidePorts(2).
		WithNumMemSidePorts(1).
		Build(sim.BuildName(a.name, "MemBus"))

	a.wiring = wiring.NewWiring(sim.BuildName(a.name, "Wiring"))
	for _, h := range a.Hooks {
		a.wiring.AcceptHook(h)
	}

	connect(a.wiring, a.parts)
}

// connect adds the wires of a single-core system with private L1 caches, a
// shared L2 and one memory.
func connect(w *wiring.Wiring, p parts) {
	w.Connect(p.cpu.ICachePort(), p.caches.L1I.CPUSidePort())
	w.Connect(p.cpu.DCachePort(), p.caches.L1D.CPUSidePort())
	w.Connect(p.caches.L1I.MemSidePort(), p.l1Bus.CPUSidePort(0))
	w.Connect(p.caches.L1D.MemSidePort(), p.l1Bus.CPUSidePort(1))
	w.Connect(p.l1Bus.MemSidePort(0), p.caches.L2.CPUSidePort())
	w.Connect(p.caches.L2.MemSidePort(), p.memBus.CPUSidePort(0))
	w.Connect(p.memBus.MemSidePort(0), p.memory.Port())
	w.Connect(p.system.SystemPort(), p.memBus.CPUSidePort(1))
}

// verify checks that every port is wired once, then that the instruction
// path, the data path and the system port each reach the memory.
func verify(w *wiring.Wiring, p parts) error {
	if err := w.Verify(p.components()); err != nil {
		return err
	}

	starts := []*sim.Port{
		p.cpu.ICachePort(),
		p.cpu.DCachePort(),
		p.system.SystemPort(),
	}

	for _, start := range starts {
		path, err := w.Trace(start)
		if err != nil {
			return err
		}

		end := path[len(path)-1]
		if end != p.memory.Port() {
			return &wiring.IncompletePathError{
				From:   start,
				At:     end,
				Reason: "path does not end at " + p.memory.Name(),
			}
		}
	}

	return nil
}

func (a *assembler) assemble() *Topology {
	for _, c := range a.parts.components() {
		c.Seal()
	}

	return &Topology{
		id:         sim.NewUniqueIDGenerator().Generate(),
		name:       a.name,
		params:     a.params,
		parts:      a.parts,
		wires:      a.wiring.Wires(),
		workload:   a.workload,
		downgrades: a.downgrades,
	}
}

func (a *assembler) downgrade(feature, requested, effective string) {
	d := Downgrade{
		Feature:   feature,
		Requested: requested,
		Effective: effective,
	}
	a.downgrades = append(a.downgrades, d)

	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosFeatureDowngrade,
		Item:   d,
	})
}

func (a *assembler) stageDone(s Stage) {
	a.InvokeHook(sim.HookCtx{
		Domain: a,
		Pos:    HookPosStageDone,
		Item:   s,
	})
}
