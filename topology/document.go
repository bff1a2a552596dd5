package topology

import (
	"encoding/json"

	"github.com/sarchlab/ilptopo/cpu"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/mem/cache"
	"github.com/sarchlab/ilptopo/noc/xbar"
	"github.com/sarchlab/ilptopo/sim"
)

// Document is the form in which a topology is handed to an engine.
type Document struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Components []ComponentDoc `json:"components"`
	Wires      [][2]string    `json:"wires"`
	Workload   WorkloadDoc    `json:"workload"`
	Downgrades []string       `json:"downgrades,omitempty"`
}

// ComponentDoc describes one component.
type ComponentDoc struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Ports  []PortDoc      `json:"ports"`
	Params map[string]any `json:"params"`
}

// PortDoc describes one port.
type PortDoc struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Terminal bool   `json:"terminal,omitempty"`
}

// WorkloadDoc describes the processes.
type WorkloadDoc struct {
	SEWorkload string       `json:"seWorkload,omitempty"`
	Processes  []ProcessDoc `json:"processes"`
}

// ProcessDoc describes one process.
type ProcessDoc struct {
	PID           int      `json:"pid"`
	ThreadContext int      `json:"threadContext"`
	Executable    string   `json:"executable"`
	Cmd           []string `json:"cmd"`
}

// Document returns the engine-facing description of the topology.
func (t *Topology) Document() Document {
	d := Document{
		ID:   t.id,
		Name: t.name,
	}

	for _, c := range t.Components() {
		d.Components = append(d.Components, componentDoc(c))
	}

	for _, w := range t.wires {
		p1, p2 := w.Ports()
		d.Wires = append(d.Wires, [2]string{p1.Name(), p2.Name()})
	}

	d.Workload.SEWorkload = t.workload.SEWorkload
	for _, p := range t.Workload().Processes {
		d.Workload.Processes = append(d.Workload.Processes, ProcessDoc{
			PID:           p.PID,
			ThreadContext: p.ThreadContext,
			Executable:    p.Executable,
			Cmd:           p.Cmd,
		})
	}

	for _, dg := range t.downgrades {
		d.Downgrades = append(d.Downgrades, dg.String())
	}

	return d
}

// MarshalJSON encodes the document of the topology.
func (t *Topology) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Document())
}

func componentDoc(c sim.Component) ComponentDoc {
	d := ComponentDoc{
		Name:   c.Name(),
		Kind:   c.Kind(),
		Params: ComponentParams(c),
	}

	for _, p := range c.Ports() {
		d.Ports = append(d.Ports, PortDoc{
			Name:     p.Name(),
			Role:     p.Role().String(),
			Terminal: p.IsTerminal(),
		})
	}

	return d
}

// ComponentParams returns the parameters of a component by their engine-side
// names.
func ComponentParams(c sim.Component) map[string]any {
	switch c := c.(type) {
	case *System:
		return systemParams(c.Config())
	case *cpu.Comp:
		return cpuParams(c.Config())
	case *cache.Comp:
		return cacheParams(c.Config())
	case *xbar.Comp:
		return xbarParams(c.Config())
	case *mem.Comp:
		return memoryParams(c.Config())
	default:
		return map[string]any{}
	}
}

func systemParams(c SystemConfig) map[string]any {
	return map[string]any{
		"clock":   c.Clock.String(),
		"memMode": c.MemMode,
	}
}

func cpuParams(c cpu.Config) map[string]any {
	m := map[string]any{
		"numThreads":              c.Threads,
		"branchPred":              c.Predictor.EngineType(),
		"numInterruptControllers": c.NumInterruptControllers,
	}

	if c.HasStages() {
		m["fetchWidth"] = c.Stages.Fetch
		m["decodeWidth"] = c.Stages.Decode
		m["issueWidth"] = c.Stages.Issue
		m["dispatchWidth"] = c.Stages.Dispatch
		m["commitWidth"] = c.Stages.Commit
		m["squashWidth"] = c.Stages.Squash
		m["wbWidth"] = c.Stages.Writeback
		m["numROBEntries"] = c.ROBEntries
		m["numIQEntries"] = c.IQEntries
		m["LQEntries"] = c.LoadQueueEntries
		m["SQEntries"] = c.StoreQueueEntries
	}

	return m
}

func cacheParams(c cache.Config) map[string]any {
	return map[string]any{
		"level":            c.Level.String(),
		"size":             mem.FormatByteSize(c.Size),
		"assoc":            c.Associativity,
		"tag_latency":      c.TagLatency,
		"data_latency":     c.DataLatency,
		"response_latency": c.ResponseLatency,
		"mshrs":            c.MSHRs,
		"tgts_per_mshr":    c.TargetsPerMSHR,
	}
}

func xbarParams(c xbar.Config) map[string]any {
	return map[string]any{
		"width":            c.Width,
		"frontend_latency": c.FrontendLatency,
		"forward_latency":  c.ForwardLatency,
		"response_latency": c.ResponseLatency,
	}
}

func memoryParams(c mem.Config) map[string]any {
	return map[string]any{
		"size":    mem.FormatByteSize(c.Size),
		"latency": c.AccessLatency.String(),
		"range":   c.Range.String(),
	}
}
