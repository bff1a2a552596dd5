package simulation

import (
	"strings"

	"github.com/sarchlab/ilptopo/datarecording"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/topology"
)

// Table names used when recording a topology.
const (
	ComponentTable = "components"
	PortTable      = "ports"
	WireTable      = "wires"
	CacheTable     = "caches"
	ProcessTable   = "processes"
)

// ComponentRow is a row of the components table.
type ComponentRow struct {
	TopologyID string
	Name       string
	Kind       string
	NumPorts   int
}

// PortRow is a row of the ports table.
type PortRow struct {
	TopologyID string
	Name       string
	Component  string
	Role       string
	Terminal   bool
}

// WireRow is a row of the wires table.
type WireRow struct {
	TopologyID string
	Port1      string
	Port2      string
}

// CacheRow is a row of the caches table.
type CacheRow struct {
	TopologyID      string
	Level           string
	Size            string
	Associativity   int
	TagLatency      int
	DataLatency     int
	ResponseLatency int
	MSHRs           int
	TargetsPerMSHR  int
}

// ProcessRow is a row of the processes table.
type ProcessRow struct {
	TopologyID    string
	PID           int
	ThreadContext int
	Executable    string
	Cmd           string
}

// RowTypes maps every table to the type of its rows.
func RowTypes() map[string]any {
	return map[string]any{
		ComponentTable: ComponentRow{},
		PortTable:      PortRow{},
		WireTable:      WireRow{},
		CacheTable:     CacheRow{},
		ProcessTable:   ProcessRow{},
	}
}

type topologyRecorder struct {
	recorder datarecording.DataRecorder
}

func newTopologyRecorder(r datarecording.DataRecorder) *topologyRecorder {
	for name, row := range RowTypes() {
		r.CreateTable(name, row)
	}

	return &topologyRecorder{recorder: r}
}

func (tr *topologyRecorder) record(t *topology.Topology) {
	id := t.ID()

	for _, c := range t.Components() {
		tr.recorder.InsertData(ComponentTable, ComponentRow{
			TopologyID: id,
			Name:       c.Name(),
			Kind:       c.Kind(),
			NumPorts:   len(c.Ports()),
		})

		for _, p := range c.Ports() {
			tr.recorder.InsertData(PortTable, PortRow{
				TopologyID: id,
				Name:       p.Name(),
				Component:  c.Name(),
				Role:       p.Role().String(),
				Terminal:   p.IsTerminal(),
			})
		}
	}

	for _, w := range t.Wires() {
		p1, p2 := w.Ports()
		tr.recorder.InsertData(WireTable, WireRow{
			TopologyID: id,
			Port1:      p1.Name(),
			Port2:      p2.Name(),
		})
	}

	for _, c := range t.Caches() {
		tr.recorder.InsertData(CacheTable, CacheRow{
			TopologyID:      id,
			Level:           c.Level.String(),
			Size:            mem.FormatByteSize(c.Size),
			Associativity:   c.Associativity,
			TagLatency:      c.TagLatency,
			DataLatency:     c.DataLatency,
			ResponseLatency: c.ResponseLatency,
			MSHRs:           c.MSHRs,
			TargetsPerMSHR:  c.TargetsPerMSHR,
		})
	}

	for _, p := range t.Workload().Processes {
		tr.recorder.InsertData(ProcessTable, ProcessRow{
			TopologyID:    id,
			PID:           p.PID,
			ThreadContext: p.ThreadContext,
			Executable:    p.Executable,
			Cmd:           strings.Join(p.Cmd, " "),
		})
	}

	tr.recorder.Flush()
}
