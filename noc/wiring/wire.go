// Package wiring records the wires between component ports and checks that
// the resulting port graph is complete.
package wiring

import (
	"github.com/sarchlab/ilptopo/sim"
)

// A Wire is an undirected connection between two ports.
type Wire struct {
	name  string
	port1 *sim.Port
	port2 *sim.Port
}

// Name returns the name of the wire.
func (w *Wire) Name() string {
	return w.name
}

// Ports returns the two ends of the wire in the order they were connected.
func (w *Wire) Ports() (*sim.Port, *sim.Port) {
	return w.port1, w.port2
}

// Has returns true if the port is one end of the wire.
func (w *Wire) Has(p *sim.Port) bool {
	return w.port1 == p || w.port2 == p
}

// Other returns the end of the wire that is not the given port.
func (w *Wire) Other(p *sim.Port) *sim.Port {
	switch p {
	case w.port1:
		return w.port2
	case w.port2:
		return w.port1
	default:
		panic("port " + p.Name() + " is not connected to wire " + w.name)
	}
}

func (w *Wire) String() string {
	return w.name
}
