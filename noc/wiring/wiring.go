package wiring

import (
	"github.com/sarchlab/ilptopo/sim"
)

// HookPosWireConnected marks the moment a wire is added.
var HookPosWireConnected = &sim.HookPos{Name: "WireConnected"}

// Wiring holds the wires of a topology. Connect only records wires. All
// checks happen in Verify, so a broken graph is reported as an error rather
// than a panic in the middle of construction.
type Wiring struct {
	sim.HookableBase

	name  string
	wires []*Wire
}

// NewWiring creates an empty wiring.
func NewWiring(name string) *Wiring {
	sim.NameMustBeValid(name)

	return &Wiring{name: name}
}

// Name returns the name of the wiring.
func (w *Wiring) Name() string {
	return w.name
}

// Connect adds a wire between two ports.
func (w *Wiring) Connect(port1, port2 *sim.Port) *Wire {
	wire := &Wire{
		name:  port1.Name() + "<->" + port2.Name(),
		port1: port1,
		port2: port2,
	}
	w.wires = append(w.wires, wire)

	w.InvokeHook(sim.HookCtx{
		Domain: w,
		Pos:    HookPosWireConnected,
		Item:   wire,
	})

	return wire
}

// Wires returns all the wires in the order they were connected.
func (w *Wiring) Wires() []*Wire {
	wires := make([]*Wire, len(w.wires))
	copy(wires, w.wires)

	return wires
}

// WiresOf returns the wires that have the port as one of their ends.
func (w *Wiring) WiresOf(p *sim.Port) []*Wire {
	var wires []*Wire

	for _, wire := range w.wires {
		if wire.Has(p) {
			wires = append(wires, wire)
		}
	}

	return wires
}

// Peer returns the port at the other end of the only wire of p. It returns
// nil if p is not connected by exactly one wire.
func (w *Wiring) Peer(p *sim.Port) *sim.Port {
	wires := w.WiresOf(p)
	if len(wires) != 1 {
		return nil
	}

	return wires[0].Other(p)
}

// Verify checks the wires against the ports declared by the components.
// The ports are checked component by component in the given order, then the
// wires are checked in the order they were connected. The first problem
// found is returned.
func (w *Wiring) Verify(comps []sim.Component) error {
	declared := make(map[*sim.Port]bool)

	for _, c := range comps {
		for _, p := range c.Ports() {
			declared[p] = true

			if err := w.verifyPort(p); err != nil {
				return err
			}
		}
	}

	for _, wire := range w.wires {
		if err := verifyWire(wire, declared); err != nil {
			return err
		}
	}

	return nil
}

func (w *Wiring) verifyPort(p *sim.Port) error {
	wires := w.WiresOf(p)

	switch {
	case len(wires) > 1:
		return &PortConflictError{Port: p, Wires: wires}
	case len(wires) == 1 && wires[0].port1 == wires[0].port2:
		return &PortConflictError{Port: p, Wires: wires}
	case len(wires) == 0 && !p.IsTerminal():
		return &DanglingPortError{Port: p}
	}

	return nil
}

func verifyWire(wire *Wire, declared map[*sim.Port]bool) error {
	for _, p := range []*sim.Port{wire.port1, wire.port2} {
		if !declared[p] {
			return &UndeclaredPortError{Port: p, Wire: wire}
		}
	}

	if wire.port1.Role() == wire.port2.Role() {
		return &RoleMismatchError{Wire: wire}
	}

	return nil
}

// Trace follows the wires from a port toward memory. At every component
// reached, it leaves through the only non-terminal memory-side port. It stops
// at the first component without such a port and returns the ports visited,
// starting with the peer of start.
func (w *Wiring) Trace(start *sim.Port) ([]*sim.Port, error) {
	var path []*sim.Port

	visited := make(map[sim.Component]bool)
	cur := start

	for {
		peer := w.Peer(cur)
		if peer == nil {
			return path, &IncompletePathError{
				From: start, At: cur, Reason: "port has no single peer",
			}
		}

		path = append(path, peer)

		comp := peer.Component()
		if comp == nil {
			return path, &IncompletePathError{
				From: start, At: peer, Reason: "port has no component",
			}
		}

		if visited[comp] {
			return path, &IncompletePathError{
				From: start, At: peer, Reason: "path loops back",
			}
		}

		visited[comp] = true

		next := memSidePorts(comp)
		switch len(next) {
		case 0:
			return path, nil
		case 1:
			cur = next[0]
		default:
			return path, &IncompletePathError{
				From: start, At: peer, Reason: "more than one way toward memory",
			}
		}
	}
}

func memSidePorts(comp sim.Component) []*sim.Port {
	var ports []*sim.Port

	for _, p := range comp.Ports() {
		if p.Role() == sim.MemSide && !p.IsTerminal() {
			ports = append(ports, p)
		}
	}

	return ports
}
