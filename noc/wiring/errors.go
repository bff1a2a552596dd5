package wiring

import (
	"fmt"
	"strings"

	"github.com/sarchlab/ilptopo/sim"
)

// PortConflictError reports a port connected by more than one wire, or by a
// wire that loops back to the port itself.
type PortConflictError struct {
	Port  *sim.Port
	Wires []*Wire
}

func (e *PortConflictError) Error() string {
	names := make([]string, len(e.Wires))
	for i, w := range e.Wires {
		names[i] = w.Name()
	}

	return fmt.Sprintf("port %s is wired more than once: %s",
		e.Port.Name(), strings.Join(names, ", "))
}

// DanglingPortError reports a declared port without a peer.
type DanglingPortError struct {
	Port *sim.Port
}

func (e *DanglingPortError) Error() string {
	return fmt.Sprintf("port %s is not wired", e.Port.Name())
}

// UndeclaredPortError reports a wire end that no component in the topology
// declares.
type UndeclaredPortError struct {
	Port *sim.Port
	Wire *Wire
}

func (e *UndeclaredPortError) Error() string {
	return fmt.Sprintf("wire %s connects port %s, which no component declares",
		e.Wire.Name(), e.Port.Name())
}

// RoleMismatchError reports a wire that does not join a memory-side port to
// a CPU-side port.
type RoleMismatchError struct {
	Wire *Wire
}

func (e *RoleMismatchError) Error() string {
	p1, p2 := e.Wire.Ports()

	return fmt.Sprintf("wire %s joins a %s port to a %s port",
		e.Wire.Name(), p1.Role(), p2.Role())
}

// IncompletePathError reports a path toward memory that cannot be followed.
type IncompletePathError struct {
	From   *sim.Port
	At     *sim.Port
	Reason string
}

func (e *IncompletePathError) Error() string {
	return fmt.Sprintf("path from %s breaks at %s: %s",
		e.From.Name(), e.At.Name(), e.Reason)
}
