package sim

import (
	"fmt"
	"os"
)

// A PortOwner is an element that can communicate with others through ports.
type PortOwner interface {
	AddPort(name string, port *Port)
	GetPortByName(name string) *Port
	Ports() []*Port
}

// PortOwnerBase provides an implementation of the PortOwner interface. Ports
// are kept in the order they are added.
type PortOwnerBase struct {
	ports     []*Port
	portIndex map[string]int
	sealed    bool
}

// NewPortOwnerBase creates a new PortOwnerBase
func NewPortOwnerBase() *PortOwnerBase {
	return &PortOwnerBase{
		portIndex: make(map[string]int),
	}
}

// AddPort adds a new port with a given name.
func (po *PortOwnerBase) AddPort(name string, port *Port) {
	if po.sealed {
		panic("cannot add port " + name + " to a sealed port owner")
	}

	if _, found := po.portIndex[name]; found {
		panic("port already exist")
	}

	po.portIndex[name] = len(po.ports)
	po.ports = append(po.ports, port)
}

func (po *PortOwnerBase) seal() {
	po.sealed = true
}

// GetPortByName returns the port according to the name of the port. This
// function panics when the given name is not found.
func (po *PortOwnerBase) GetPortByName(name string) *Port {
	index, found := po.portIndex[name]
	if !found {
		errMsg := fmt.Sprintf(
			"Port %s is not available.\n", name)
		errMsg += "Available ports include:\n"

		for n := range po.portIndex {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}

		fmt.Fprint(os.Stderr, errMsg)

		panic("port not found")
	}

	return po.ports[index]
}

// Ports returns all the ports owned by the PortOwner, in the order they were
// added.
func (po *PortOwnerBase) Ports() []*Port {
	list := make([]*Port, len(po.ports))
	copy(list, po.ports)

	return list
}
