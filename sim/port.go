package sim

// Role tells which face of a component a port sits on.
type Role int

// A CPUSide port receives requests from the processor side. A MemSide port
// issues requests toward memory. A wire always joins a MemSide port to a
// CPUSide port.
const (
	CPUSide Role = iota
	MemSide
)

func (r Role) String() string {
	switch r {
	case CPUSide:
		return "CpuSide"
	case MemSide:
		return "MemSide"
	default:
		return "UnknownRole"
	}
}

// A Port is a connectable face of a component. A port is owned by its
// component and is only referenced by the wires that connect it.
type Port struct {
	name     string
	comp     Component
	role     Role
	terminal bool
}

// NewPort creates a port on the given component. The full name of the port is
// the component name followed by the local name.
func NewPort(comp Component, role Role, localName string) *Port {
	p := &Port{
		comp: comp,
		role: role,
	}

	NameMustBeValid(localName)

	p.name = localName
	if comp != nil {
		p.name = BuildName(comp.Name(), localName)
	}

	return p
}

// NewTerminalPort creates a port that may stay unconnected in a complete
// topology.
func NewTerminalPort(comp Component, role Role, localName string) *Port {
	p := NewPort(comp, role, localName)
	p.terminal = true

	return p
}

// Name returns the full name of the port.
func (p *Port) Name() string {
	return p.name
}

// Component returns the owner component of the port.
func (p *Port) Component() Component {
	return p.comp
}

// Role returns the face of the component that the port sits on.
func (p *Port) Role() Role {
	return p.role
}

// IsTerminal returns true if the port is allowed to stay unconnected.
func (p *Port) IsTerminal() bool {
	return p.terminal
}
