package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is an element of the simulated system. In a topology, a
// component is described by the ports it owns and by its parameters; the
// behavior of the component belongs to the engine that consumes the topology.
type Component interface {
	Named
	Hookable
	PortOwner

	// Kind returns the engine-side type of the component, for example
	// "DerivO3CPU" or "SystemXBar".
	Kind() string

	// Seal freezes the component. Adding a port or a hook afterwards panics.
	Seal()
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	HookableBase
	*PortOwnerBase

	name   string
	sealed bool
}

// NewComponentBase creates a new ComponentBase. The name must follow the
// naming convention checked by NameMustBeValid.
func NewComponentBase(name string) *ComponentBase {
	NameMustBeValid(name)

	c := new(ComponentBase)
	c.name = name
	c.PortOwnerBase = NewPortOwnerBase()

	return c
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}

// Seal freezes the ports and hooks of the component.
func (c *ComponentBase) Seal() {
	c.sealed = true
	c.PortOwnerBase.seal()
}

// IsSealed tells if the component has been sealed.
func (c *ComponentBase) IsSealed() bool {
	return c.sealed
}

// AcceptHook registers a hook. It panics if the component is sealed.
func (c *ComponentBase) AcceptHook(hook Hook) {
	if c.sealed {
		panic("cannot add hook to sealed component " + c.name)
	}

	c.HookableBase.AcceptHook(hook)
}
