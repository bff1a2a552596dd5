package topology

import "github.com/sarchlab/ilptopo/sim"

// SystemConfig holds the system-wide parameters.
type SystemConfig struct {
	Clock   sim.Freq
	MemMode string
}

// System is the root component. Its system port gives functional access to
// memory without going through the caches.
type System struct {
	*sim.ComponentBase

	config SystemConfig
	port   *sim.Port
}

func newSystem(name string, config SystemConfig) *System {
	s := &System{config: config}
	s.ComponentBase = sim.NewComponentBase(name)

	s.port = sim.NewPort(s, sim.MemSide, "SystemPort")
	s.AddPort("SystemPort", s.port)

	return s
}

// Kind returns the engine-side type of the system.
func (s *System) Kind() string {
	return "System"
}

// Config returns the system-wide parameters.
func (s *System) Config() SystemConfig {
	return s.config
}

// SystemPort returns the functional access port.
func (s *System) SystemPort() *sim.Port {
	return s.port
}
