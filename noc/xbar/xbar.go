// Package xbar describes the crossbars that join the caches and the memory.
package xbar

import "github.com/sarchlab/ilptopo/sim"

// Config holds the timing parameters of a crossbar, in cycles.
type Config struct {
	Width           int
	FrontendLatency int
	ForwardLatency  int
	ResponseLatency int
}

// Comp is a crossbar. Each CPU-side port takes one requester and each
// memory-side port one responder. The Default port is a terminal port for
// addresses no responder claims and may stay unconnected.
type Comp struct {
	*sim.ComponentBase

	kind         string
	config       Config
	cpuSidePorts []*sim.Port
	memSidePorts []*sim.Port
	defaultPort  *sim.Port
}

// Kind returns the engine-side type of the crossbar.
func (c *Comp) Kind() string {
	return c.kind
}

// Config returns the timing parameters of the crossbar.
func (c *Comp) Config() Config {
	return c.config
}

// CPUSidePort returns the i-th CPU-side port.
func (c *Comp) CPUSidePort(i int) *sim.Port {
	return c.cpuSidePorts[i]
}

// MemSidePort returns the i-th memory-side port.
func (c *Comp) MemSidePort(i int) *sim.Port {
	return c.memSidePorts[i]
}

// NumCPUSidePorts returns the number of CPU-side ports.
func (c *Comp) NumCPUSidePorts() int {
	return len(c.cpuSidePorts)
}

// NumMemSidePorts returns the number of memory-side ports.
func (c *Comp) NumMemSidePorts() int {
	return len(c.memSidePorts)
}

// DefaultPort returns the terminal default port.
func (c *Comp) DefaultPort() *sim.Port {
	return c.defaultPort
}
