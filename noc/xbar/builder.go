package xbar

import "github.com/sarchlab/ilptopo/sim"

// Builder can build crossbars.
type Builder struct {
	kind            string
	width           int
	frontendLatency int
	forwardLatency  int
	responseLatency int
	numCPUSidePorts int
	numMemSidePorts int
}

// MakeL2XBarBuilder creates a builder for the crossbar between the L1 caches
// and the L2 cache.
func MakeL2XBarBuilder() Builder {
	return Builder{
		kind:            "L2XBar",
		width:           32,
		frontendLatency: 1,
		forwardLatency:  0,
		responseLatency: 1,
		numCPUSidePorts: 2,
		numMemSidePorts: 1,
	}
}

// MakeSystemXBarBuilder creates a builder for the system memory bus.
func MakeSystemXBarBuilder() Builder {
	return Builder{
		kind:            "SystemXBar",
		width:           16,
		frontendLatency: 3,
		forwardLatency:  4,
		responseLatency: 2,
		numCPUSidePorts: 2,
		numMemSidePorts: 1,
	}
}

// WithWidth sets the data path width in bytes.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithFrontendLatency sets the latency of accepting a request.
func (b Builder) WithFrontendLatency(latency int) Builder {
	b.frontendLatency = latency
	return b
}

// WithForwardLatency sets the latency of forwarding a request.
func (b Builder) WithForwardLatency(latency int) Builder {
	b.forwardLatency = latency
	return b
}

// WithResponseLatency sets the latency of returning a response.
func (b Builder) WithResponseLatency(latency int) Builder {
	b.responseLatency = latency
	return b
}

// WithNumCPUSidePorts sets how many requesters can connect.
func (b Builder) WithNumCPUSidePorts(n int) Builder {
	b.numCPUSidePorts = n
	return b
}

// WithNumMemSidePorts sets how many responders can connect.
func (b Builder) WithNumMemSidePorts(n int) Builder {
	b.numMemSidePorts = n
	return b
}

// Build builds a crossbar.
func (b Builder) Build(name string) *Comp {
	if b.numCPUSidePorts < 1 || b.numMemSidePorts < 1 {
		panic("crossbar must have at least one port on each side")
	}

	c := &Comp{
		kind: b.kind,
		config: Config{
			Width:           b.width,
			FrontendLatency: b.frontendLatency,
			ForwardLatency:  b.forwardLatency,
			ResponseLatency: b.responseLatency,
		},
	}
	c.ComponentBase = sim.NewComponentBase(name)

	for i := 0; i < b.numCPUSidePorts; i++ {
		localName := sim.BuildNameWithIndex("", "CPUSidePorts", i)
		p := sim.NewPort(c, sim.CPUSide, localName)
		c.cpuSidePorts = append(c.cpuSidePorts, p)
		c.AddPort(localName, p)
	}

	for i := 0; i < b.numMemSidePorts; i++ {
		localName := sim.BuildNameWithIndex("", "MemSidePorts", i)
		p := sim.NewPort(c, sim.MemSide, localName)
		c.memSidePorts = append(c.memSidePorts, p)
		c.AddPort(localName, p)
	}

	c.defaultPort = sim.NewTerminalPort(c, sim.MemSide, "Default")
	c.AddPort("Default", c.defaultPort)

	return c
}
