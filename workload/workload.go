// Package workload assigns a binary to the hardware thread contexts of a
// processor.
package workload

import (
	"strconv"

	"github.com/sarchlab/ilptopo/sim"
)

// FirstPID is the PID of the process on thread context 0.
const FirstPID = 100

// A Process is one process image bound to one thread context.
type Process struct {
	PID           int
	ThreadContext int
	Executable    string
	Cmd           []string
}

// Config lists the processes of a run, ordered by thread context.
type Config struct {
	Binary     string
	SEWorkload string
	Processes  []Process
}

// NumProcesses returns the number of processes.
func (c Config) NumProcesses() int {
	return len(c.Processes)
}

// Assigner maps a binary onto thread contexts.
type Assigner struct {
	probe func(path string) string
}

// MakeAssigner creates an Assigner that numbers processes from FirstPID and
// probes the SE workload flavour from the ELF header.
func MakeAssigner() Assigner {
	return Assigner{
		probe: ProbeSEWorkload,
	}
}

// WithProbe replaces the SE workload probe.
func (a Assigner) WithProbe(probe func(path string) string) Assigner {
	a.probe = probe
	return a
}

// Assign creates one process per thread context. Every process gets its own
// argument list so that no two processes share a slice.
func (a Assigner) Assign(binary string, threads int) Config {
	if threads < 1 {
		panic("at least one thread context is required")
	}

	pids := sim.NewSequentialIDGenerator(FirstPID)

	c := Config{
		Binary:    binary,
		Processes: make([]Process, threads),
	}

	if a.probe != nil {
		c.SEWorkload = a.probe(binary)
	}

	for i := 0; i < threads; i++ {
		pid, err := strconv.Atoi(pids.Generate())
		if err != nil {
			panic(err)
		}

		c.Processes[i] = Process{
			PID:           pid,
			ThreadContext: i,
			Executable:    binary,
			Cmd:           []string{binary},
		}
	}

	return c
}
