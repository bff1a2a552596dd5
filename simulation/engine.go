// Package simulation hands an assembled topology to a simulation engine.
package simulation

import (
	"context"
	"fmt"

	"github.com/sarchlab/ilptopo/topology"
)

// Result is what an engine reports when the simulation exits.
type Result struct {
	Tick  uint64
	Cause string
}

func (r Result) String() string {
	return fmt.Sprintf("Exited @ %d because %s", r.Tick, r.Cause)
}

// An Engine simulates a topology.
type Engine interface {
	// Name identifies the engine in errors and records.
	Name() string

	// Run simulates the topology until it exits or the context is done.
	Run(ctx context.Context, t *topology.Topology) (Result, error)
}

// EngineError reports an engine that failed to run.
type EngineError struct {
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine %s failed: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
