package simulation

import (
	"context"
	"io"

	"github.com/sarchlab/ilptopo/topology"
)

// DryRunCause is the exit cause reported by the DryRunEngine.
const DryRunCause = "dry run, no engine attached"

// DryRunEngine prints the topology instead of simulating it.
type DryRunEngine struct {
	out io.Writer
}

// NewDryRunEngine creates an engine that writes the topology summary to out.
func NewDryRunEngine(out io.Writer) *DryRunEngine {
	return &DryRunEngine{out: out}
}

// Name returns "DryRun".
func (e *DryRunEngine) Name() string {
	return "DryRun"
}

// Run writes the summary and reports tick 0.
func (e *DryRunEngine) Run(
	ctx context.Context,
	t *topology.Topology,
) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, &EngineError{Engine: e.Name(), Err: err}
	}

	if err := t.WriteSummary(e.out); err != nil {
		return Result{}, &EngineError{Engine: e.Name(), Err: err}
	}

	return Result{Tick: 0, Cause: DryRunCause}, nil
}
