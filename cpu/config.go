package cpu

import (
	"fmt"

	"github.com/sarchlab/ilptopo/bpred"
)

// Variant is the pipeline model of a CPU.
type Variant int

// Pipeline models.
const (
	InOrder Variant = iota
	OutOfOrder
)

func (v Variant) String() string {
	switch v {
	case InOrder:
		return "minor"
	case OutOfOrder:
		return "o3"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// EngineType returns the CPU type name in the simulation engine.
func (v Variant) EngineType() string {
	switch v {
	case InOrder:
		return "MinorCPU"
	case OutOfOrder:
		return "DerivO3CPU"
	default:
		return ""
	}
}

// ParseVariant parses the cpu-type names accepted on the command line. Names
// are matched exactly.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "minor":
		return InOrder, nil
	case "o3":
		return OutOfOrder, nil
	default:
		return 0, fmt.Errorf(
			"unknown cpu type %q, must be one of minor, o3", s)
	}
}

// StageWidths holds the per-stage widths of an out-of-order pipeline.
type StageWidths struct {
	Fetch     int
	Decode    int
	Issue     int
	Dispatch  int
	Commit    int
	Squash    int
	Writeback int
}

// All returns the seven widths in pipeline order.
func (s StageWidths) All() []int {
	return []int{
		s.Fetch,
		s.Decode,
		s.Issue,
		s.Dispatch,
		s.Commit,
		s.Squash,
		s.Writeback,
	}
}

func uniformStageWidths(width int) StageWidths {
	return StageWidths{
		Fetch:     width,
		Decode:    width,
		Issue:     width,
		Dispatch:  width,
		Commit:    width,
		Squash:    width,
		Writeback: width,
	}
}

// Config describes the pipeline of a CPU.
//
// An in-order CPU has no per-stage widths and no out-of-order buffers; those
// fields stay zero. Width still records the width that was supplied.
type Config struct {
	Variant Variant
	Width   int

	// Threads is the number of hardware thread contexts the core exposes.
	// RequestedThreads keeps the value that was asked for, so that a forced
	// single-thread downgrade stays visible.
	Threads          int
	RequestedThreads int

	Stages            StageWidths
	ROBEntries        int
	IQEntries         int
	LoadQueueEntries  int
	StoreQueueEntries int

	Predictor bpred.Descriptor

	NumInterruptControllers int
}

// ThreadsDowngraded tells if the CPU exposes fewer threads than requested.
func (c Config) ThreadsDowngraded() bool {
	return c.Threads < c.RequestedThreads
}

// HasStages tells if the CPU model has per-stage widths.
func (c Config) HasStages() bool {
	return c.Variant == OutOfOrder
}
