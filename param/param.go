// Package param validates the experiment parameters given on the command
// line.
package param

import (
	"errors"
	"os"

	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/cpu"
	"github.com/sarchlab/ilptopo/mem"
)

// Raw holds the parameters as they were given.
type Raw struct {
	Binary          string
	CPUType         string
	BranchPredictor string
	IssueWidth      int
	SMTThreads      int
	MemSize         string
}

// DefaultRaw returns the parameters used when nothing is given except the
// binary.
func DefaultRaw(binary string) Raw {
	return Raw{
		Binary:          binary,
		CPUType:         "minor",
		BranchPredictor: "tournament",
		IssueWidth:      1,
		SMTThreads:      1,
		MemSize:         "512MB",
	}
}

// Params holds validated parameters.
//
// Width and Threads are clamped to at least one. The values before clamping
// are kept in RequestedWidth and RequestedThreads.
type Params struct {
	Binary    string
	Variant   cpu.Variant
	Predictor bpred.Kind
	MemSize   uint64

	Width            int
	Threads          int
	RequestedWidth   int
	RequestedThreads int
}

// WidthClamped tells if the issue width was raised to one.
func (p Params) WidthClamped() bool {
	return p.Width != p.RequestedWidth
}

// ThreadsClamped tells if the thread count was raised to one.
func (p Params) ThreadsClamped() bool {
	return p.Threads != p.RequestedThreads
}

// Validate checks the raw parameters. The binary is checked first, so a
// missing binary is reported even if other parameters are also wrong.
func Validate(raw Raw) (Params, error) {
	if err := binaryMustBeReadable(raw.Binary); err != nil {
		return Params{}, err
	}

	variant, err := cpu.ParseVariant(raw.CPUType)
	if err != nil {
		return Params{}, invalid("cpu-type", raw.CPUType, err)
	}

	predictor, err := bpred.ParseKind(raw.BranchPredictor)
	if err != nil {
		return Params{}, invalid("bp", raw.BranchPredictor, err)
	}

	memSize, err := mem.ParseByteSize(raw.MemSize)
	if err != nil {
		return Params{}, invalid("mem-size", raw.MemSize, err)
	}

	return Params{
		Binary:           raw.Binary,
		Variant:          variant,
		Predictor:        predictor,
		MemSize:          memSize,
		Width:            atLeastOne(raw.IssueWidth),
		Threads:          atLeastOne(raw.SMTThreads),
		RequestedWidth:   raw.IssueWidth,
		RequestedThreads: raw.SMTThreads,
	}, nil
}

func binaryMustBeReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &MissingBinaryError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &MissingBinaryError{Path: path, Err: err}
	}

	if info.IsDir() {
		return &MissingBinaryError{
			Path: path,
			Err:  errors.New("is a directory"),
		}
	}

	return nil
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}

	return v
}
