// Package bpred resolves a requested branch predictor kind to a predictor
// that the simulation engine actually provides.
package bpred

import (
	"fmt"
)

// Kind is a branch predictor kind.
type Kind int

// Predictor kinds. NullFallbackToLocal is never requested. It marks a local
// predictor that stands in for a requested None predictor.
const (
	Tournament Kind = iota
	Local
	None
	NullFallbackToLocal
)

func (k Kind) String() string {
	switch k {
	case Tournament:
		return "tournament"
	case Local:
		return "local"
	case None:
		return "none"
	case NullFallbackToLocal:
		return "none->local"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EngineType returns the name of the predictor type in the simulation engine.
func (k Kind) EngineType() string {
	switch k {
	case Tournament:
		return "TournamentBP"
	case Local, NullFallbackToLocal:
		return "LocalBP"
	case None:
		return "NullBranchPredictor"
	default:
		return ""
	}
}

// ParseKind parses the kind names accepted on the command line. Names are
// matched exactly.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "tournament":
		return Tournament, nil
	case "local":
		return Local, nil
	case "none":
		return None, nil
	default:
		return 0, fmt.Errorf(
			"unknown branch predictor %q, "+
				"must be one of tournament, local, none", s)
	}
}

// A CapabilityTable lists the predictor kinds an engine provides.
type CapabilityTable map[Kind]bool

// DefaultCapabilities is the capability table of an engine that provides the
// tournament and local predictors but no null predictor.
func DefaultCapabilities() CapabilityTable {
	return CapabilityTable{
		Tournament: true,
		Local:      true,
	}
}

// Supports checks if the engine provides the kind.
func (t CapabilityTable) Supports(k Kind) bool {
	return t[k]
}

// A Descriptor is a resolved predictor.
type Descriptor struct {
	Requested Kind
	Kind      Kind
}

// Fallback tells if the predictor differs from what was requested.
func (d Descriptor) Fallback() bool {
	return d.Kind == NullFallbackToLocal
}

// EngineType returns the engine-side type of the resolved predictor.
func (d Descriptor) EngineType() string {
	return d.Kind.EngineType()
}

func (d Descriptor) String() string {
	if d.Fallback() {
		return fmt.Sprintf("%s (requested %s)", d.EngineType(), d.Requested)
	}

	return d.EngineType()
}

// Resolve picks the predictor for the requested kind. A None request resolves
// to the engine's null predictor if it has one, and to a local predictor
// marked NullFallbackToLocal otherwise. Tournament and Local always resolve
// as requested. Resolve never fails.
func Resolve(requested Kind, supported CapabilityTable) Descriptor {
	d := Descriptor{Requested: requested, Kind: requested}

	if requested == None && !supported.Supports(None) {
		d.Kind = NullFallbackToLocal
	}

	return d
}
