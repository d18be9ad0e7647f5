package boolnet

import (
	"math/rand"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/internal/extract"
	"github.com/aretw0/boolnet/internal/funcgen"
	"github.com/aretw0/boolnet/internal/qm"
	"github.com/aretw0/boolnet/internal/structural"
	"github.com/aretw0/boolnet/internal/truthtable"
	"github.com/aretw0/boolnet/pkg/domain"
)

// Version is the toolkit version reported by the CLI.
var Version = "0.1.0"

// StructuralConfig describes the shape of a generated transition graph.
type StructuralConfig = structural.Config

// BoundedConfig describes a bounded-dependency function generation run.
type BoundedConfig = funcgen.Config

// BoundedNetwork is the result of a bounded-dependency generation run.
type BoundedNetwork = funcgen.Network

// GenerateNetwork builds a transition graph matching the given shape.
// The same seed always yields the same network.
func GenerateNetwork(cfg StructuralConfig, seed int64) (domain.TransitionSet, error) {
	return structural.Generate(cfg, rand.New(rand.NewSource(seed)))
}

// GenerateBounded samples update functions with a bounded number of inputs
// per variable until the induced dynamics match the configured attractor
// profile. The same seed always yields the same network.
func GenerateBounded(cfg BoundedConfig, seed int64) (*BoundedNetwork, error) {
	return funcgen.Generate(cfg, rand.New(rand.NewSource(seed)))
}

// TransitionsToTruthTable derives the complete per-variable truth table from
// a transition set.
func TransitionsToTruthTable(ts domain.TransitionSet) (domain.TruthTable, error) {
	return truthtable.FromTransitions(ts)
}

// FunctionsToTruthTable evaluates a function set over every state.
func FunctionsToTruthTable(fs domain.FunctionSet) (domain.TruthTable, error) {
	return truthtable.FromFunctions(fs)
}

// ExtractFunctions recovers canonical sum-of-minterms update functions from
// a truth table.
func ExtractFunctions(tt domain.TruthTable) (domain.FunctionSet, error) {
	return extract.Functions(tt)
}

// SimplifyFunctions reduces every function in the set to a minimal
// sum-of-products form.
func SimplifyFunctions(fs domain.FunctionSet) (domain.FunctionSet, error) {
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	width := fs.Width()
	out := make(domain.FunctionSet, len(fs))
	for _, name := range fs.Names() {
		simplified, err := qm.SimplifySOP(fs[name], width)
		if err != nil {
			return nil, err
		}
		out[name] = simplified
	}
	return out, nil
}

// Analyze computes the structural profile of a transition set: strongly
// connected components, attractors, and parentless states.
func Analyze(ts domain.TransitionSet) *analysis.Result {
	return analysis.Analyze(ts)
}
