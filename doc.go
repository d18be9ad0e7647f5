/*
Package boolnet is a toolkit for generating and analysing asynchronous
Boolean networks.

A network over n variables has 2^n states, each written as a bit string of
length n. Under the asynchronous update scheme a transition flips exactly one
bit at a time, so the state space is a directed subgraph of the n-dimensional
hypercube. The toolkit works with three interchangeable representations:

  - Transition sets: the raw directed graph of single-bit-flip transitions.
  - Update functions: one Boolean expression per variable, in
    sum-of-products form.
  - Truth tables: the per-variable next state for every global state.

# Generation

Two generators are provided. The structural generator builds a transition
graph directly from a shape description: how many states have no
predecessors, and the cycle lengths of the attractors the dynamics must
settle into. The function generator works the other way around, sampling
update functions with a bounded number of inputs per variable and keeping a
network only when its induced dynamics match the requested attractor
profile.

# Usage

	ts, err := boolnet.GenerateNetwork(boolnet.StructuralConfig{
		Vars:           7,
		Parentless:     8,
		AttractorSizes: []int{4, 4, 4},
	}, 42)
	if err != nil {
		log.Fatal(err)
	}

	tt, err := boolnet.TransitionsToTruthTable(ts)
	if err != nil {
		log.Fatal(err)
	}

	fs, err := boolnet.ExtractFunctions(tt)
	if err != nil {
		log.Fatal(err)
	}

	simplified, err := boolnet.SimplifyFunctions(fs)
	if err != nil {
		log.Fatal(err)
	}

The extracted functions are canonical sums of minterms; SimplifyFunctions
reduces them to minimal sum-of-products form via Quine-McCluskey
minimization.

Documents are exchanged as YAML (or JSON) files through the netio package,
and the boolnet command wraps the whole pipeline for shell use.
*/
package boolnet
