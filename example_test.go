package boolnet_test

import (
	"fmt"
	"log"

	"github.com/aretw0/boolnet"
	"github.com/aretw0/boolnet/pkg/domain"
)

// ExampleSimplifyFunctions demonstrates minimizing update functions without
// touching the file formats: build a FunctionSet, simplify, read the result.
func ExampleSimplifyFunctions() {
	fs := domain.FunctionSet{
		// x1 | (x1 & x2): the second term is absorbed.
		"x1": {Terms: []domain.Term{
			{{Var: 0}},
			{{Var: 0}, {Var: 1}},
		}},
		// (x1 & ~x2) | (x1 & x2): x2 is irrelevant.
		"x2": {Terms: []domain.Term{
			{{Var: 0}, {Var: 1, Negated: true}},
			{{Var: 0}, {Var: 1}},
		}},
	}

	simplified, err := boolnet.SimplifyFunctions(fs)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(simplified["x1"])
	fmt.Println(simplified["x2"])
	// Output:
	// x1
	// x1
}

// ExampleTransitionsToTruthTable shows the update-query semantics of the
// table: the entry for (state, variable) is the state with that variable
// flipped.
func ExampleTransitionsToTruthTable() {
	ts := domain.TransitionSet{
		"00": {"01", "10"},
		"01": {"11"},
		"10": {"00"},
		"11": {"01"},
	}

	tt, err := boolnet.TransitionsToTruthTable(ts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tt["00"]["x1"])
	fmt.Println(tt["00"]["x2"])
	// Output:
	// 10
	// 01
}
