// Package extract derives canonical sum-of-products update functions from a
// truth table: for each variable, the disjunction of full minterms over all
// states where the variable's next value is 1. No simplification happens
// here; minimization is the simplifier's job.
package extract

import (
	"fmt"
	"sort"

	"github.com/aretw0/boolnet/pkg/domain"
)

// Functions builds one canonical SOP per variable from the table. States
// missing a row entry for a variable are read as self-preserving there, so a
// partial table still yields total functions.
func Functions(tt domain.TruthTable) (domain.FunctionSet, error) {
	if len(tt) == 0 {
		return nil, fmt.Errorf("%w: empty truth table", domain.ErrMalformedInput)
	}
	if err := tt.Validate(); err != nil {
		return nil, err
	}
	width := tt.Width()

	fs := make(domain.FunctionSet, width)
	for i := 0; i < width; i++ {
		name := domain.VarName(i)
		var terms []domain.Term
		for _, s := range sortedStates(tt) {
			next, ok := tt[s][name]
			if !ok {
				next = s
			}
			if next.Bit(i) {
				terms = append(terms, domain.MintermOf(s))
			}
		}
		fs[name] = domain.SOP{Terms: terms}
	}
	return fs, nil
}

func sortedStates(tt domain.TruthTable) []domain.State {
	out := make([]domain.State, 0, len(tt))
	for s := range tt {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
