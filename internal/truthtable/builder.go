// Package truthtable builds the full per-state, per-variable transition
// table from either a transition set or a set of update functions.
package truthtable

import (
	"fmt"

	"github.com/aretw0/boolnet/pkg/domain"
)

// FromTransitions builds the table that answers, for every state s and
// variable x_i, "what state results if x_i is allowed to fire". Firing a
// variable flips it, so the entry is the single-bit-flipped state whether or
// not the transition set realized that edge; the set is only consulted for
// validation. This deliberately differs from treating absent transitions as
// self-loops: the table describes the update query, not the realized edges.
func FromTransitions(ts domain.TransitionSet) (domain.TruthTable, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: empty transition set", domain.ErrMalformedInput)
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	width := ts.Width()

	tt := make(domain.TruthTable, 1<<width)
	for _, s := range domain.AllStates(width) {
		row := make(map[string]domain.State, width)
		for i := 0; i < width; i++ {
			row[domain.VarName(i)] = s.Flip(i)
		}
		tt[s] = row
	}
	return tt, nil
}

// FromFunctions evaluates every variable's update rule at every state. Where
// the rule confirms the current bit the entry records the state itself (the
// update is a no-op there); otherwise it records the flipped state.
func FromFunctions(fs domain.FunctionSet) (domain.TruthTable, error) {
	if err := fs.Validate(); err != nil {
		return nil, err
	}
	width := fs.Width()
	if width == 0 {
		return nil, fmt.Errorf("%w: empty function set", domain.ErrMalformedInput)
	}

	tt := make(domain.TruthTable, 1<<width)
	for _, s := range domain.AllStates(width) {
		row := make(map[string]domain.State, width)
		for i := 0; i < width; i++ {
			name := domain.VarName(i)
			next := fs[name].Eval(s)
			if next == s.Bit(i) {
				row[name] = s
			} else {
				row[name] = s.Flip(i)
			}
		}
		tt[s] = row
	}
	return tt, nil
}
