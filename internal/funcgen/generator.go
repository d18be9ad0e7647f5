// Package funcgen synthesizes networks whose update rules have a bounded
// dependency count: every variable is driven by exactly k other variables
// through a random truth table. Generation is a bounded generate-and-verify
// loop against an attractor target.
package funcgen

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/pkg/domain"
)

// Config drives the generate-and-verify loop.
type Config struct {
	// Vars is the number of Boolean variables n.
	Vars int

	// Deps is the dependency count k per variable (self-dependency allowed).
	Deps int

	// MinOnes and MaxOnes bound the number of true rows in each variable's
	// k-input truth table, keeping functions away from constants.
	MinOnes int
	MaxOnes int

	// TargetAttractors, when positive, requires the induced network to have
	// exactly this many attractors. TargetSizes, when non-empty, additionally
	// requires the attractor sizes to match as a multiset.
	TargetAttractors int
	TargetSizes      []int

	// Retries bounds the loop; exceeding it yields ErrGenerationExhausted.
	Retries int
}

// DefaultConfig mirrors the conventional 7-variable, 3-dependency setup.
func DefaultConfig() Config {
	return Config{Vars: 7, Deps: 3, MinOnes: 2, MaxOnes: 6, Retries: 100}
}

func (c Config) withDefaults() Config {
	if c.Retries <= 0 {
		c.Retries = 100
	}
	return c
}

// Network is one accepted generation outcome: the update rules, their
// dependency lists, and the induced asynchronous transition set.
type Network struct {
	Functions   domain.FunctionSet
	Deps        map[string][]int
	Transitions domain.TransitionSet
	Attempts    int
}

// Generate runs the bounded loop: sample dependencies and truth tables,
// induce the transition set, measure attractors, accept on target match.
func Generate(cfg Config, rng *rand.Rand) (*Network, error) {
	cfg = cfg.withDefaults()
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= cfg.Retries; attempt++ {
		updates := sample(cfg, rng)
		ts := induceTransitions(cfg.Vars, updates)
		if !matchesTarget(cfg, ts) {
			continue
		}
		return &Network{
			Functions:   toFunctionSet(updates),
			Deps:        toDepMap(updates),
			Transitions: ts,
			Attempts:    attempt,
		}, nil
	}
	return nil, fmt.Errorf("%w: no %d-var network with %d deps met the attractor target in %d attempts",
		domain.ErrGenerationExhausted, cfg.Vars, cfg.Deps, cfg.Retries)
}

func checkConfig(cfg Config) error {
	if cfg.Vars < 1 || cfg.Vars > 16 {
		return fmt.Errorf("%w: vars=%d, want 1..16", domain.ErrMalformedInput, cfg.Vars)
	}
	if cfg.Deps < 1 || cfg.Deps > cfg.Vars {
		return fmt.Errorf("%w: deps=%d, want 1..%d", domain.ErrMalformedInput, cfg.Deps, cfg.Vars)
	}
	rows := 1 << cfg.Deps
	if cfg.MinOnes < 0 || cfg.MaxOnes >= rows || cfg.MinOnes > cfg.MaxOnes {
		return fmt.Errorf("%w: ones bounds [%d,%d] outside valid range [0,%d]",
			domain.ErrMalformedInput, cfg.MinOnes, cfg.MaxOnes, rows-1)
	}
	return nil
}

// update is one variable's rule: which variables it reads and its truth
// table over those inputs, indexed by the packed dependency bits.
type update struct {
	deps  []int
	table []bool
}

func sample(cfg Config, rng *rand.Rand) []update {
	updates := make([]update, cfg.Vars)
	for i := range updates {
		deps := rng.Perm(cfg.Vars)[:cfg.Deps]
		sort.Ints(deps)

		rows := 1 << cfg.Deps
		ones := cfg.MinOnes + rng.Intn(cfg.MaxOnes-cfg.MinOnes+1)
		table := make([]bool, rows)
		for _, row := range rng.Perm(rows)[:ones] {
			table[row] = true
		}
		updates[i] = update{deps: deps, table: table}
	}
	return updates
}

// evalUpdate applies variable i's rule to a state: the dependency bits are
// packed in listed order, first dependency most significant.
func evalUpdate(u update, s domain.State) bool {
	row := 0
	for _, d := range u.deps {
		row <<= 1
		if s.Bit(d) {
			row |= 1
		}
	}
	return u.table[row]
}

// induceTransitions derives the asynchronous dynamics: from s, variable i may
// fire iff f_i(s) differs from s_i; a state with no firing variable is a
// fixed point and self-loops.
func induceTransitions(width int, updates []update) domain.TransitionSet {
	ts := make(domain.TransitionSet, 1<<width)
	for _, s := range domain.AllStates(width) {
		var next []domain.State
		for i, u := range updates {
			if evalUpdate(u, s) != s.Bit(i) {
				next = append(next, s.Flip(i))
			}
		}
		if len(next) == 0 {
			next = []domain.State{s}
		}
		ts[s] = next
	}
	return ts
}

func matchesTarget(cfg Config, ts domain.TransitionSet) bool {
	if cfg.TargetAttractors <= 0 && len(cfg.TargetSizes) == 0 {
		return true
	}
	res := analysis.Analyze(ts)
	if cfg.TargetAttractors > 0 && len(res.Attractors) != cfg.TargetAttractors {
		return false
	}
	if len(cfg.TargetSizes) > 0 {
		want := append([]int(nil), cfg.TargetSizes...)
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
		got := res.AttractorSizes()
		if len(want) != len(got) {
			return false
		}
		for i := range want {
			if want[i] != got[i] {
				return false
			}
		}
	}
	return true
}

// toFunctionSet renders each rule as the canonical SOP over its dependency
// variables: one product term per true truth-table row.
func toFunctionSet(updates []update) domain.FunctionSet {
	fs := make(domain.FunctionSet, len(updates))
	for i, u := range updates {
		var terms []domain.Term
		for row, v := range u.table {
			if !v {
				continue
			}
			term := make(domain.Term, len(u.deps))
			for j, d := range u.deps {
				bit := row>>(len(u.deps)-1-j)&1 == 1
				term[j] = domain.Literal{Var: d, Negated: !bit}
			}
			terms = append(terms, term)
		}
		fs[domain.VarName(i)] = domain.SOP{Terms: terms}
	}
	return fs
}

func toDepMap(updates []update) map[string][]int {
	out := make(map[string][]int, len(updates))
	for i, u := range updates {
		deps := append([]int(nil), u.deps...)
		out[domain.VarName(i)] = deps
	}
	return out
}
