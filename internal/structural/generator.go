// Package structural generates asynchronous Boolean network transition
// graphs with a prescribed shape: a requested number of parentless source
// states, a single strongly connected transient region, and terminal
// attractor cycles of requested sizes. All edges flip exactly one bit.
package structural

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/pkg/domain"
)

// Config holds the structural targets for a generated network.
type Config struct {
	// Vars is the number of Boolean variables n; the network spans 2^n states.
	Vars int

	// Parentless is the exact number of states with no incoming transition.
	Parentless int

	// AttractorSizes lists the requested terminal cycle lengths. Size 1 is a
	// fixed point; even sizes are single-bit cycles; odd sizes above 1 are
	// infeasible on the hypercube.
	AttractorSizes []int

	// Retries bounds how many partition attempts are made before giving up.
	Retries int

	// ExtraEdgeProb is the chance of adding a second in-region edge per
	// transient state, on top of the connectivity backbone.
	ExtraEdgeProb float64
}

// DefaultConfig mirrors the conventional 7-variable benchmark shape.
func DefaultConfig() Config {
	return Config{
		Vars:           7,
		Parentless:     8,
		AttractorSizes: []int{4, 4, 4},
		Retries:        50,
		ExtraEdgeProb:  0.3,
	}
}

func (c Config) withDefaults() Config {
	if c.Retries <= 0 {
		c.Retries = 50
	}
	if c.ExtraEdgeProb <= 0 {
		c.ExtraEdgeProb = 0.3
	}
	return c
}

// Generate produces a TransitionSet over all 2^Vars states satisfying the
// configured shape, or fails with ErrStructuralInfeasible naming the
// offending parameter. The caller owns rng; identical seeds reproduce
// identical networks.
func Generate(cfg Config, rng *rand.Rand) (domain.TransitionSet, error) {
	cfg = cfg.withDefaults()
	if err := checkFeasible(cfg); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < cfg.Retries; attempt++ {
		ts, err := buildAttempt(cfg, rng)
		if err != nil {
			lastErr = err
			continue
		}
		if err := verify(cfg, ts); err != nil {
			lastErr = err
			continue
		}
		return ts, nil
	}
	return nil, fmt.Errorf("%w: gave up after %d attempts: %v", domain.ErrStructuralInfeasible, cfg.Retries, lastErr)
}

func checkFeasible(cfg Config) error {
	if cfg.Vars < 1 || cfg.Vars > 16 {
		return fmt.Errorf("%w: vars=%d, want 1..16", domain.ErrStructuralInfeasible, cfg.Vars)
	}
	total := 1 << cfg.Vars
	sum := 0
	for _, l := range cfg.AttractorSizes {
		if l < 1 {
			return fmt.Errorf("%w: attractor size %d", domain.ErrStructuralInfeasible, l)
		}
		if l > 1 && l%2 == 1 {
			return fmt.Errorf("%w: no single-bit-flip cycle of odd length %d exists", domain.ErrStructuralInfeasible, l)
		}
		sum += l
	}
	if cfg.Parentless < 0 {
		return fmt.Errorf("%w: parentless=%d", domain.ErrStructuralInfeasible, cfg.Parentless)
	}
	if cfg.Parentless+sum > total {
		return fmt.Errorf("%w: parentless=%d plus attractor states %d exceed state space %d",
			domain.ErrStructuralInfeasible, cfg.Parentless, sum, total)
	}
	if cfg.Parentless > 0 && cfg.Parentless+sum == total {
		return fmt.Errorf("%w: no transient states left to receive %d parentless exits",
			domain.ErrStructuralInfeasible, cfg.Parentless)
	}
	return nil
}

func buildAttempt(cfg Config, rng *rand.Rand) (domain.TransitionSet, error) {
	ts := make(domain.TransitionSet)
	free := make(map[domain.State]bool, 1<<cfg.Vars)
	for _, s := range domain.AllStates(cfg.Vars) {
		free[s] = true
	}

	// Attractor cycles first, largest first: long Gray cycles need room.
	sizes := append([]int(nil), cfg.AttractorSizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	var cycles [][]domain.State
	for _, l := range sizes {
		cycle, err := buildCycle(cfg.Vars, l, free, rng)
		if err != nil {
			return nil, err
		}
		for _, s := range cycle {
			delete(free, s)
		}
		for i, s := range cycle {
			ts.Add(s, cycle[(i+1)%len(cycle)])
		}
		cycles = append(cycles, cycle)
	}

	// Parentless sources.
	freeList := sortedKeys(free)
	rng.Shuffle(len(freeList), func(i, j int) { freeList[i], freeList[j] = freeList[j], freeList[i] })
	parentless := freeList[:cfg.Parentless]
	for _, p := range parentless {
		delete(free, p)
	}

	// Everything else is the transient region.
	transient := make(map[domain.State]bool, len(free))
	for s := range free {
		transient[s] = true
	}

	if len(transient) > 0 {
		if err := wireTransient(ts, transient, cfg.ExtraEdgeProb, rng); err != nil {
			return nil, err
		}
		if err := wireExits(ts, transient, cycles, rng); err != nil {
			return nil, err
		}
	}

	for _, p := range parentless {
		var candidates []domain.State
		for _, nb := range p.Neighbors() {
			if transient[nb] {
				candidates = append(candidates, nb)
			}
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: parentless state %q has no transient neighbor", domain.ErrStructuralInfeasible, p)
		}
		ts.Add(p, candidates[rng.Intn(len(candidates))])
	}

	return ts, nil
}

// wireTransient makes the transient region a single SCC: a BFS spanning tree
// over the induced Hamming-1 subgraph, with every tree edge realized in both
// directions, plus occasional extra in-region edges for denser dynamics.
func wireTransient(ts domain.TransitionSet, transient map[domain.State]bool, extraProb float64, rng *rand.Rand) error {
	states := sortedKeys(transient)
	root := states[rng.Intn(len(states))]

	visited := map[domain.State]bool{root: true}
	queue := []domain.State{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range cur.Neighbors() {
			if transient[nb] && !visited[nb] {
				visited[nb] = true
				ts.Add(cur, nb)
				ts.Add(nb, cur)
				queue = append(queue, nb)
			}
		}
	}
	if len(visited) != len(transient) {
		return fmt.Errorf("%w: transient region splits into disconnected parts (%d of %d reachable)",
			domain.ErrStructuralInfeasible, len(visited), len(transient))
	}

	for _, s := range states {
		if rng.Float64() >= extraProb {
			continue
		}
		var candidates []domain.State
		for _, nb := range s.Neighbors() {
			if transient[nb] && !hasEdge(ts, s, nb) {
				candidates = append(candidates, nb)
			}
		}
		if len(candidates) > 0 {
			ts.Add(s, candidates[rng.Intn(len(candidates))])
		}
	}
	return nil
}

// wireExits gives the transient region a way into each attractor where the
// geometry allows it; at least one exit overall is required so that every
// transient state (the region being strongly connected) reaches an attractor.
func wireExits(ts domain.TransitionSet, transient map[domain.State]bool, cycles [][]domain.State, rng *rand.Rand) error {
	wired := 0
	for _, cycle := range cycles {
		found := false
		for _, entry := range cycle {
			var candidates []domain.State
			for _, nb := range entry.Neighbors() {
				if transient[nb] {
					candidates = append(candidates, nb)
				}
			}
			if len(candidates) > 0 {
				ts.Add(candidates[rng.Intn(len(candidates))], entry)
				found = true
				break
			}
		}
		if found {
			wired++
		}
	}
	if wired == 0 {
		return fmt.Errorf("%w: no transient state borders any attractor cycle", domain.ErrStructuralInfeasible)
	}
	return nil
}

// verify re-derives the structure and checks it against the request.
func verify(cfg Config, ts domain.TransitionSet) error {
	if err := ts.Validate(); err != nil {
		return err
	}
	res := analysis.Analyze(ts)

	if got := len(res.Parentless); got != cfg.Parentless {
		return fmt.Errorf("%w: produced %d parentless states, want %d", domain.ErrStructuralInfeasible, got, cfg.Parentless)
	}

	want := append([]int(nil), cfg.AttractorSizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))
	got := res.AttractorSizes()
	if !equalInts(want, got) {
		return fmt.Errorf("%w: produced attractor sizes %v, want %v", domain.ErrStructuralInfeasible, got, want)
	}

	if !analysis.EveryStateReachesAttractor(ts) {
		return fmt.Errorf("%w: some state cannot reach an attractor", domain.ErrStructuralInfeasible)
	}

	// The transient region must sit inside exactly one SCC.
	inAttractor := make(map[domain.State]bool)
	for _, a := range res.Attractors {
		for _, s := range a {
			inAttractor[s] = true
		}
	}
	inParentless := make(map[domain.State]bool)
	for _, p := range res.Parentless {
		inParentless[p] = true
	}
	transientSCCs := 0
	for _, scc := range res.SCCs {
		for _, s := range scc {
			if !inAttractor[s] && !inParentless[s] {
				transientSCCs++
				if len(scc) != countTransient(res, inAttractor, inParentless) {
					return fmt.Errorf("%w: transient region is not a single SCC", domain.ErrStructuralInfeasible)
				}
				break
			}
		}
	}
	if transientSCCs > 1 {
		return fmt.Errorf("%w: transient region spans %d SCCs", domain.ErrStructuralInfeasible, transientSCCs)
	}
	return nil
}

func countTransient(res *analysis.Result, inAttractor, inParentless map[domain.State]bool) int {
	n := 0
	for _, s := range res.States {
		if !inAttractor[s] && !inParentless[s] {
			n++
		}
	}
	return n
}

func hasEdge(ts domain.TransitionSet, src, dst domain.State) bool {
	for _, t := range ts[src] {
		if t == dst {
			return true
		}
	}
	return false
}

func sortedKeys(set map[domain.State]bool) []domain.State {
	out := make([]domain.State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sortStates(out)
	return out
}

func sortStates(states []domain.State) {
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
