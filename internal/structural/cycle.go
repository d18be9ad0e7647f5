package structural

import (
	"fmt"
	"math/rand"

	"github.com/aretw0/boolnet/pkg/domain"
)

// greedyWalkAttempts bounds the randomized search for a closed single-bit
// walk before falling back to the Gray-code construction.
const greedyWalkAttempts = 32

// embedAttempts bounds the number of random relabelings tried when placing
// a Gray cycle inside the free region of the state space.
const embedAttempts = 64

// buildCycle selects length states from free and arranges them into a closed
// walk on the hypercube where consecutive states differ in exactly one bit.
// Length 1 yields a fixed point, length 2 an edge traversed both ways. Odd
// lengths above 1 cannot close on the bipartite hypercube graph.
func buildCycle(width, length int, free map[domain.State]bool, rng *rand.Rand) ([]domain.State, error) {
	switch {
	case length < 1:
		return nil, fmt.Errorf("%w: attractor size %d", domain.ErrStructuralInfeasible, length)
	case length == 1:
		s, ok := pickFree(width, free, rng, nil)
		if !ok {
			return nil, fmt.Errorf("%w: no free state left for a fixed point", domain.ErrStructuralInfeasible)
		}
		return []domain.State{s}, nil
	case length%2 == 1:
		return nil, fmt.Errorf("%w: no single-bit-flip cycle of odd length %d exists", domain.ErrStructuralInfeasible, length)
	case length > len(free):
		return nil, fmt.Errorf("%w: attractor size %d exceeds %d remaining states", domain.ErrStructuralInfeasible, length, len(free))
	}

	if cycle, ok := greedyCycle(width, length, free, rng); ok {
		return cycle, nil
	}
	if cycle, ok := grayCycle(width, length, free, rng); ok {
		return cycle, nil
	}
	return nil, fmt.Errorf("%w: no free single-bit cycle of length %d found", domain.ErrStructuralInfeasible, length)
}

// greedyCycle walks randomly through free Hamming neighbors and accepts the
// walk when it closes back onto its start at the requested length.
func greedyCycle(width, length int, free map[domain.State]bool, rng *rand.Rand) ([]domain.State, bool) {
	for attempt := 0; attempt < greedyWalkAttempts; attempt++ {
		start, ok := pickFree(width, free, rng, nil)
		if !ok {
			return nil, false
		}
		walk := []domain.State{start}
		inWalk := map[domain.State]bool{start: true}
		for len(walk) < length {
			cur := walk[len(walk)-1]
			var candidates []domain.State
			for _, nb := range cur.Neighbors() {
				if free[nb] && !inWalk[nb] {
					candidates = append(candidates, nb)
				}
			}
			if len(candidates) == 0 {
				break
			}
			next := candidates[rng.Intn(len(candidates))]
			walk = append(walk, next)
			inWalk[next] = true
		}
		if len(walk) == length && walk[len(walk)-1].Hamming(walk[0]) == 1 {
			return walk, true
		}
	}
	return nil, false
}

// grayCycle builds a cycle of even length deterministically: a Gray-code
// path of length/2 vertices in the subcube with one bit held low, mirrored
// with that bit held high. Random bit permutations and XOR masks relabel the
// cycle until it lands entirely on free states.
func grayCycle(width, length int, free map[domain.State]bool, rng *rand.Rand) ([]domain.State, bool) {
	half := length / 2
	if half > 1<<(width-1) {
		return nil, false
	}

	for attempt := 0; attempt < embedAttempts; attempt++ {
		perm := rng.Perm(width)
		mask := rng.Intn(1 << width)

		cycle := make([]domain.State, 0, length)
		for j := 0; j < half; j++ {
			cycle = append(cycle, embed(grayCode(j), 0, perm, mask, width))
		}
		for j := half - 1; j >= 0; j-- {
			cycle = append(cycle, embed(grayCode(j), 1, perm, mask, width))
		}

		ok := true
		for _, s := range cycle {
			if !free[s] {
				ok = false
				break
			}
		}
		if ok {
			return cycle, true
		}
	}
	return nil, false
}

func grayCode(j int) int { return j ^ (j >> 1) }

// embed maps a Gray value plus a mirror bit into the full state space: the
// mirror bit lands on permuted position 0, Gray bit i on permuted position
// i+1, and the whole vector is XORed with mask.
func embed(gray, mirror int, perm []int, mask, width int) domain.State {
	bits := make([]byte, width)
	for i := range bits {
		bits[i] = '0'
	}
	set := func(pos int, v int) {
		if v == 1 {
			bits[pos] = '1'
		}
	}
	set(perm[0], mirror)
	for i := 1; i < width; i++ {
		set(perm[i], (gray>>(i-1))&1)
	}
	s := domain.State(bits)
	for i := 0; i < width; i++ {
		if mask&(1<<i) != 0 {
			s = s.Flip(i)
		}
	}
	return s
}

// pickFree selects a uniformly random state from free, optionally filtered.
func pickFree(width int, free map[domain.State]bool, rng *rand.Rand, accept func(domain.State) bool) (domain.State, bool) {
	candidates := make([]domain.State, 0, len(free))
	for s := range free {
		if accept == nil || accept(s) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sortStates(candidates)
	return candidates[rng.Intn(len(candidates))], true
}
