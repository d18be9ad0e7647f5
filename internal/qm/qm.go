// Package qm minimizes sum-of-products Boolean functions with the
// Quine-McCluskey algorithm: prime implicant generation over weight groups,
// then essential-implicant selection and covering of the remainder.
//
// Implicants are fixed-width bit vectors with a parallel don't-care mask;
// variable x1 (bit 0 of a State) maps to the most significant bit, matching
// State.Index.
package qm

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/aretw0/boolnet/pkg/domain"
)

// exactCoverLimit bounds the exhaustive cover search; above it the covering
// step falls back to the greedy heuristic.
const exactCoverLimit = 12

// Implicant is a partial assignment: Mask bits are don't-cares, Value holds
// the fixed bits (zero under the mask).
type Implicant struct {
	Value uint32
	Mask  uint32
}

// Covers reports whether the implicant covers minterm m.
func (imp Implicant) Covers(m uint32) bool {
	return m&^imp.Mask == imp.Value
}

// Literals returns the number of fixed positions given the variable count.
func (imp Implicant) Literals(width int) int {
	fixed := ^imp.Mask & (1<<width - 1)
	return bits.OnesCount32(fixed)
}

// Term renders the implicant as a product term over width variables.
func (imp Implicant) Term(width int) domain.Term {
	var t domain.Term
	for i := 0; i < width; i++ {
		bit := uint32(1) << (width - 1 - i)
		if imp.Mask&bit != 0 {
			continue
		}
		t = append(t, domain.Literal{Var: i, Negated: imp.Value&bit == 0})
	}
	return t
}

// PrimeImplicants merges the given minterms (plus don't-cares) across
// adjacent Hamming-weight groups until no merge applies; terms that never
// merged in some generation are prime. The result is order-independent.
func PrimeImplicants(minterms []uint32, width int) []Implicant {
	groups := make(map[int]map[Implicant]bool)
	for _, m := range minterms {
		w := bits.OnesCount32(m)
		if groups[w] == nil {
			groups[w] = make(map[Implicant]bool)
		}
		groups[w][Implicant{Value: m}] = true
	}

	primes := make(map[Implicant]bool)
	for len(groups) > 0 {
		next := make(map[int]map[Implicant]bool)
		used := make(map[Implicant]bool)

		weights := make([]int, 0, len(groups))
		for w := range groups {
			weights = append(weights, w)
		}
		sort.Ints(weights)

		for _, w := range weights {
			upper, ok := groups[w+1]
			if !ok {
				continue
			}
			for a := range groups[w] {
				for b := range upper {
					if a.Mask != b.Mask {
						continue
					}
					diff := a.Value ^ b.Value
					if diff == 0 || diff&(diff-1) != 0 {
						continue
					}
					merged := Implicant{Value: a.Value &^ diff, Mask: a.Mask | diff}
					mw := bits.OnesCount32(merged.Value)
					if next[mw] == nil {
						next[mw] = make(map[Implicant]bool)
					}
					next[mw][merged] = true
					used[a] = true
					used[b] = true
				}
			}
		}

		for _, group := range groups {
			for imp := range group {
				if !used[imp] {
					primes[imp] = true
				}
			}
		}
		groups = next
	}

	out := make([]Implicant, 0, len(primes))
	for imp := range primes {
		out = append(out, imp)
	}
	sortImplicants(out)
	return out
}

// SelectCover chooses implicants whose covered minterms equal exactly the
// required set: essential implicants first, then an exhaustive search when
// few candidates remain, otherwise a greedy most-covered-first pass.
func SelectCover(primes []Implicant, minterms []uint32, width int) ([]Implicant, error) {
	required := append([]uint32(nil), minterms...)
	sortMinterms(required)

	covering := make(map[uint32][]Implicant, len(required))
	for _, m := range required {
		for _, imp := range primes {
			if imp.Covers(m) {
				covering[m] = append(covering[m], imp)
			}
		}
		if len(covering[m]) == 0 {
			return nil, fmt.Errorf("%w: minterm %0*b has no prime implicant", domain.ErrUnsatisfiableCover, width, m)
		}
	}

	selected := make(map[Implicant]bool)
	uncovered := make(map[uint32]bool, len(required))
	for _, m := range required {
		uncovered[m] = true
	}

	// Essential implicants: sole cover of some minterm.
	for _, m := range required {
		if len(covering[m]) == 1 {
			selected[covering[m][0]] = true
		}
	}
	for imp := range selected {
		for m := range uncovered {
			if imp.Covers(m) {
				delete(uncovered, m)
			}
		}
	}

	if len(uncovered) > 0 {
		var candidates []Implicant
		for _, imp := range primes {
			if selected[imp] {
				continue
			}
			for m := range uncovered {
				if imp.Covers(m) {
					candidates = append(candidates, imp)
					break
				}
			}
		}
		sortImplicants(candidates)

		var chosen []Implicant
		if len(candidates) <= exactCoverLimit {
			chosen = exactCover(candidates, uncovered, width)
		}
		if chosen == nil {
			chosen = greedyCover(candidates, uncovered, width)
		}
		for _, imp := range chosen {
			selected[imp] = true
		}
	}

	out := make([]Implicant, 0, len(selected))
	for imp := range selected {
		out = append(out, imp)
	}
	sortImplicants(out)
	return pruneRedundant(out, required), nil
}

// pruneRedundant drops any implicant whose covered minterms are all covered
// by the rest of the selection, so the result contains no redundant term.
func pruneRedundant(selection []Implicant, minterms []uint32) []Implicant {
	kept := append([]Implicant(nil), selection...)
	for i := 0; i < len(kept); i++ {
		redundant := true
		for _, m := range minterms {
			if !kept[i].Covers(m) {
				continue
			}
			coveredByOther := false
			for j, other := range kept {
				if j != i && other.Covers(m) {
					coveredByOther = true
					break
				}
			}
			if !coveredByOther {
				redundant = false
				break
			}
		}
		if redundant {
			kept = append(kept[:i], kept[i+1:]...)
			i--
		}
	}
	return kept
}

// exactCover enumerates all candidate subsets and returns the one with the
// fewest terms, then fewest literals; nil if nothing covers the remainder.
func exactCover(candidates []Implicant, uncovered map[uint32]bool, width int) []Implicant {
	var (
		best      []Implicant
		bestScore [2]int
	)
	for subset := 1; subset < 1<<len(candidates); subset++ {
		count := bits.OnesCount(uint(subset))
		if best != nil && count > bestScore[0] {
			continue
		}
		covered := 0
		literals := 0
		for i, imp := range candidates {
			if subset&(1<<i) != 0 {
				literals += imp.Literals(width)
			}
		}
		for m := range uncovered {
			for i, imp := range candidates {
				if subset&(1<<i) != 0 && imp.Covers(m) {
					covered++
					break
				}
			}
		}
		if covered != len(uncovered) {
			continue
		}
		score := [2]int{count, literals}
		if best == nil || score[0] < bestScore[0] || (score[0] == bestScore[0] && score[1] < bestScore[1]) {
			best = subsetOf(candidates, subset)
			bestScore = score
		}
	}
	return best
}

func subsetOf(candidates []Implicant, subset int) []Implicant {
	var out []Implicant
	for i, imp := range candidates {
		if subset&(1<<i) != 0 {
			out = append(out, imp)
		}
	}
	return out
}

// greedyCover repeatedly takes the implicant covering the most remaining
// minterms, breaking ties by fewest literals then lexicographic order.
func greedyCover(candidates []Implicant, uncovered map[uint32]bool, width int) []Implicant {
	remaining := make(map[uint32]bool, len(uncovered))
	for m := range uncovered {
		remaining[m] = true
	}

	var out []Implicant
	for len(remaining) > 0 {
		best := -1
		bestCount := 0
		for i, imp := range candidates {
			count := 0
			for m := range remaining {
				if imp.Covers(m) {
					count++
				}
			}
			if count == 0 {
				continue
			}
			if best < 0 || count > bestCount ||
				(count == bestCount && imp.Literals(width) < candidates[best].Literals(width)) {
				best = i
				bestCount = count
			}
		}
		if best < 0 {
			break
		}
		imp := candidates[best]
		out = append(out, imp)
		for m := range remaining {
			if imp.Covers(m) {
				delete(remaining, m)
			}
		}
		candidates = append(candidates[:best:best], candidates[best+1:]...)
	}
	return out
}

// Simplify runs both stages on an explicit minterm set. Don't-care minterms
// participate in merging but are never required to be covered.
func Simplify(minterms, dontCares []uint32, width int) ([]Implicant, error) {
	if len(minterms) == 0 {
		return nil, nil
	}
	all := append(append([]uint32(nil), minterms...), dontCares...)
	primes := PrimeImplicants(dedup(all), width)
	return SelectCover(primes, dedup(minterms), width)
}

// SimplifySOP minimizes an expression by expanding it to minterms and
// covering them. Constant inputs pass through unchanged; an expression true
// everywhere collapses to the constant 1.
func SimplifySOP(f domain.SOP, width int) (domain.SOP, error) {
	if f.IsConstFalse() {
		return domain.ConstFalse(), nil
	}
	if f.IsConstTrue() {
		return domain.ConstTrue(), nil
	}

	minterms := Expand(f, width)
	if len(minterms) == 0 {
		return domain.ConstFalse(), nil
	}
	if len(minterms) == 1<<width {
		return domain.ConstTrue(), nil
	}

	cover, err := Simplify(minterms, nil, width)
	if err != nil {
		return domain.SOP{}, err
	}
	terms := make([]domain.Term, len(cover))
	for i, imp := range cover {
		terms[i] = imp.Term(width)
	}
	return domain.SOP{Terms: terms}, nil
}

// Expand lists the minterm indices on which the expression evaluates true.
func Expand(f domain.SOP, width int) []uint32 {
	var out []uint32
	for idx, s := range domain.AllStates(width) {
		if f.Eval(s) {
			out = append(out, uint32(idx))
		}
	}
	return out
}

func dedup(ms []uint32) []uint32 {
	seen := make(map[uint32]bool, len(ms))
	var out []uint32
	for _, m := range ms {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sortMinterms(out)
	return out
}

func sortMinterms(ms []uint32) {
	sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })
}

func sortImplicants(imps []Implicant) {
	sort.Slice(imps, func(i, j int) bool {
		if imps[i].Value != imps[j].Value {
			return imps[i].Value < imps[j].Value
		}
		return imps[i].Mask < imps[j].Mask
	})
}
