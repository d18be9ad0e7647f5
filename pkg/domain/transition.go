package domain

import (
	"fmt"
	"sort"
)

// TransitionSet maps each state to the states reachable from it in one
// asynchronous update. Every recorded edge flips exactly one bit; a state
// listing itself as its only successor is a fixed point.
type TransitionSet map[State][]State

// Width returns the bit width of the states in the set, or 0 if empty.
func (ts TransitionSet) Width() int {
	for s := range ts {
		return s.Width()
	}
	return 0
}

// States returns the source states of the set in index order.
func (ts TransitionSet) States() []State {
	out := make([]State, 0, len(ts))
	for s := range ts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Add appends an edge from src to dst, ignoring duplicates.
func (ts TransitionSet) Add(src, dst State) {
	for _, t := range ts[src] {
		if t == dst {
			return
		}
	}
	ts[src] = append(ts[src], dst)
}

// Edges counts all recorded transitions.
func (ts TransitionSet) Edges() int {
	n := 0
	for _, targets := range ts {
		n += len(targets)
	}
	return n
}

// Validate checks the asynchronous-update invariants: uniform state width,
// well-formed bit strings, and every edge flipping at most one bit (distance
// zero marks a fixed point). A violation wraps ErrMalformedInput.
func (ts TransitionSet) Validate() error {
	width := ts.Width()
	for src, targets := range ts {
		if !src.Valid() {
			return fmt.Errorf("%w: state %q is not a bit string", ErrMalformedInput, src)
		}
		if src.Width() != width {
			return fmt.Errorf("%w: state %q has width %d, expected %d", ErrMalformedInput, src, src.Width(), width)
		}
		for _, dst := range targets {
			if !dst.Valid() || dst.Width() != width {
				return fmt.Errorf("%w: target %q of state %q is not a %d-bit string", ErrMalformedInput, dst, src, width)
			}
			if d := src.Hamming(dst); d > 1 {
				return fmt.Errorf("%w: transition %q -> %q flips %d bits", ErrMalformedInput, src, dst, d)
			}
		}
	}
	return nil
}
