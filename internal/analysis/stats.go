package analysis

import (
	"sort"

	"github.com/aretw0/boolnet/pkg/domain"
)

// Stats is a flat summary of a network's structure, suitable for reports.
type Stats struct {
	Width          int
	States         int
	Transitions    int
	Parentless     int
	FixedPoints    int
	SCCCount       int
	LargestSCC     int
	AttractorCount int
	AttractorSizes []int
}

// Summarize analyzes ts and condenses the result into counts and sizes.
func Summarize(ts domain.TransitionSet) Stats {
	res := Analyze(ts)

	fixed := 0
	for src, targets := range ts {
		if len(targets) == 1 && targets[0] == src {
			fixed++
		}
	}

	largest := 0
	for _, scc := range res.SCCs {
		if len(scc) > largest {
			largest = len(scc)
		}
	}

	sizes := res.AttractorSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return Stats{
		Width:          ts.Width(),
		States:         len(res.States),
		Transitions:    ts.Edges(),
		Parentless:     len(res.Parentless),
		FixedPoints:    fixed,
		SCCCount:       len(res.SCCs),
		LargestSCC:     largest,
		AttractorCount: len(res.Attractors),
		AttractorSizes: sizes,
	}
}
