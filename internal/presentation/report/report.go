// Package report formats network analysis summaries as Markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/boolnet/internal/analysis"
)

// Network renders a structural summary of a network as a Markdown document.
func Network(name string, stats analysis.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Network %s\n\n", name)
	fmt.Fprintf(&sb, "%d variables, %d states, %d transitions.\n\n", stats.Width, stats.States, stats.Transitions)

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Parentless states | %d |\n", stats.Parentless)
	fmt.Fprintf(&sb, "| Fixed points | %d |\n", stats.FixedPoints)
	fmt.Fprintf(&sb, "| SCCs | %d |\n", stats.SCCCount)
	fmt.Fprintf(&sb, "| Largest SCC | %d |\n", stats.LargestSCC)
	fmt.Fprintf(&sb, "| Attractors | %d |\n", stats.AttractorCount)
	fmt.Fprintf(&sb, "| Attractor sizes | %s |\n", sizeList(stats.AttractorSizes))
	return sb.String()
}

func sizeList(sizes []int) string {
	if len(sizes) == 0 {
		return "none"
	}
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, ", ")
}
