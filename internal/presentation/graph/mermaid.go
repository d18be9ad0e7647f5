// Package graph renders transition sets as Mermaid flowchart text, with the
// structural roles of states reflected in node shapes and styles.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax for a transition set.
// It applies semantic styling:
// - Parentless source: ((Circle))
// - Attractor member: [[Subroutine]]
// - Transient: [Rectangle]
// Attractor-internal edges render as thick arrows, all others as plain ones.
func GenerateMermaid(ts domain.TransitionSet, res *analysis.Result) string {
	if res == nil {
		res = analysis.Analyze(ts)
	}

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

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range res.States {
		id := "s" + string(s)
		opener, closer := "[", "]"
		switch {
		case inParentless[s]:
			opener, closer = "((", "))"
		case inAttractor[s]:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, s, closer))

		for _, t := range ts[s] {
			arrow := "-->"
			if inAttractor[s] && inAttractor[t] {
				arrow = "==>"
			}
			sb.WriteString(fmt.Sprintf("    %s %s s%s\n", id, arrow, t))
		}
	}

	sb.WriteString("\n    %% Role styles\n")
	sb.WriteString("    classDef parentless fill:#fff3e0,stroke:#e65100,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef attractor fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")

	if ids := classList(res.Parentless); ids != "" {
		sb.WriteString(fmt.Sprintf("    class %s parentless;\n", ids))
	}
	var attractorStates []domain.State
	for _, a := range res.Attractors {
		attractorStates = append(attractorStates, a...)
	}
	if ids := classList(attractorStates); ids != "" {
		sb.WriteString(fmt.Sprintf("    class %s attractor;\n", ids))
	}

	return sb.String()
}

func classList(states []domain.State) string {
	if len(states) == 0 {
		return ""
	}
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = "s" + string(s)
	}
	return strings.Join(ids, ",")
}
