package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/boolnet/internal/presentation/graph"
	"github.com/aretw0/boolnet/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	// 00 is parentless, 01/11 form the attractor, 10 is transient.
	ts := domain.TransitionSet{
		"00": {"10"},
		"10": {"11"},
		"01": {"11"},
		"11": {"01"},
	}

	output := graph.GenerateMermaid(ts, nil)

	contains := []string{
		"graph TD",
		"s00((\"00\"))",   // parentless source
		"s01[[\"01\"]]",   // attractor member
		"s10[\"10\"]",     // transient state
		"s01 ==> s11",     // attractor-internal edge, thick
		"s10 --> s11",     // entry edge, plain
		"classDef parentless",
		"classDef attractor",
		"class s00 parentless;",
		"class s01,s11 attractor;",
	}
	for _, want := range contains {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q\nGot:\n%s", want, output)
		}
	}
}

func TestGenerateMermaid_DerivesAnalysis(t *testing.T) {
	ts := domain.TransitionSet{"0": {"1"}, "1": {"1"}}

	output := graph.GenerateMermaid(ts, nil)
	if !strings.Contains(output, "s1 ==> s1") {
		t.Errorf("expected fixed point self-loop as attractor edge, got:\n%s", output)
	}
}
