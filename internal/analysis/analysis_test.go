package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/pkg/domain"
)

// twoCycleNetwork is a 2-variable network whose dynamics funnel into the
// cycle 01 <-> 11, with 00 and 10 as transient states and 00 parentless.
func twoCycleNetwork() domain.TransitionSet {
	ts := domain.TransitionSet{}
	ts.Add("00", "10")
	ts.Add("10", "11")
	ts.Add("01", "11")
	ts.Add("11", "01")
	return ts
}

func TestAnalyze_CycleAttractor(t *testing.T) {
	res := analysis.Analyze(twoCycleNetwork())

	require.Len(t, res.Attractors, 1)
	assert.Equal(t, []domain.State{"01", "11"}, res.Attractors[0])
	assert.Equal(t, []int{2}, res.AttractorSizes())
	assert.Equal(t, []domain.State{"00"}, res.Parentless)
	assert.Len(t, res.States, 4)
}

func TestAnalyze_FixedPoint(t *testing.T) {
	ts := domain.TransitionSet{}
	ts.Add("0", "1")
	ts.Add("1", "1")

	res := analysis.Analyze(ts)
	require.Len(t, res.Attractors, 1)
	assert.Equal(t, []domain.State{"1"}, res.Attractors[0])
	assert.Equal(t, []domain.State{"0"}, res.Parentless)
}

func TestAnalyze_AbsorbingSink(t *testing.T) {
	// A state with no outgoing edges at all still counts as an attractor.
	ts := domain.TransitionSet{}
	ts.Add("00", "01")

	res := analysis.Analyze(ts)
	require.Len(t, res.Attractors, 1)
	assert.Equal(t, []domain.State{"01"}, res.Attractors[0])
}

func TestAnalyze_MultipleAttractors(t *testing.T) {
	ts := domain.TransitionSet{}
	// Cycle 000 -> 001 -> 011 -> 010 -> 000.
	ts.Add("000", "001")
	ts.Add("001", "011")
	ts.Add("011", "010")
	ts.Add("010", "000")
	// Fixed point.
	ts.Add("111", "111")
	// Transient feeding both.
	ts.Add("100", "000")
	ts.Add("101", "111")
	ts.Add("100", "101")

	res := analysis.Analyze(ts)
	assert.Equal(t, []int{4, 1}, res.AttractorSizes())
	assert.Equal(t, []domain.State{"100"}, res.Parentless)
}

func TestAnalyze_SCCs(t *testing.T) {
	ts := domain.TransitionSet{}
	// Two states forming one SCC, one transient state above them.
	ts.Add("10", "11")
	ts.Add("11", "10")
	ts.Add("00", "10")

	res := analysis.Analyze(ts)
	require.Len(t, res.SCCs, 2)
	assert.Equal(t, []domain.State{"10", "11"}, res.SCCs[0])
	assert.Equal(t, []domain.State{"00"}, res.SCCs[1])
}

func TestEveryStateReachesAttractor(t *testing.T) {
	assert.True(t, analysis.EveryStateReachesAttractor(twoCycleNetwork()))

	// 00 -> 01 -> 00 is a cycle with an exit into a fixed point, plus an
	// isolated two-cycle: every state still drains somewhere terminal.
	ts := domain.TransitionSet{}
	ts.Add("00", "01")
	ts.Add("01", "00")
	ts.Add("01", "11")
	ts.Add("11", "11")
	assert.True(t, analysis.EveryStateReachesAttractor(ts))
}

func TestSummarize(t *testing.T) {
	stats := analysis.Summarize(twoCycleNetwork())

	assert.Equal(t, 2, stats.Width)
	assert.Equal(t, 4, stats.States)
	assert.Equal(t, 4, stats.Transitions)
	assert.Equal(t, 1, stats.Parentless)
	assert.Equal(t, 0, stats.FixedPoints)
	assert.Equal(t, 1, stats.AttractorCount)
	assert.Equal(t, []int{2}, stats.AttractorSizes)
}
