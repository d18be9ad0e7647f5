package structural_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boolnet/internal/analysis"
	"github.com/aretw0/boolnet/internal/structural"
	"github.com/aretw0/boolnet/pkg/domain"
)

func TestGenerate_DefaultShape(t *testing.T) {
	cfg := structural.DefaultConfig()
	ts, err := structural.Generate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NoError(t, ts.Validate())
	assert.Len(t, ts.States(), 128)

	res := analysis.Analyze(ts)
	assert.Len(t, res.Parentless, 8)
	assert.Equal(t, []int{4, 4, 4}, res.AttractorSizes())
	assert.True(t, analysis.EveryStateReachesAttractor(ts))
}

func TestGenerate_LongCycleWithFixedPoints(t *testing.T) {
	cfg := structural.Config{
		Vars:           7,
		Parentless:     8,
		AttractorSizes: []int{64, 1, 1},
	}
	ts, err := structural.Generate(cfg, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	require.NoError(t, ts.Validate())
	assert.Len(t, ts.States(), 128)

	res := analysis.Analyze(ts)
	assert.Len(t, res.Parentless, 8)
	assert.Equal(t, []int{64, 1, 1}, res.AttractorSizes())
	assert.True(t, analysis.EveryStateReachesAttractor(ts))

	// The two size-1 attractors are genuine fixed points.
	fixed := 0
	for _, a := range res.Attractors {
		if len(a) == 1 {
			s := a[0]
			require.Equal(t, []domain.State{s}, ts[s])
			fixed++
		}
	}
	assert.Equal(t, 2, fixed)
}

func TestGenerate_TransientRegionIsOneSCC(t *testing.T) {
	cfg := structural.DefaultConfig()
	ts, err := structural.Generate(cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	res := analysis.Analyze(ts)

	inAttractor := map[domain.State]bool{}
	for _, a := range res.Attractors {
		for _, s := range a {
			inAttractor[s] = true
		}
	}
	inParentless := map[domain.State]bool{}
	for _, p := range res.Parentless {
		inParentless[p] = true
	}

	transient := 128 - len(inAttractor) - len(inParentless)
	for _, scc := range res.SCCs {
		if !inAttractor[scc[0]] && !inParentless[scc[0]] {
			assert.Len(t, scc, transient)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := structural.DefaultConfig()

	first, err := structural.Generate(cfg, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	second, err := structural.Generate(cfg, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_SmallSpaces(t *testing.T) {
	t.Run("Fixed Points Only", func(t *testing.T) {
		cfg := structural.Config{Vars: 3, Parentless: 2, AttractorSizes: []int{1, 1}}
		ts, err := structural.Generate(cfg, rand.New(rand.NewSource(11)))
		require.NoError(t, err)

		res := analysis.Analyze(ts)
		assert.Len(t, res.Parentless, 2)
		assert.Equal(t, []int{1, 1}, res.AttractorSizes())
	})

	t.Run("Single Two Cycle", func(t *testing.T) {
		cfg := structural.Config{Vars: 2, Parentless: 1, AttractorSizes: []int{2}}
		ts, err := structural.Generate(cfg, rand.New(rand.NewSource(5)))
		require.NoError(t, err)

		res := analysis.Analyze(ts)
		assert.Len(t, res.Parentless, 1)
		assert.Equal(t, []int{2}, res.AttractorSizes())
	})
}

func TestGenerate_Infeasible(t *testing.T) {
	cases := []struct {
		name string
		cfg  structural.Config
	}{
		{"Odd Cycle", structural.Config{Vars: 4, AttractorSizes: []int{3}}},
		{"Zero Size Attractor", structural.Config{Vars: 4, AttractorSizes: []int{0}}},
		{"Too Many Vars", structural.Config{Vars: 20, AttractorSizes: []int{2}}},
		{"Zero Vars", structural.Config{AttractorSizes: []int{2}}},
		{"State Space Overflow", structural.Config{Vars: 2, Parentless: 1, AttractorSizes: []int{4}}},
		{"No Transient Left", structural.Config{Vars: 2, Parentless: 2, AttractorSizes: []int{2}}},
		{"Negative Parentless", structural.Config{Vars: 3, Parentless: -1, AttractorSizes: []int{2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := structural.Generate(tc.cfg, rand.New(rand.NewSource(1)))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrStructuralInfeasible)
		})
	}
}
