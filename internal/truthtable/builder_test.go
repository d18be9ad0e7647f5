package truthtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boolnet/internal/truthtable"
	"github.com/aretw0/boolnet/pkg/domain"
)

func TestFromTransitions(t *testing.T) {
	ts := domain.TransitionSet{
		"00": {"01", "10"},
		"01": {"11"},
		"10": {"00"},
		"11": {"01"},
	}

	tt, err := truthtable.FromTransitions(ts)
	require.NoError(t, err)
	require.Len(t, tt, 4)

	// Every entry answers "what if this variable fires", so it is always the
	// flipped state, including where the set realized no such edge.
	assert.Equal(t, domain.State("10"), tt["00"]["x1"])
	assert.Equal(t, domain.State("01"), tt["00"]["x2"])
	assert.Equal(t, domain.State("11"), tt["01"]["x1"])
	assert.Equal(t, domain.State("00"), tt["01"]["x2"])
	assert.Equal(t, domain.State("00"), tt["10"]["x1"])
	assert.Equal(t, domain.State("11"), tt["10"]["x2"])
	assert.Equal(t, domain.State("01"), tt["11"]["x1"])
	assert.Equal(t, domain.State("10"), tt["11"]["x2"])
}

func TestFromTransitions_CoversUnlistedStates(t *testing.T) {
	// A sparse set still yields a complete table over the state space.
	ts := domain.TransitionSet{"00": {"01"}}

	tt, err := truthtable.FromTransitions(ts)
	require.NoError(t, err)
	assert.Len(t, tt, 4)
	assert.Equal(t, domain.State("01"), tt["11"]["x1"])
}

func TestFromTransitions_Errors(t *testing.T) {
	t.Run("Empty Set", func(t *testing.T) {
		_, err := truthtable.FromTransitions(domain.TransitionSet{})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Invalid Transition", func(t *testing.T) {
		ts := domain.TransitionSet{"00": {"11"}}
		_, err := truthtable.FromTransitions(ts)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestFromFunctions(t *testing.T) {
	// x1' = x2, x2' = ~x1
	fs := domain.FunctionSet{
		"x1": {Terms: []domain.Term{{{Var: 1}}}},
		"x2": {Terms: []domain.Term{{{Var: 0, Negated: true}}}},
	}

	tt, err := truthtable.FromFunctions(fs)
	require.NoError(t, err)
	require.Len(t, tt, 4)

	// At "00": x1'=0 confirms bit 0 (self); x2'=1 flips bit 1.
	assert.Equal(t, domain.State("00"), tt["00"]["x1"])
	assert.Equal(t, domain.State("01"), tt["00"]["x2"])

	// At "11": x1'=1 confirms; x2'=0 flips.
	assert.Equal(t, domain.State("11"), tt["11"]["x1"])
	assert.Equal(t, domain.State("10"), tt["11"]["x2"])

	// At "10": x1'=0 flips bit 0; x2'=0 confirms bit 1.
	assert.Equal(t, domain.State("00"), tt["10"]["x1"])
	assert.Equal(t, domain.State("10"), tt["10"]["x2"])
}

func TestFromFunctions_Errors(t *testing.T) {
	t.Run("Empty Set", func(t *testing.T) {
		_, err := truthtable.FromFunctions(domain.FunctionSet{})
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})

	t.Run("Bad Names", func(t *testing.T) {
		fs := domain.FunctionSet{"x2": domain.ConstTrue()}
		_, err := truthtable.FromFunctions(fs)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}
