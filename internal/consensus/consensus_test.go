package consensus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/consensus"
)

func TestOutcome_Unanimous(t *testing.T) {
	outcome, err := consensus.Outcome([]int{20, 20, 20})
	require.NoError(t, err)
	assert.Equal(t, 20, outcome)
}

func TestOutcome_SingleVerdict(t *testing.T) {
	outcome, err := consensus.Outcome([]int{99})
	require.NoError(t, err)
	assert.Equal(t, 99, outcome)
}

func TestOutcome_Disagreement(t *testing.T) {
	outcome, err := consensus.Outcome([]int{10, 99})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome)
}

func TestOutcome_Empty(t *testing.T) {
	_, err := consensus.Outcome(nil)
	assert.ErrorIs(t, err, consensus.ErrNoVerdicts)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		outcome int
		action  consensus.Action
	}{
		{99, consensus.ActionAbsolve},
		{91, consensus.ActionAbsolve},
		{20, consensus.ActionDeleteAndBan},
		{29, consensus.ActionDeleteAndBan},
		{10, consensus.ActionDelete},
		{19, consensus.ActionDelete},
		{0, consensus.ActionReopen},
		{90, consensus.ActionUnknown},
		{30, consensus.ActionUnknown},
		{5, consensus.ActionUnknown},
		{-1, consensus.ActionUnknown},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.action, consensus.ActionFor(tc.outcome), "outcome %d", tc.outcome)
	}
}
