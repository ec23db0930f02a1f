package plates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymplates/internal/plates"
)

func TestSolveForDeadlift_BaseAlreadyHasTen(t *testing.T) {
	inventory := plates.Inventory{
		{Weight: 45, Quantity: 0},
		{Weight: 10, Quantity: 4},
		{Weight: 5, Quantity: 4},
	}

	sol, err := plates.SolveForDeadlift(155, 45, inventory)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 5, 5}, sol.Plates)
	assert.Equal(t, 25.0, sol.Residual)

	sol, err = plates.SolveForDeadlift(135, 45, plates.Inventory{
		{Weight: 45, Quantity: 0},
		{Weight: 10, Quantity: 4},
		{Weight: 5, Quantity: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10}, sol.Plates)
	assert.Equal(t, 25.0, sol.Residual)
}

func TestSolveForDeadlift_BaseAlreadyHasFortyFive(t *testing.T) {
	base, err := plates.Solve(225, 45, nil)
	require.NoError(t, err)

	sol, err := plates.SolveForDeadlift(225, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, base, sol)
	assert.Equal(t, []float64{45, 45}, sol.Plates)
}

func TestSolveForDeadlift_ForcesTen(t *testing.T) {
	// regular loadout would be a single 35
	sol, err := plates.SolveForDeadlift(115, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 25}, sol.Plates)
	assert.Zero(t, sol.Residual)
	assert.True(t, sol.Exact())
	assert.Equal(t, 115.0, sol.Loaded(45))
}

func TestSolveForDeadlift_FillSkipsTens(t *testing.T) {
	inventory := plates.Inventory{
		{Weight: 25, Quantity: 2},
		{Weight: 10, Quantity: 4},
		{Weight: 5, Quantity: 2},
	}

	base, err := plates.Solve(105, 45, inventory)
	require.NoError(t, err)
	require.Equal(t, []float64{25, 5}, base.Plates)

	sol, err := plates.SolveForDeadlift(105, 45, inventory)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 5}, sol.Plates)
	assert.Equal(t, 15.0, sol.Residual)
	assert.False(t, sol.Exact())
}

func TestSolveForDeadlift_NoPairOfTens(t *testing.T) {
	for _, inventory := range []plates.Inventory{
		{{Weight: 25, Quantity: 2}, {Weight: 5, Quantity: 2}},
		{{Weight: 25, Quantity: 2}, {Weight: 10, Quantity: 1}, {Weight: 5, Quantity: 2}},
	} {
		base, err := plates.Solve(105, 45, inventory)
		require.NoError(t, err)

		sol, err := plates.SolveForDeadlift(105, 45, inventory)
		require.NoError(t, err)
		assert.Equal(t, base, sol)
		assert.Equal(t, []float64{25, 5}, sol.Plates)
	}
}

func TestSolveForDeadlift_BarOnlyStillGetsTen(t *testing.T) {
	sol, err := plates.SolveForDeadlift(45, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, sol.Plates)
	assert.Equal(t, -10.0, sol.Residual)
	assert.False(t, sol.Exact())
	assert.Equal(t, 65.0, sol.Loaded(45))
}

func TestSolveForDeadlift_TotalUnderBar(t *testing.T) {
	sol, err := plates.SolveForDeadlift(30, 45, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, sol.Plates)
	assert.Equal(t, -17.5, sol.Residual)
	assert.False(t, sol.Exact())
	assert.Equal(t, 65.0, sol.Loaded(45))
}
