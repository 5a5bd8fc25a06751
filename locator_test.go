// SPDX-License-Identifier: MIT
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex"
	"github.com/katalvlaran/simplex/tableau"
)

// mustTableau builds a tableau or fails the test.
func mustTableau(t *testing.T, rows [][]float64) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(rows)
	require.NoError(t, err)

	return tb
}

// TestFindPivotElement_Found verifies the x0/objective-row skips and the
// coordinate shifts back into whole-tableau indices.
func TestFindPivotElement_Found(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, -3, -2, 0, 0, 0},
		{0, 1, 1, 1, 0, 4},
		{0, 1, 0, 0, 1, 2},
	})

	point, state := simplex.FindPivotElement(tb)
	assert.Equal(t, simplex.PivotFound, state)
	// column -3 enters (index shifted past x0), ratios [4, 2] pick row 2.
	assert.Equal(t, simplex.Point{Col: 1, Row: 2}, point)
}

// TestFindPivotElement_Optimal verifies the optimal signal when the
// objective row carries no negative coefficient outside x0/RHS.
func TestFindPivotElement_Optimal(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, 0, 0, 2, 1, 10},
		{0, 0, 1, 1, -1, 2},
		{0, 1, 0, 0, 1, 2},
	})

	_, state := simplex.FindPivotElement(tb)
	assert.Equal(t, simplex.NoPivotOptimal, state)
}

// TestFindPivotElement_Unbounded verifies the unbounded signal when the
// candidate column has no positive constraint entry.
func TestFindPivotElement_Unbounded(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, -1, 0},
		{0, -1, 5},
	})

	_, state := simplex.FindPivotElement(tb)
	assert.Equal(t, simplex.NoPivotUnbounded, state)
}

// TestFindPivotElement_IgnoresX0AndRHS verifies that negative values in the
// x0 and RHS columns of the objective row never select a pivot column.
func TestFindPivotElement_IgnoresX0AndRHS(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{-1, 0, 2, -5},
		{0, 1, 1, 4},
	})

	_, state := simplex.FindPivotElement(tb)
	assert.Equal(t, simplex.NoPivotOptimal, state,
		"negative x0/RHS entries must not be mistaken for improving columns")
}
