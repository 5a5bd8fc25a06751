// SPDX-License-Identifier: MIT
package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplex/render"
	"github.com/katalvlaran/simplex/tableau"
)

// mustTableau builds a tableau or fails the test.
func mustTableau(t *testing.T, rows [][]float64) *tableau.Tableau {
	t.Helper()
	tb, err := tableau.New(rows)
	require.NoError(t, err)

	return tb
}

// TestGrid_Layout verifies header labels, bar placement, right alignment
// and the separator beneath the objective row.
func TestGrid_Layout(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, -5, -6, 0, 0, 0, -7},
		{0, 10, 10, 1, 0, 0, 40},
		{0, 10, 20, 0, 1, 0, 60},
		{0, 1, 0, 0, 0, 1, 3},
	})

	lines := strings.Split(strings.TrimRight(render.Grid(tb), "\n"), "\n")
	require.Len(t, lines, 6, "header, objective row, separator, three constraint rows")

	assert.Equal(t, "x0 | x1  x2  x3  x4  x5 | RHS", lines[0])
	assert.Equal(t, " 1 | -5  -6   0   0   0 |  -7", lines[1])
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[2])
	assert.Equal(t, " 0 | 10  10   1   0   0 |  40", lines[3])
	assert.Equal(t, " 0 | 10  20   0   1   0 |  60", lines[4])
	assert.Equal(t, " 0 |  1   0   0   0   1 |   3", lines[5])
}

// TestGrid_MinimalTableau verifies rendering with no structural columns at
// all (just x0 and RHS).
func TestGrid_MinimalTableau(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, 5},
		{0, 2},
	})

	lines := strings.Split(strings.TrimRight(render.Grid(tb), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "x0 | RHS", lines[0])
	assert.Equal(t, " 1 |   5", lines[1])
	assert.Equal(t, "--------", lines[2])
	assert.Equal(t, " 0 |   2", lines[3])
}

// TestGrid_FractionalCells verifies shortest-exact cell formatting.
func TestGrid_FractionalCells(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, -0.5, 0},
		{0, 0.25, 4},
	})

	out := render.Grid(tb)
	assert.Contains(t, out, "-0.5")
	assert.Contains(t, out, "0.25")
}

// TestAnnotated_VectorAndPivot verifies the two annotation lines on a
// tableau that still has a pivot ahead.
func TestAnnotated_VectorAndPivot(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, -3, -2, 0, 0, 0},
		{0, 1, 1, 1, 0, 4},
		{0, 1, 0, 0, 1, 2},
	})

	out := render.Annotated(tb)
	assert.Contains(t, out, "vector: BV(0) NBV(0) NBV(0) BV(4) BV(2)")
	assert.Contains(t, out, "pivot: column 1, row 2")
}

// TestAnnotated_NoPivotLine verifies the pivot annotation is omitted on an
// optimal tableau.
func TestAnnotated_NoPivotLine(t *testing.T) {
	tb := mustTableau(t, [][]float64{
		{1, 2, 3, 10},
		{0, 1, 0, 4},
	})

	out := render.Annotated(tb)
	assert.Contains(t, out, "vector:")
	assert.NotContains(t, out, "pivot:", "no pivot exists on an optimal tableau")
}
