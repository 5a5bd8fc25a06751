// SPDX-License-Identifier: MIT
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/simplex"
	"github.com/katalvlaran/simplex/tableau"
)

// TestOptimize_AgreesWithGonum cross-checks the tabular engine against
// gonum's lp.Simplex on the same problem. The canonical tableau encodes
// x0 = cᵀx + constant with the slack identity already present, so its
// constraint block is exactly the equality form min (-c)ᵀx s.t. Ax=b that
// lp.Simplex consumes, and the final objective-row RHS must equal
// -optF + initial RHS.
func TestOptimize_AgreesWithGonum(t *testing.T) {
	rows := [][]float64{
		{1, -5, -6, 0, 0, 0, -7},
		{0, 10, 10, 1, 0, 0, 40},
		{0, 10, 20, 0, 1, 0, 60},
		{0, 1, 0, 0, 0, 1, 3},
	}

	tb, err := tableau.New(rows)
	require.NoError(t, err)
	initialRHS := tb.RHS(0)

	result, history, err := simplex.Optimize(tb, nil)
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, result)

	// Strip x0 and RHS off the constraint block for gonum.
	c := rows[0][1 : len(rows[0])-1]
	b := make([]float64, 0, len(rows)-1)
	aData := make([]float64, 0, (len(rows)-1)*len(c))
	for _, row := range rows[1:] {
		aData = append(aData, row[1:len(row)-1]...)
		b = append(b, row[len(row)-1])
	}
	a := mat.NewDense(len(rows)-1, len(c), aData)

	optF, optX, err := lp.Simplex(c, a, b, 0, nil)
	require.NoError(t, err)

	final := history[len(history)-1]
	assert.InDelta(t, -optF+initialRHS, final.RHS(0), 1e-9,
		"both engines must agree on the optimal objective value")

	vector := simplex.Vector(final)
	assert.InDelta(t, optX[0], vector[1].Value, 1e-9, "x1 must agree")
	assert.InDelta(t, optX[1], vector[2].Value, 1e-9, "x2 must agree")
}
