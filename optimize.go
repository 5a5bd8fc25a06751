// SPDX-License-Identifier: MIT
package simplex

import (
	"fmt"

	"github.com/katalvlaran/simplex/tableau"
)

// Optimize drives the simplex iteration loop on t until a terminal state is
// reached, returning the classification and the full history of snapshots:
// history[0] is the input tableau, each further entry the result of one
// pivot. Snapshots are never mutated once appended — every pivot operates
// on a clone of the last entry.
//
// When the objective row shows no improving column, a one-shot degeneracy
// check runs: if some nonbasic column carries an objective coefficient of
// exactly zero, an alternate optimal vertex exists; one extra pivot into
// that vertex is appended and the result is MultipleOptimal. Otherwise the
// result is Optimal. A candidate column without positive constraint entries
// terminates as Unbounded immediately.
//
// opts may be nil, meaning DefaultOptions. With MaxPivots > 0 the loop
// stops after that many pivots and returns ErrPivotLimit together with the
// partial history; the Result is meaningful only when err is nil. Without
// the guard the loop has no iteration cap and inherits Dantzig's
// theoretical cycling risk on degenerate inputs.
func Optimize(t *tableau.Tableau, opts *Options) (Result, []*tableau.Tableau, error) {
	maxPivots := 0
	if opts != nil {
		maxPivots = opts.MaxPivots
	}

	tableaus := []*tableau.Tableau{t}
	pivots := 0

	for {
		last := tableaus[len(tableaus)-1]

		point, state := FindPivotElement(last)
		switch state {
		case NoPivotUnbounded:
			return Unbounded, tableaus, nil

		case NoPivotOptimal:
			alternate, degenerate := alternateColumn(last)
			if !degenerate {
				return Optimal, tableaus, nil
			}

			rows := last.Rows()
			pivotColumn := make([]float64, 0, rows-1)
			rhsColumn := make([]float64, 0, rows-1)
			for y := 1; y < rows; y++ { // skip target row
				pivotColumn = append(pivotColumn, last.At(y, alternate))
				rhsColumn = append(rhsColumn, last.RHS(y))
			}

			pivotRow, ok := FindPivotRow(pivotColumn, rhsColumn)
			if !ok {
				// Unreachable: an optimal tableau is bounded along any
				// zero-cost direction, so the ratio test must succeed.
				return Optimal, tableaus, nil
			}

			next := last.Clone()
			Pivot(next, Point{Col: alternate, Row: pivotRow + 1})

			return MultipleOptimal, append(tableaus, next), nil
		}

		if maxPivots > 0 && pivots == maxPivots {
			return Optimal, tableaus, fmt.Errorf("%w after %d pivots", ErrPivotLimit, pivots)
		}

		next := last.Clone()
		Pivot(next, point)
		tableaus = append(tableaus, next)
		pivots++
	}
}

// alternateColumn finds the first nonbasic column whose objective-row
// coefficient is exactly 0.0 — the degeneracy witness admitting an
// alternate optimal vertex. The vector index doubles as the column index
// because Vector covers every non-RHS column in order.
func alternateColumn(t *tableau.Tableau) (int, bool) {
	for index, variable := range Vector(t) {
		if !variable.Basic && t.At(0, index) == 0.0 {
			return index, true
		}
	}

	return 0, false
}
