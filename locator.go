// SPDX-License-Identifier: MIT
package simplex

import "github.com/katalvlaran/simplex/tableau"

// FindPivotElement locates the next pivot cell of t, or reports why none
// exists. It restricts the objective row to the structural/slack columns
// (skipping x0, dropping RHS) for the column choice, then runs the
// minimum-ratio test over the constraint rows for the row choice; the
// returned Point is shifted back to whole-tableau coordinates.
//
// The Point is meaningful only when the Search is PivotFound.
// Complexity: O(rows + cols).
func FindPivotElement(t *tableau.Tableau) (Point, Search) {
	cols := t.Cols()

	targetRow := t.Row(0)[1 : cols-1] // skip x0 column, cut off RHS column
	pivotColumnIndex, ok := FindPivotColumn(targetRow)
	if !ok {
		return Point{}, NoPivotOptimal
	}
	pivotColumnIndex++ // make up for the x0 column skip

	rows := t.Rows()
	pivotColumn := make([]float64, 0, rows-1)
	rhsColumn := make([]float64, 0, rows-1)
	for y := 1; y < rows; y++ { // skip target row
		pivotColumn = append(pivotColumn, t.At(y, pivotColumnIndex))
		rhsColumn = append(rhsColumn, t.RHS(y))
	}

	pivotRowIndex, ok := FindPivotRow(pivotColumn, rhsColumn)
	if !ok {
		return Point{}, NoPivotUnbounded
	}
	pivotRowIndex++ // make up for the target row skip

	return Point{Col: pivotColumnIndex, Row: pivotRowIndex}, PivotFound
}
