// SPDX-License-Identifier: MIT
package simplex

import "github.com/katalvlaran/simplex/tableau"

// Pivot performs one Gauss-Jordan elimination step on t, in place, at p:
// the pivot row is divided by the pivot value (normalizing the pivot entry
// to exactly 1), then factor × pivot row is subtracted from every other
// row, zeroing that row's pivot-column entry.
//
// The pivot value must be non-zero; FindPivotElement only ever returns
// cells with a strictly positive value, so this holds by construction.
// Callers keeping a history must Clone t beforehand.
// Complexity: O(rows*cols).
func Pivot(t *tableau.Tableau, p Point) {
	pivotValue := t.At(p.Row, p.Col)
	t.ApplyRow(p.Row, func(value float64) float64 { return value / pivotValue })

	rows, cols := t.Rows(), t.Cols()
	for y := 0; y < rows; y++ {
		if y == p.Row {
			continue
		}

		factor := t.At(y, p.Col)
		for x := 0; x < cols; x++ {
			t.Set(y, x, t.At(y, x)-factor*t.At(p.Row, x))
		}
	}
}
