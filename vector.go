// SPDX-License-Identifier: MIT
package simplex

import "github.com/katalvlaran/simplex/tableau"

// Vector reads the current basic feasible solution off t: one Variable per
// non-RHS column (x0 included), in column order.
//
// A column counts as basic when its values sum to exactly 1.0 — a
// structural-form heuristic: every basic column produced by this pivoting
// procedure is a unit vector, which trivially sums to 1. The basic value is
// the RHS of the first row whose entry equals exactly 1.0. The heuristic is
// not a general basis test; a pathological non-unit column that happens to
// sum to 1 would be misread, but the pivot procedure never produces one
// from a valid initial basis. A sum-to-1 column without any exact 1.0 entry
// is reported nonbasic rather than guessing a row.
// Complexity: O(rows*cols).
func Vector(t *tableau.Tableau) []Variable {
	rows, cols := t.Rows(), t.Cols()
	vector := make([]Variable, 0, cols-1)

	for x := 0; x < cols-1; x++ {
		accumulated := 0.0
		for y := 0; y < rows; y++ {
			accumulated += t.At(y, x)
		}

		if accumulated != 1.0 {
			vector = append(vector, Variable{})
			continue
		}

		basic := Variable{}
		for y := 0; y < rows; y++ {
			if t.At(y, x) == 1.0 {
				basic = Variable{Basic: true, Value: t.RHS(y)}
				break
			}
		}
		vector = append(vector, basic)
	}

	return vector
}
