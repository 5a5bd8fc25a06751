// SPDX-License-Identifier: MIT
package simplex

import "math"

// FindPivotColumn selects the entering variable from the objective row's
// coefficients, already restricted to structural/slack columns (x0 and RHS
// excluded). It implements Dantzig's most-negative-coefficient rule: the
// minimum is located with a strict-< fold, and if it is >= 0 there is no
// pivot column (the tableau is optimal). Ties break leftmost, found by
// exact float equality against the minimum — this is not Bland's rule.
// Complexity: O(len(row)).
func FindPivotColumn(row []float64) (int, bool) {
	minValue := math.Inf(1)
	for _, value := range row {
		if value < minValue {
			minValue = value
		}
	}

	if minValue >= 0 {
		return 0, false
	}

	for index, value := range row {
		if value == minValue {
			return index, true
		}
	}

	// Unreachable: the minimum was read from the same slice.
	return 0, false
}

// FindPivotRow selects the leaving variable via the minimum-ratio test.
// pivotColumn and rhsColumn hold the candidate column's and the RHS
// column's values for the constraint rows only (objective row excluded).
// If no pivot-column entry is > 0 there is no pivot row: the entering
// variable can grow without bound (unbounded problem). Otherwise each row's
// ratio is RHS/value when value > 0 and +Inf otherwise, and the first row
// attaining the minimum ratio wins (topmost tie-break, exact equality).
// Complexity: O(len(pivotColumn)).
func FindPivotRow(pivotColumn, rhsColumn []float64) (int, bool) {
	maxValue := math.Inf(-1)
	for _, value := range pivotColumn {
		if value > maxValue {
			maxValue = value
		}
	}

	if maxValue <= 0 {
		return 0, false
	}

	quotients := make([]float64, len(pivotColumn))
	for index, value := range pivotColumn {
		if value > 0 {
			quotients[index] = rhsColumn[index] / value
		} else {
			quotients[index] = math.Inf(1)
		}
	}

	minQuotient := math.Inf(1)
	for _, quotient := range quotients {
		if quotient < minQuotient {
			minQuotient = quotient
		}
	}

	for index, quotient := range quotients {
		if quotient == minQuotient {
			return index, true
		}
	}

	// Unreachable: the minimum was read from the same slice.
	return 0, false
}
