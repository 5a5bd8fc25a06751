// SPDX-License-Identifier: MIT
package simplex

import "strconv"

// Point identifies the pivot cell as zero-based (column, row) coordinates
// into a Tableau. Transient: produced and consumed within one iteration.
type Point struct {
	Col int
	Row int
}

// Search classifies the outcome of FindPivotElement.
type Search int

const (
	// PivotFound — a pivot cell was located; iteration continues.
	PivotFound Search = iota

	// NoPivotOptimal — the objective row has no negative coefficient
	// outside the x0 and RHS columns; the tableau is optimal.
	NoPivotOptimal

	// NoPivotUnbounded — the candidate pivot column has no positive entry;
	// nothing bounds growth of the entering variable.
	NoPivotUnbounded
)

// Result classifies a finished solve.
type Result int

const (
	// Optimal — a unique optimum was reached.
	Optimal Result = iota

	// MultipleOptimal — the optimum is degenerate; the history additionally
	// contains one alternate optimal vertex as its last entry.
	MultipleOptimal

	// Unbounded — the objective can grow without bound.
	Unbounded
)

// String returns the literal status label for r.
func (r Result) String() string {
	switch r {
	case Optimal:
		return "Optimal"
	case MultipleOptimal:
		return "Multiple optimal solutions. Check out both last tableaus."
	case Unbounded:
		return "Unbounded"
	default:
		return "Unknown"
	}
}

// Variable is one entry of the solution vector: Basic with its RHS
// contribution, or nonbasic with value 0.
type Variable struct {
	Basic bool
	Value float64
}

// String renders the variable as BV(value) or NBV(value).
func (v Variable) String() string {
	value := strconv.FormatFloat(v.Value, 'g', -1, 64)
	if v.Basic {
		return "BV(" + value + ")"
	}

	return "NBV(" + value + ")"
}
