// SPDX-License-Identifier: MIT
package tableau

import "fmt"

// Tableau is a validated row-major matrix holding one simplex iteration's
// state. Column 0 carries the objective-row auxiliary variable (x0), the
// last column carries the right-hand side (RHS), and everything in between
// is a structural or slack variable. Row 0 is the objective ("target") row;
// rows 1..m are constraint rows.
//
// A Tableau is created once (validated) and afterwards only cloned and
// mutated; callers that keep a history of iterations must Clone before
// mutating so earlier snapshots stay intact.
//
// Index arguments to At, Set, Row, Column, RHS and the Apply* transforms
// must be in range; violating that is a programmer error and panics via the
// underlying slice access. Construction is the only operation that can fail.
type Tableau struct {
	rows [][]float64
}

// New validates rows and wraps them, unchanged, into a Tableau.
//
// Validation (in order):
//   - at least 2 rows → ErrNotEnoughRows (wrapped with the actual count),
//   - at least 2 columns in row 0 → ErrNotEnoughColumns,
//   - every row as wide as row 0 → ErrUnevenColumns (wrapped with the
//     expected width, the 1-based offending row and its actual width).
//
// The given slices are adopted, not copied; the caller hands over ownership.
// Complexity: O(rows).
func New(rows [][]float64) (*Tableau, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: current tableau has %d rows", ErrNotEnoughRows, len(rows))
	}

	columns := len(rows[0])
	if columns < 2 {
		return nil, ErrNotEnoughColumns
	}

	for index, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: first row has %d columns, but row %d has %d columns",
				ErrUnevenColumns, columns, index+1, len(row))
		}
	}

	return &Tableau{rows: rows}, nil
}

// Rows returns the number of rows (objective row included).
// Complexity: O(1).
func (t *Tableau) Rows() int { return len(t.rows) }

// Cols returns the number of columns (x0 and RHS included).
// Complexity: O(1).
func (t *Tableau) Cols() int { return len(t.rows[0]) }

// At returns the cell value at (row, col).
// Complexity: O(1).
func (t *Tableau) At(row, col int) float64 { return t.rows[row][col] }

// Set assigns v to the cell at (row, col).
// Complexity: O(1).
func (t *Tableau) Set(row, col int, v float64) { t.rows[row][col] = v }

// Row returns a copy of row i. Mutating the returned slice does not affect
// the Tableau.
// Complexity: O(cols).
func (t *Tableau) Row(i int) []float64 {
	row := make([]float64, len(t.rows[i]))
	copy(row, t.rows[i])

	return row
}

// Column returns a copy of column j, top to bottom.
// Complexity: O(rows).
func (t *Tableau) Column(j int) []float64 {
	column := make([]float64, len(t.rows))
	for i, row := range t.rows {
		column[i] = row[j]
	}

	return column
}

// RHS returns the right-hand-side value of the given row.
// Complexity: O(1).
func (t *Tableau) RHS(row int) float64 {
	return t.rows[row][len(t.rows[row])-1]
}

// Clone returns a deep copy; the copy shares no storage with the original.
// Complexity: O(rows*cols).
func (t *Tableau) Clone() *Tableau {
	rows := make([][]float64, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]float64, len(row))
		copy(rows[i], row)
	}

	return &Tableau{rows: rows}
}

// Apply replaces every cell with fn(cell), in place, row by row.
// Complexity: O(rows*cols).
func (t *Tableau) Apply(fn func(float64) float64) {
	for _, row := range t.rows {
		for x, cell := range row {
			row[x] = fn(cell)
		}
	}
}

// ApplyRow replaces every cell of row i with fn(cell), in place.
// Complexity: O(cols).
func (t *Tableau) ApplyRow(i int, fn func(float64) float64) {
	row := t.rows[i]
	for x, cell := range row {
		row[x] = fn(cell)
	}
}

// ApplyColumn replaces every cell of column j with fn(cell), in place.
// Complexity: O(rows).
func (t *Tableau) ApplyColumn(j int, fn func(float64) float64) {
	for _, row := range t.rows {
		row[j] = fn(row[j])
	}
}
