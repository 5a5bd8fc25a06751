// SPDX-License-Identifier: MIT
// Package tableau: adapters between Tableau and gonum/mat, so models
// assembled with gonum flow into the solver and solved snapshots flow back
// out for downstream linear algebra.
package tableau

import "gonum.org/v1/gonum/mat"

// FromDense copies the contents of m into a new, validated Tableau.
// The matrix layout must already be canonical: column 0 = x0, last
// column = RHS, row 0 = objective row. Returns ErrNilMatrix for a nil
// matrix, otherwise the same validation errors as New.
// Complexity: O(rows*cols).
func FromDense(m mat.Matrix) (*Tableau, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}

	return New(rows)
}

// Dense copies the Tableau into a fresh *mat.Dense. The result shares no
// storage with the Tableau.
// Complexity: O(rows*cols).
func (t *Tableau) Dense() *mat.Dense {
	r, c := t.Rows(), t.Cols()
	data := make([]float64, 0, r*c)
	for _, row := range t.rows {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}
