// SPDX-License-Identifier: MIT
package tableau

import "errors"

// Sentinel errors returned by New. All are matched via errors.Is; New wraps
// them with fmt.Errorf("%w: ...") to attach the numeric context (row count,
// expected/actual column counts, offending row) without breaking matching.
var (
	// ErrNotEnoughRows indicates fewer than two rows: a tableau needs one
	// objective row plus at least one constraint row.
	ErrNotEnoughRows = errors.New("tableau: must have at least two rows")

	// ErrNotEnoughColumns indicates fewer than two columns: at minimum the
	// x0 and RHS columns must be present.
	ErrNotEnoughColumns = errors.New("tableau: must at least have the x0 and RHS columns")

	// ErrUnevenColumns indicates a row whose column count differs from row 0.
	ErrUnevenColumns = errors.New("tableau: all rows must have the same number of columns")

	// ErrNilMatrix indicates a nil gonum matrix was passed to FromDense.
	ErrNilMatrix = errors.New("tableau: matrix is nil")
)
