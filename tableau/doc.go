// SPDX-License-Identifier: MIT

// Package tableau provides the validated matrix container underlying the
// tabular simplex method: one Tableau per iteration, with the objective
// ("target") row on top, the x0 column on the left and the RHS column on
// the right.
//
// Guarantees established at construction and never violated afterwards:
//   - at least two rows (objective + one constraint),
//   - at least two columns (x0 + RHS),
//   - every row as wide as the first.
//
// Because of those invariants, every other operation on a Tableau is total:
// no index computed by the solver can go out of bounds, and no construction
// of a partial tableau is possible. Construction failures are reported as
// sentinel errors (ErrNotEnoughRows, ErrNotEnoughColumns, ErrUnevenColumns)
// wrapped with their numeric context; match them with errors.Is.
//
// Tableaus follow value semantics: Clone before mutating whenever the prior
// state must survive, e.g. when recording an iteration history. The Apply,
// ApplyRow and ApplyColumn transforms mutate in place and are the building
// blocks of the Gauss-Jordan pivot step.
//
// FromDense / Dense adapt between Tableau and gonum's mat.Dense.
package tableau
