// SPDX-License-Identifier: MIT

// Package render prints simplex tableaus as fixed-width text grids.
//
// Two variants cover the two presentation needs of the solver's history:
//
//   - Grid — the bare tableau: header labels (x0, x1.., RHS), vertical
//     bars isolating the x0 and RHS columns, and a dashed separator
//     beneath the objective row.
//   - Annotated — Grid plus the current solution vector (BV/NBV per
//     column) and the pivot cell the solver would choose next, if any.
//
// Both variants are pure presentation over the same core: they only
// consume a Tableau's row data together with simplex.Vector and
// simplex.FindPivotElement, and never mutate their input.
package render
