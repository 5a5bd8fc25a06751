// Package simplex solves linear programs given in canonical tableau form
// with the tabular (Dantzig) simplex method, keeping every intermediate
// tableau so each iteration stays independently inspectable.
//
// 🚀 What is simplex?
//
//	A small, deterministic pivoting engine built around one container:
//		• tableau/     — validated matrix container (x0 | variables | RHS)
//		• FindPivotColumn / FindPivotRow — entering & leaving selection
//		• FindPivotElement — pivot-cell location over a whole tableau
//		• Pivot        — in-place Gauss-Jordan elimination step
//		• Vector       — current basic feasible solution (BV/NBV per column)
//		• Optimize     — iteration loop, history & termination classification
//		• render/      — fixed-width tableau printing (plain & annotated)
//		• cmd/simplex/ — demo CLI driver
//
// ✨ Guarantees:
//
//   - Deterministic — Dantzig's most-negative rule with leftmost ties,
//     minimum-ratio test with topmost ties, no randomness, no time.
//   - Exact — tie-breaks and basic-column detection compare floats for
//     exact equality, never against a tolerance.
//   - Immutable history — every pivot operates on a clone; a snapshot
//     already in the history is never touched again.
//
// ⚙️ Usage:
//
//	t, err := tableau.New([][]float64{
//	  {1, -3, -2, 0, 0, 0},
//	  {0, 1, 1, 1, 0, 4},
//	  {0, 1, 0, 0, 1, 2},
//	})
//	if err != nil { ... }
//
//	result, history, err := simplex.Optimize(t, nil)
//	// result ∈ {Optimal, MultipleOptimal, Unbounded}
//	// history[0] is the input, each further entry one pivot later.
//
// The input must already be canonical (identity sub-basis present): the
// package deliberately does not introduce slack or artificial variables,
// and it implements no two-phase / Big-M bootstrapping and no anti-cycling
// rule beyond the one-shot degeneracy check at the optimal tableau. An
// optional Options.MaxPivots guard bounds execution externally.
package simplex
