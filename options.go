// SPDX-License-Identifier: MIT
package simplex

// Options configures Optimize.
//
// Fields:
//   - MaxPivots — upper bound on the number of pivots performed before
//     Optimize gives up with ErrPivotLimit. Dantzig's rule with leftmost
//     tie-breaking carries no anti-cycling guarantee, so degenerate inputs
//     can cycle forever; the guard is the supported way to bound execution
//     externally. 0 (the default) means no bound.
type Options struct {
	MaxPivots int
}

// DefaultOptions returns the documented defaults: no pivot bound.
func DefaultOptions() Options {
	return Options{MaxPivots: 0}
}
