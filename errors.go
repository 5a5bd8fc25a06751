// SPDX-License-Identifier: MIT
package simplex

import "errors"

// ErrPivotLimit is returned by Optimize when Options.MaxPivots is set and
// the loop performed that many pivots without reaching a terminal state.
// The history collected so far is still returned alongside it.
var ErrPivotLimit = errors.New("simplex: pivot limit exceeded")
