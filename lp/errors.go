// SPDX-License-Identifier: MIT
package lp

import (
	"errors"
	"fmt"
)

// ErrCompilation is the class sentinel for every failure in this package.
// The specific sentinels below wrap it, so callers can match the class or
// the precise condition with errors.Is.
var ErrCompilation = errors.New("lp: compilation failed")

var (
	// ErrNilModel indicates Compile was handed a nil source model.
	ErrNilModel = wrap("nil source model")

	// ErrNoObjective indicates the source model declared no objective in
	// either formulation.
	ErrNoObjective = wrap("no objective declared")

	// ErrUnboundVariable indicates an expression referenced a variable
	// handle that is not in the variable catalog (a zero handle, or one
	// minted by a different model).
	ErrUnboundVariable = wrap("unbound variable reference")

	// ErrEmptyExpression indicates a compiled row (or the objective) ended
	// up with zero coefficients after summing and cancellation.
	ErrEmptyExpression = wrap("empty linear expression")

	// ErrNotFinite indicates a NaN or ±Inf coefficient or right-hand side.
	ErrNotFinite = wrap("non-finite coefficient")

	// ErrOrphanVariable indicates a declared column that no row and no
	// objective references. WithAllowOrphans downgrades it to a warning.
	ErrOrphanVariable = wrap("orphan variable")

	// ErrInconsistentDims indicates the assembled arrays disagree with the
	// declared dimensions, or triplets are out of range or unsorted.
	ErrInconsistentDims = wrap("inconsistent dimensions")
)

func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrCompilation, msg)
}
