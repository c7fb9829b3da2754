// SPDX-License-Identifier: MIT
package model

import (
	"errors"
	"fmt"
)

// ErrDefinition is the class sentinel for every declaration failure in this
// package. Each specific sentinel below wraps it, so both
// errors.Is(err, model.ErrDefinition) and the precise condition match.
var ErrDefinition = errors.New("model: invalid definition")

var (
	// ErrDuplicateLabel indicates a label appeared twice in one set definition.
	ErrDuplicateLabel = wrap("duplicate label")

	// ErrUnknownLabel indicates a label that is not a member of the set.
	ErrUnknownLabel = wrap("unknown label")

	// ErrSetInUse indicates an attempt to redefine a set after a parameter,
	// variable group, or equation family has referenced it.
	ErrSetInUse = wrap("set already in use")

	// ErrUnknownSet indicates a *Set that was not defined in this model
	// (nil, or obtained from a different Model).
	ErrUnknownSet = wrap("set not defined in this model")

	// ErrEmptySet indicates a set definition with no labels.
	ErrEmptySet = wrap("set has no labels")

	// ErrEmptyName indicates a blank set, parameter, variable, or family name.
	ErrEmptyName = wrap("empty name")

	// ErrDuplicateName indicates the name is already taken in its namespace.
	ErrDuplicateName = wrap("name already declared")

	// ErrArity indicates a parameter keyed by more than two index sets.
	ErrArity = wrap("parameter arity above two")

	// ErrInvalidKey indicates a parameter key tuple of the wrong length, or
	// one whose labels are not members of the owning sets.
	ErrInvalidKey = wrap("invalid parameter key")

	// ErrMissingValue indicates a well-formed key whose value was never set.
	// Lookups never substitute zero for absent data.
	ErrMissingValue = wrap("missing parameter value")

	// ErrBadValue indicates NaN (or, for parameter values, ±Inf) where a
	// finite number is required.
	ErrBadValue = wrap("non-finite value")

	// ErrNonMonotonicBounds indicates a variable declared with lower > upper.
	ErrNonMonotonicBounds = wrap("lower bound exceeds upper bound")

	// ErrBadFamily indicates an equation family with no LHS template, an
	// unknown relation, or an objective referencing an unsuitable family.
	ErrBadFamily = wrap("malformed equation family")

	// ErrUnknownVariable indicates a variable handle that does not belong to
	// this model's catalog.
	ErrUnknownVariable = wrap("variable not declared")
)

// wrap chains a specific condition onto the package class sentinel.
func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrDefinition, msg)
}
