// Package model is the declaration layer of linform: ordered index sets,
// numeric parameters keyed by those sets, decision-variable groups, linear
// expressions, and equation families written as symbolic row templates.
//
// A Model is a plain registry: no goroutines, no locks, no I/O. Build it
// in one goroutine, then hand it to lp.Compile, which treats it as frozen.
//
// Three rules shape the API:
//
//   - Declared order is meaning. Set labels keep the order they were
//     defined in; variable columns and expanded rows follow that order.
//     Nothing here ever iterates a map to produce output.
//   - Missing data is an error, not a zero. Param.Get on an absent key
//     returns ErrMissingValue; compilation aborts rather than guessing.
//   - Referenced sets freeze. Once a set is used by a parameter, variable
//     group, or family, redefining it fails with ErrSetInUse.
//
// All failure modes are sentinel errors wrapping ErrDefinition, so callers
// can match the class or the specific condition with errors.Is.
//
// Errors:
//
//	ErrDuplicateLabel     - repeated label in a set definition.
//	ErrUnknownLabel       - label not present in the set.
//	ErrSetInUse           - redefinition of a set after first use.
//	ErrUnknownSet         - set does not belong to this model.
//	ErrEmptySet           - set defined with zero labels.
//	ErrEmptyName          - blank identifier.
//	ErrDuplicateName      - identifier already declared in its namespace.
//	ErrArity              - parameter keyed by more than two sets.
//	ErrInvalidKey         - malformed parameter key tuple.
//	ErrMissingValue       - parameter value never set for the key.
//	ErrBadValue           - non-finite value where a finite one is required.
//	ErrNonMonotonicBounds - lower bound exceeds upper bound.
//	ErrBadFamily          - malformed equation family.
//	ErrUnknownVariable    - variable handle not declared in this model.
package model
