// SPDX-License-Identifier: MIT

// Package lp compiles a declared model.Model into canonical matrix form:
// a dense objective vector, a sparse constraint matrix in sorted triplet
// form, and explicit row/column bounds. The canonical Model is what solver
// adapters consume.
//
// Compilation is one deterministic pass:
//
//  1. The variable catalog becomes columns 0..n-1 (declaration order).
//  2. The objective is accumulated: either a direct expression or a
//     flagged free objective variable with its defining row.
//  3. Equation families expand in declaration order: a governed family
//     emits one row per label of its set (declared label order), an
//     ungoverned family emits exactly one row. Duplicate contributions to
//     the same (row, column) sum; coefficients that cancel to zero are
//     dropped; a row left with no coefficients fails compilation.
//  4. Orphan columns (referenced by no row and not by the objective)
//     fail compilation unless WithAllowOrphans turned them into warnings.
//  5. The assembled model is validated structurally before it is returned.
//
// Bounds use IEEE ±Inf for unbounded sides. No finite "big" sentinel
// appears anywhere in the canonical form; if a solver backend needs one,
// its adapter materializes it at that boundary.
//
// Same-input determinism: compiling the same model twice yields identical
// output, and row/column ordering never depends on map iteration.
//
// Errors wrap the class sentinel ErrCompilation; declaration errors
// raised inside family closures (such as model.ErrMissingValue) propagate
// with family and label context and still match via errors.Is.
package lp
