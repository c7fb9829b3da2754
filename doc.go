// Package linform turns small algebraic linear-programming models into
// canonical matrix form and hands them to a solver: declare index sets,
// parameters, variables and equation families, then compile and solve.
//
// The pipeline:
//
//	declare → compile (expand) → assemble → solve → report
//
// A model is written symbolically: ordered label sets (feeds, components),
// numeric parameters keyed by those sets, variable groups indexed over
// them, and equation families that act as row templates. Compilation
// expands every family into concrete rows, validates each reference, and
// assembles a sparse canonical form (objective vector, triplet matrix,
// row/column bounds) with deterministic row and column ordering. A solver
// adapter consumes the canonical form; reports come back keyed by the
// original labels, never by column index.
//
// Everything is organized under four subpackages plus one command:
//
//	model/       — index sets, parameter store, variable catalog, expressions, equation families
//	lp/          — equation compiler + matrix assembler: the canonical Model, validation, LP text writer
//	solver/      — solver boundary: Status/Result, the dense-simplex backend (gonum), label-keyed reports
//	blend/       — resource-blending wrapper: Problem → Model → Plan
//	cmd/linform/ — CLI: JSON instance in, JSON solution (with timing & system info) out
//
// Quick sketch of the driving use case — blend three feeds at minimum
// cost while meeting per-component content floors:
//
//	min  Σ cost(f)·x(f)
//	s.t. Σ x(f)                  =  totalBlend
//	     Σ content(f,c)·x(f)     ≥  reqMin(c)·totalBlend   ∀ c
//	     x(f) ≥ 0
//
// Missing data never becomes an implicit zero: a parameter lookup that
// finds nothing aborts compilation with a hard error.
//
//	go get github.com/maroveq/linform
package linform
