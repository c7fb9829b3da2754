// Package solver is the boundary between canonical LP models and actual
// optimization backends, plus the reporting layer that keys solutions by
// the original labels.
//
// Solve outcomes travel as values: Result.Status is one of optimal,
// infeasible, unbounded, or error. The Go error return of Solver.Solve is
// reserved for contract violations (a nil or structurally invalid model),
// never for "the LP had no solution".
//
// The bundled backend, Simplex, runs the dense simplex method from
// gonum.org/v1/gonum/optimize/convex/lp. It converts the canonical form
// (two-sided rows, column bounds, ±Inf) into the standard form the backend
// expects, solves, and folds the split variables back into the original
// columns. It exposes no dual values, so Result.RowDuals stays nil.
package solver
