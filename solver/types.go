package solver

import (
	"errors"

	"github.com/maroveq/linform/lp"
)

// Sentinel errors for the solver boundary.
var (
	// ErrNilModel indicates Solve or NewReport received a nil model.
	ErrNilModel = errors.New("solver: nil canonical model")

	// ErrNoSolution indicates a report was requested for a result whose
	// status is not optimal.
	ErrNoSolution = errors.New("solver: result carries no solution")

	// ErrResultMismatch indicates the result's column vector disagrees with
	// the model's dimensions.
	ErrResultMismatch = errors.New("solver: result does not match model dimensions")

	// ErrUnknownColumn indicates a report lookup for a group or label the
	// model never declared.
	ErrUnknownColumn = errors.New("solver: unknown variable")
)

// Status classifies a solve outcome. The zero value is StatusError, so a
// zero Result never reads as a successful solve.
type Status int

const (
	// StatusError means the backend failed before producing a verdict.
	StatusError Status = iota
	// StatusOptimal means an optimal solution was found.
	StatusOptimal
	// StatusInfeasible means the constraints admit no solution.
	StatusInfeasible
	// StatusUnbounded means the objective can improve without limit.
	StatusUnbounded
)

// String renders the status in lowercase.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Result is the outcome of one solve.
type Result struct {
	// Status classifies the outcome; inspect it before reading the rest.
	Status Status

	// Objective is the optimal objective value (StatusOptimal only).
	Objective float64

	// Columns holds the optimal value of every canonical column, in
	// column order (StatusOptimal only).
	Columns []float64

	// RowDuals holds per-row dual values when the backend provides them;
	// nil otherwise. The bundled simplex backend provides none.
	RowDuals []float64

	// Message carries backend diagnostics, mainly for StatusError.
	Message string
}

// Optimal reports whether the result carries an optimal solution.
func (r Result) Optimal() bool { return r.Status == StatusOptimal }

// Solver is the adapter interface: consume a canonical model and a
// direction, produce a Result. Implementations return a non-nil error only
// for contract violations (nil/invalid model); solve outcomes, including
// infeasibility, travel in Result.Status.
type Solver interface {
	Solve(m *lp.Model, dir lp.Direction) (Result, error)
}
