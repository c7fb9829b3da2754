package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/maroveq/linform/lp"
)

// DefaultTol is the simplex pivot tolerance used when Simplex.Tol is zero.
const DefaultTol = 1e-10

// Simplex solves canonical models with the dense simplex method from
// gonum's optimize/convex/lp package.
//
// The canonical form is richer than the backend's standard form, so Solve
// lowers it first: equality rows (and fixed columns) become A·x = b rows;
// every finite side of an inequality row or column bound becomes one
// G·x ≤ h row (the standard-form converter treats all variables as free,
// which is why finite column bounds must travel as rows). Maximization
// negates the objective in and the optimal value out. After the solve the
// split variables are folded back: x[j] = xt[j] − xt[n+j].
//
// Limits of the backend: no dual values (Result.RowDuals is nil), and a
// completely unconstrained column (possible only for a free orphan
// admitted via lp.WithAllowOrphans) makes the standard form singular and
// surfaces as StatusError.
type Simplex struct {
	// Tol is the pivot tolerance; zero means DefaultTol.
	Tol float64
}

var _ Solver = Simplex{}

// Solve implements Solver.
//
// Errors are contract violations only: ErrNilModel, or the model failing
// its structural self-check. Everything the backend decides — optimal,
// infeasible, unbounded, numerical failure — arrives in Result.Status.
func (s Simplex) Solve(m *lp.Model, dir lp.Direction) (Result, error) {
	if m == nil {
		return Result{}, fmt.Errorf("solve: %w", ErrNilModel)
	}
	if err := m.Validate(); err != nil {
		return Result{}, fmt.Errorf("solve: %w", err)
	}

	n := m.NumCols
	c := make([]float64, n)
	copy(c, m.Obj)
	if dir == lp.Maximize {
		floats.Scale(-1, c)
	}

	var (
		gData, aData []float64
		h, b         []float64
	)
	addG := func(row []float64, rhs float64) {
		gData = append(gData, row...)
		h = append(h, rhs)
	}
	addA := func(row []float64, rhs float64) {
		aData = append(aData, row...)
		b = append(b, rhs)
	}

	for i := 0; i < m.NumRows; i++ {
		row := m.DenseRow(i)
		lo, hi := m.RowLower[i], m.RowUpper[i]
		if lo == hi {
			addA(row, lo)
			continue
		}
		if !math.IsInf(hi, 1) {
			addG(row, hi)
		}
		if !math.IsInf(lo, -1) {
			addG(negated(row), -lo)
		}
	}
	for j := 0; j < n; j++ {
		lo, hi := m.ColLower[j], m.ColUpper[j]
		if lo == hi {
			addA(unit(n, j, 1), lo)
			continue
		}
		if !math.IsInf(hi, 1) {
			addG(unit(n, j, 1), hi)
		}
		if !math.IsInf(lo, -1) {
			addG(unit(n, j, -1), -lo)
		}
	}
	if len(h) == 0 && len(b) == 0 {
		return Result{Status: StatusError, Message: "model has no constraints or finite bounds"}, nil
	}

	var g, a mat.Matrix
	if len(h) > 0 {
		g = mat.NewDense(len(h), n, gData)
	}
	if len(b) > 0 {
		a = mat.NewDense(len(b), n, aData)
	}
	cStd, aStd, bStd := gonumlp.Convert(c, g, h, a, b)

	tol := s.Tol
	if tol == 0 {
		tol = DefaultTol
	}
	optF, optX, err := gonumlp.Simplex(cStd, aStd, bStd, tol, nil)
	switch {
	case errors.Is(err, gonumlp.ErrInfeasible):
		return Result{Status: StatusInfeasible, Message: err.Error()}, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return Result{Status: StatusUnbounded, Message: err.Error()}, nil
	case err != nil:
		return Result{Status: StatusError, Message: err.Error()}, nil
	}

	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = optX[j] - optX[n+j]
	}
	obj := optF
	if dir == lp.Maximize {
		obj = -obj
	}
	return Result{Status: StatusOptimal, Objective: obj, Columns: x}, nil
}

// negated returns -row without touching the input.
func negated(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}

// unit returns the length-n vector with val at position j.
func unit(n, j int, val float64) []float64 {
	out := make([]float64, n)
	out[j] = val
	return out
}
