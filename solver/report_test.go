package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maroveq/linform/lp"
	"github.com/maroveq/linform/solver"
)

func TestReport_KeyedByLabels(t *testing.T) {
	m := blendCanonical()
	res := solver.Result{
		Status:    solver.StatusOptimal,
		Objective: 1040,
		Columns:   []float64{40, 40, 20},
	}

	r, err := solver.NewReport(m, res)
	require.NoError(t, err)
	require.Equal(t, 1040.0, r.Objective())

	for label, want := range map[string]float64{"A": 40, "B": 40, "C": 20} {
		got, err := r.Value("x", label)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	g, err := r.Group("x")
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"A": 40, "B": 40, "C": 20}, g)

	// The copy is the caller's to mutate.
	g["A"] = 0
	again, err := r.Value("x", "A")
	require.NoError(t, err)
	require.Equal(t, 40.0, again)

	_, err = r.Value("x", "Z")
	require.ErrorIs(t, err, solver.ErrUnknownColumn)
	_, err = r.Value("y", "A")
	require.ErrorIs(t, err, solver.ErrUnknownColumn)
	_, err = r.Group("y")
	require.ErrorIs(t, err, solver.ErrUnknownColumn)
}

func TestReport_Scalar(t *testing.T) {
	m := blendCanonical()
	// Rename one column into a scalar to exercise the "" label path.
	m.Cols[2] = lp.Column{Name: "z", Group: "z"}

	r, err := solver.NewReport(m, solver.Result{
		Status:    solver.StatusOptimal,
		Objective: 1,
		Columns:   []float64{1, 2, 3},
	})
	require.NoError(t, err)

	v, err := r.Scalar("z")
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = r.Scalar("x")
	require.ErrorIs(t, err, solver.ErrUnknownColumn, `group "x" has no scalar entry`)
}

func TestReport_Validation(t *testing.T) {
	m := blendCanonical()

	_, err := solver.NewReport(nil, solver.Result{Status: solver.StatusOptimal})
	require.ErrorIs(t, err, solver.ErrNilModel)

	_, err = solver.NewReport(m, solver.Result{Status: solver.StatusInfeasible})
	require.ErrorIs(t, err, solver.ErrNoSolution)
	require.ErrorContains(t, err, "infeasible")

	_, err = solver.NewReport(m, solver.Result{
		Status:  solver.StatusOptimal,
		Columns: []float64{1, 2},
	})
	require.ErrorIs(t, err, solver.ErrResultMismatch)
}
