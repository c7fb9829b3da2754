package solver

import (
	"fmt"

	"github.com/maroveq/linform/lp"
)

// Report keys an optimal solution by the model's original identifiers
// (variable group and label), never by column index. Column ordering is a
// compiler artifact; reports are the caller-facing view.
type Report struct {
	objective float64
	groups    map[string]map[string]float64
}

// NewReport builds a report from a solved model.
//
// Errors: ErrNilModel, ErrNoSolution (res.Status is not optimal),
// ErrResultMismatch (column vector length disagrees with the model).
func NewReport(m *lp.Model, res Result) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("report: %w", ErrNilModel)
	}
	if !res.Optimal() {
		return nil, fmt.Errorf("report: status %s: %w", res.Status, ErrNoSolution)
	}
	if len(res.Columns) != m.NumCols {
		return nil, fmt.Errorf("report: %d column values for %d columns: %w",
			len(res.Columns), m.NumCols, ErrResultMismatch)
	}
	r := &Report{
		objective: res.Objective,
		groups:    make(map[string]map[string]float64),
	}
	for j, col := range m.Cols {
		g, ok := r.groups[col.Group]
		if !ok {
			g = make(map[string]float64)
			r.groups[col.Group] = g
		}
		g[col.Label] = res.Columns[j]
	}
	return r, nil
}

// Objective returns the optimal objective value.
func (r *Report) Objective() float64 { return r.objective }

// Value returns the solution value of the indexed variable group(label).
//
// Errors: ErrUnknownColumn.
func (r *Report) Value(group, label string) (float64, error) {
	g, ok := r.groups[group]
	if !ok {
		return 0, fmt.Errorf("report: group %q: %w", group, ErrUnknownColumn)
	}
	v, ok := g[label]
	if !ok {
		return 0, fmt.Errorf("report: %q has no label %q: %w", group, label, ErrUnknownColumn)
	}
	return v, nil
}

// Scalar returns the solution value of an unindexed variable.
//
// Errors: ErrUnknownColumn.
func (r *Report) Scalar(name string) (float64, error) {
	return r.Value(name, "")
}

// Group returns a copy of one variable group keyed by label.
//
// Errors: ErrUnknownColumn.
func (r *Report) Group(group string) (map[string]float64, error) {
	g, ok := r.groups[group]
	if !ok {
		return nil, fmt.Errorf("report: group %q: %w", group, ErrUnknownColumn)
	}
	out := make(map[string]float64, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out, nil
}
