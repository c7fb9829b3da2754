// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"
	"sort"

	"github.com/maroveq/linform/model"
)

// Compile expands the source model's equation families and assembles the
// canonical matrix form.
//
// Contracts:
//   - src is treated as read-only; compiling the same model twice yields
//     identical output (no map-order dependence anywhere).
//   - Columns are the variable catalog in declaration order; rows follow
//     family declaration order, then the governing set's label order.
//   - Duplicate contributions to one (row, column) sum into a single
//     triplet; exact cancellations are dropped, never stored as zeros.
//
// Errors (all matching ErrCompilation via errors.Is):
//   - ErrNilModel, ErrNoObjective
//   - ErrUnboundVariable   — an expression used a handle outside the catalog
//   - ErrEmptyExpression   — a row or the objective has no coefficients
//   - ErrNotFinite         — NaN/±Inf coefficient or right-hand side
//   - ErrOrphanVariable    — unreferenced column (unless WithAllowOrphans)
//   - ErrInconsistentDims  — the assembled model failed its self-check
//
// Errors raised inside family closures keep their class: a missing
// parameter value aborts compilation and still matches
// model.ErrMissingValue.
//
// Complexity: O(C + R·T log T) for C catalog columns, R expanded rows, and
// T terms per row (the log factor from per-row column sorting).
func Compile(src *model.Model, opts ...Option) (*Model, error) {
	if src == nil {
		return nil, fmt.Errorf("compile: %w", ErrNilModel)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &compiler{src: src, opts: o, objDefFamily: -1}
	c.init()
	if err := c.objective(); err != nil {
		return nil, err
	}
	if err := c.expand(); err != nil {
		return nil, err
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return c.out, nil
}

// compiler carries the single-pass state: the output under construction,
// per-column reference marks for orphan detection, and the row offset of
// each family (needed to resolve the objective-defining row).
type compiler struct {
	src  *model.Model
	opts Options
	out  *Model

	referenced   []bool
	rowOfFamily  []int
	objDefFamily int
}

// init seeds the output with the column side of the model: bounds,
// metadata, and a zeroed objective vector.
func (c *compiler) init() {
	cols := c.src.Columns()
	n := len(cols)
	c.out = &Model{
		Name:         c.src.Name(),
		NumCols:      n,
		ColLower:     make([]float64, n),
		ColUpper:     make([]float64, n),
		Obj:          make([]float64, n),
		Cols:         make([]Column, n),
		ObjectiveCol: -1,
		ObjectiveRow: -1,
	}
	for j, col := range cols {
		c.out.ColLower[j] = col.Lower
		c.out.ColUpper[j] = col.Upper
		c.out.Cols[j] = Column{Name: col.Name, Group: col.Group, Label: col.Label}
	}
	c.referenced = make([]bool, n)
}

// objective fills Obj from whichever formulation the model declared.
func (c *compiler) objective() error {
	if e, ok := c.src.Objective(); ok {
		cols, vals, err := c.accumulate(e, "objective")
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return fmt.Errorf("objective: %w", ErrEmptyExpression)
		}
		for i, col := range cols {
			c.out.Obj[col] = vals[i]
			c.referenced[col] = true
		}
		return nil
	}
	if v, def, ok := c.src.ObjectiveVar(); ok {
		if !c.src.CheckVar(v) {
			return fmt.Errorf("objective variable %q: %w", v.Name(), ErrUnboundVariable)
		}
		c.out.Obj[v.Column()] = 1
		c.out.ObjectiveCol = v.Column()
		c.referenced[v.Column()] = true
		c.objDefFamily = def
		return nil
	}
	return fmt.Errorf("model %q: %w", c.src.Name(), ErrNoObjective)
}

// expand walks the families in declaration order and emits their rows.
func (c *compiler) expand() error {
	fams := c.src.Families()
	c.rowOfFamily = make([]int, len(fams))
	for fi, fam := range fams {
		c.rowOfFamily[fi] = len(c.out.RowLower)
		labels := []string{""}
		if fam.Over != nil {
			labels = fam.Over.Labels()
		}
		for _, label := range labels {
			if err := c.emitRow(fam, label); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitRow expands one template instance: invoke the closures, coalesce
// coefficients, map the relation onto row bounds, and append the triplets.
func (c *compiler) emitRow(fam model.Family, label string) error {
	name := rowName(fam.Name, label)

	expr, err := fam.LHS(label)
	if err != nil {
		return fmt.Errorf("row %q: left-hand side: %w", name, err)
	}
	cols, vals, err := c.accumulate(expr, fmt.Sprintf("row %q", name))
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("row %q: %w", name, ErrEmptyExpression)
	}

	rhs := 0.0
	if fam.RHS != nil {
		if rhs, err = fam.RHS(label); err != nil {
			return fmt.Errorf("row %q: right-hand side: %w", name, err)
		}
		if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
			return fmt.Errorf("row %q: right-hand side %v: %w", name, rhs, ErrNotFinite)
		}
	}

	var lo, hi float64
	switch fam.Rel {
	case model.Eq:
		lo, hi = rhs, rhs
	case model.Ge:
		lo, hi = rhs, math.Inf(1)
	case model.Le:
		lo, hi = math.Inf(-1), rhs
	}

	row := len(c.out.RowLower)
	c.out.RowLower = append(c.out.RowLower, lo)
	c.out.RowUpper = append(c.out.RowUpper, hi)
	c.out.Rows = append(c.out.Rows, Row{Name: name, Family: fam.Name, Label: label, Rel: fam.Rel})
	for i, col := range cols {
		c.out.A = append(c.out.A, Triplet{Row: row, Col: col, Val: vals[i]})
		c.referenced[col] = true
	}
	return nil
}

// accumulate validates every term of e against the catalog and coalesces
// the coefficients per column: duplicates sum, exact cancellations drop.
// Returned columns are sorted ascending.
func (c *compiler) accumulate(e model.Expr, ctx string) ([]int, []float64, error) {
	acc := make(map[int]float64)
	for _, t := range e.Terms() {
		if !c.src.CheckVar(t.Var) {
			return nil, nil, fmt.Errorf("%s: variable %q (column %d): %w",
				ctx, t.Var.Name(), t.Var.Column(), ErrUnboundVariable)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return nil, nil, fmt.Errorf("%s: coefficient %v on %q: %w",
				ctx, t.Coef, t.Var.Name(), ErrNotFinite)
		}
		acc[t.Var.Column()] += t.Coef
	}
	cols := make([]int, 0, len(acc))
	for col, v := range acc {
		if v == 0 {
			continue
		}
		cols = append(cols, col)
	}
	sort.Ints(cols)
	vals := make([]float64, len(cols))
	for i, col := range cols {
		vals[i] = acc[col]
	}
	return cols, vals, nil
}

// finish resolves the objective-defining row, enforces the orphan policy,
// and runs the structural self-check.
func (c *compiler) finish() error {
	c.out.NumRows = len(c.out.RowLower)
	if c.objDefFamily >= 0 {
		c.out.ObjectiveRow = c.rowOfFamily[c.objDefFamily]
	}
	for j, ok := range c.referenced {
		if ok {
			continue
		}
		if !c.opts.AllowOrphans {
			return fmt.Errorf("column %d (%s): %w", j, c.out.Cols[j].Name, ErrOrphanVariable)
		}
		c.out.Warnings = append(c.out.Warnings,
			fmt.Sprintf("orphan variable %s: not referenced by any row or the objective", c.out.Cols[j].Name))
	}
	return c.out.Validate()
}

// rowName renders "family(label)" for governed rows, "family" otherwise.
func rowName(family, label string) string {
	if label == "" {
		return family
	}
	return family + "(" + label + ")"
}
