// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"
	"sort"

	"github.com/maroveq/linform/model"
)

// Triplet is one nonzero of the constraint matrix.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// Column is per-column metadata preserving the original identifiers, so
// reports can key results by label instead of column index.
type Column struct {
	Name  string // canonical: group(label), or the scalar name
	Group string
	Label string // "" for scalar variables
}

// Row is per-row metadata: the owning family, the governing label ("" for
// ungoverned rows), and the declared relation.
type Row struct {
	Name   string // family(label), or the family name
	Family string
	Label  string
	Rel    model.Relation
}

// Direction states whether the objective is minimized or maximized. It is
// part of the problem statement handed to a solver, not of the matrix.
type Direction int

const (
	// Minimize seeks the smallest objective value.
	Minimize Direction = iota
	// Maximize seeks the largest objective value.
	Maximize
)

// String renders the direction in lowercase.
func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Model is the canonical matrix form produced by Compile.
//
// Invariants (checked by Validate):
//
//   - all per-column slices have length NumCols; per-row slices NumRows;
//   - bounds are ordered pairs, unbounded sides are IEEE ±Inf, never NaN,
//     never a finite "big" sentinel;
//   - A is sorted by (Row, Col) with unique pairs, indices in range, and
//     no explicit zeros;
//   - ObjectiveCol/ObjectiveRow are both -1, or both valid indices
//     flagging the free-variable objective formulation.
//
// Fields are exported for adapters and writers; treat a compiled Model as
// read-only.
type Model struct {
	Name string

	NumCols int
	NumRows int

	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64

	// Obj holds the dense objective coefficients in column order.
	Obj []float64

	// A holds the constraint nonzeros, sorted by (Row, Col).
	A []Triplet

	Cols []Column
	Rows []Row

	// ObjectiveCol/ObjectiveRow flag the free-variable objective
	// formulation: the objective-value column and its defining row.
	// Both are -1 under the direct-vector formulation.
	ObjectiveCol int
	ObjectiveRow int

	// Warnings collects non-fatal findings (orphan columns under
	// WithAllowOrphans).
	Warnings []string
}

// Nonzeros returns the number of stored constraint coefficients.
func (m *Model) Nonzeros() int { return len(m.A) }

// RowTriplets returns the nonzeros of row i as a sub-slice of A (shared
// backing array, read-only). Rows are contiguous because A is sorted.
func (m *Model) RowTriplets(i int) []Triplet {
	lo := sort.Search(len(m.A), func(k int) bool { return m.A[k].Row >= i })
	hi := sort.Search(len(m.A), func(k int) bool { return m.A[k].Row > i })
	return m.A[lo:hi]
}

// DenseRow expands row i into a dense coefficient slice of length NumCols.
func (m *Model) DenseRow(i int) []float64 {
	out := make([]float64, m.NumCols)
	for _, t := range m.RowTriplets(i) {
		out[t.Col] = t.Val
	}
	return out
}

// ColumnByName returns the column index of the canonical name, or -1.
func (m *Model) ColumnByName(name string) int {
	for j, c := range m.Cols {
		if c.Name == name {
			return j
		}
	}
	return -1
}

// Validate performs the structural self-check and returns
// ErrInconsistentDims (with detail) on the first violation. Compile runs
// it before returning; solver adapters run it on input.
func (m *Model) Validate() error {
	if m.NumCols < 0 || m.NumRows < 0 {
		return fmt.Errorf("negative dimensions %dx%d: %w", m.NumRows, m.NumCols, ErrInconsistentDims)
	}
	if len(m.ColLower) != m.NumCols || len(m.ColUpper) != m.NumCols ||
		len(m.Obj) != m.NumCols || len(m.Cols) != m.NumCols {
		return fmt.Errorf("column arrays disagree with NumCols=%d: %w", m.NumCols, ErrInconsistentDims)
	}
	if len(m.RowLower) != m.NumRows || len(m.RowUpper) != m.NumRows || len(m.Rows) != m.NumRows {
		return fmt.Errorf("row arrays disagree with NumRows=%d: %w", m.NumRows, ErrInconsistentDims)
	}
	for j := 0; j < m.NumCols; j++ {
		if err := checkBoundPair("column", m.Cols[j].Name, m.ColLower[j], m.ColUpper[j]); err != nil {
			return err
		}
		if math.IsNaN(m.Obj[j]) || math.IsInf(m.Obj[j], 0) {
			return fmt.Errorf("objective coefficient %d (%s): %w", j, m.Cols[j].Name, ErrInconsistentDims)
		}
	}
	for i := 0; i < m.NumRows; i++ {
		if err := checkBoundPair("row", m.Rows[i].Name, m.RowLower[i], m.RowUpper[i]); err != nil {
			return err
		}
	}
	for k, t := range m.A {
		if t.Row < 0 || t.Row >= m.NumRows || t.Col < 0 || t.Col >= m.NumCols {
			return fmt.Errorf("triplet %d at (%d,%d) outside %dx%d: %w",
				k, t.Row, t.Col, m.NumRows, m.NumCols, ErrInconsistentDims)
		}
		if t.Val == 0 || math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return fmt.Errorf("triplet %d at (%d,%d) value %v: %w", k, t.Row, t.Col, t.Val, ErrInconsistentDims)
		}
		if k > 0 {
			prev := m.A[k-1]
			if t.Row < prev.Row || (t.Row == prev.Row && t.Col <= prev.Col) {
				return fmt.Errorf("triplet %d at (%d,%d) breaks (row,col) ordering: %w",
					k, t.Row, t.Col, ErrInconsistentDims)
			}
		}
	}
	if (m.ObjectiveCol == -1) != (m.ObjectiveRow == -1) {
		return fmt.Errorf("objective flags col=%d row=%d must be set together: %w",
			m.ObjectiveCol, m.ObjectiveRow, ErrInconsistentDims)
	}
	if m.ObjectiveCol != -1 {
		if m.ObjectiveCol < 0 || m.ObjectiveCol >= m.NumCols {
			return fmt.Errorf("objective column %d outside catalog: %w", m.ObjectiveCol, ErrInconsistentDims)
		}
		if m.ObjectiveRow < 0 || m.ObjectiveRow >= m.NumRows {
			return fmt.Errorf("objective row %d outside matrix: %w", m.ObjectiveRow, ErrInconsistentDims)
		}
	}
	return nil
}

// checkBoundPair rejects NaN bounds and pairs that admit no value.
func checkBoundPair(kind, name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return fmt.Errorf("%s %q: NaN bound: %w", kind, name, ErrInconsistentDims)
	}
	if lo > hi || math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return fmt.Errorf("%s %q: bounds [%g, %g]: %w", kind, name, lo, hi, ErrInconsistentDims)
	}
	return nil
}
