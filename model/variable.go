package model

import (
	"fmt"
	"math"
)

// Var is an opaque handle for one decision variable: a dense 0-based
// column index plus the canonical column name ("x(A)", or "z" for
// scalars). Handles are cheap values; the zero Var is not a declared
// variable and is rejected at compile time.
type Var struct {
	col  int
	name string
}

// Column returns the variable's 0-based column index.
func (v Var) Column() int { return v.col }

// Name returns the canonical column name.
func (v Var) Name() string { return v.name }

// VarVector is a group of decision variables indexed over one set,
// declared by Model.DeclareVars. Columns are contiguous, one per label,
// in the set's declared order.
type VarVector struct {
	group string
	over  *Set
	start int
}

// Group returns the group name ("x" in x(feed)).
func (vv VarVector) Group() string { return vv.group }

// Over returns the indexing set.
func (vv VarVector) Over() *Set { return vv.over }

// Len returns the number of variables in the group.
func (vv VarVector) Len() int { return vv.over.Len() }

// At returns the handle for the variable at label.
//
// Errors: ErrUnknownLabel.
func (vv VarVector) At(label string) (Var, error) {
	pos, err := vv.over.Pos(label)
	if err != nil {
		return Var{}, fmt.Errorf("variable group %q: %w", vv.group, err)
	}
	return Var{col: vv.start + pos, name: columnName(vv.group, label)}, nil
}

// Vars returns all handles in column order.
func (vv VarVector) Vars() []Var {
	out := make([]Var, vv.over.Len())
	for i, l := range vv.over.labels {
		out[i] = Var{col: vv.start + i, name: columnName(vv.group, l)}
	}
	return out
}

// ColumnDecl is one catalog entry: canonical name, origin identifiers,
// and the declared bounds (IEEE ±Inf for unbounded sides).
type ColumnDecl struct {
	Name  string // group(label), or the scalar name
	Group string // variable group, or the scalar name
	Label string // "" for scalar variables
	Lower float64
	Upper float64
}

// DeclareVars declares one decision variable per label of over, all with
// bounds [lo, hi]. Use math.Inf for unbounded sides. Columns are assigned
// in declaration order, contiguously, following the set's label order;
// the variable↔column mapping is a bijection.
//
// Errors: ErrEmptyName, ErrDuplicateName (groups and scalar variables
// share one namespace), ErrUnknownSet, ErrBadValue (NaN bounds),
// ErrNonMonotonicBounds (lo > hi, or bounds that admit no value).
func (m *Model) DeclareVars(group string, over *Set, lo, hi float64) (VarVector, error) {
	if err := m.checkVarName(group); err != nil {
		return VarVector{}, err
	}
	if err := m.requireSet(over, "declare variables "+group); err != nil {
		return VarVector{}, err
	}
	if err := checkBounds(group, lo, hi); err != nil {
		return VarVector{}, err
	}
	vv := VarVector{group: group, over: over, start: len(m.cols)}
	for _, l := range over.labels {
		m.cols = append(m.cols, ColumnDecl{
			Name:  columnName(group, l),
			Group: group,
			Label: l,
			Lower: lo,
			Upper: hi,
		})
	}
	m.varNames[group] = true
	return vv, nil
}

// DeclareScalarVar declares a single unindexed variable, such as a free
// objective-value variable. Same bound rules as DeclareVars.
func (m *Model) DeclareScalarVar(name string, lo, hi float64) (Var, error) {
	if err := m.checkVarName(name); err != nil {
		return Var{}, err
	}
	if err := checkBounds(name, lo, hi); err != nil {
		return Var{}, err
	}
	v := Var{col: len(m.cols), name: name}
	m.cols = append(m.cols, ColumnDecl{
		Name:  name,
		Group: name,
		Lower: lo,
		Upper: hi,
	})
	m.varNames[name] = true
	return v, nil
}

// NumColumns returns the number of declared columns.
func (m *Model) NumColumns() int { return len(m.cols) }

// Columns returns a copy of the variable catalog in column order.
func (m *Model) Columns() []ColumnDecl {
	return append([]ColumnDecl(nil), m.cols...)
}

// lookupVar resolves a handle against the catalog: the column must exist
// and carry the same canonical name the handle was minted with.
func (m *Model) lookupVar(v Var) (ColumnDecl, bool) {
	if v.col < 0 || v.col >= len(m.cols) || m.cols[v.col].Name != v.name || v.name == "" {
		return ColumnDecl{}, false
	}
	return m.cols[v.col], true
}

func (m *Model) checkVarName(name string) error {
	if name == "" {
		return fmt.Errorf("declare variable: %w", ErrEmptyName)
	}
	if m.varNames[name] {
		return fmt.Errorf("declare variable %q: %w", name, ErrDuplicateName)
	}
	return nil
}

// checkBounds rejects NaN and bound pairs that admit no value.
func checkBounds(name string, lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return fmt.Errorf("variable %q: NaN bound: %w", name, ErrBadValue)
	}
	if lo > hi || math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return fmt.Errorf("variable %q: bounds [%g, %g]: %w", name, lo, hi, ErrNonMonotonicBounds)
	}
	return nil
}

// columnName renders the canonical indexed column name.
func columnName(group, label string) string {
	return group + "(" + label + ")"
}
