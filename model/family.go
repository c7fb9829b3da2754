package model

import "fmt"

// Relation is the comparison operator of an equation family.
type Relation int

const (
	// Eq constrains the row to equal its right-hand side.
	Eq Relation = iota
	// Ge constrains the row to be at least its right-hand side.
	Ge
	// Le constrains the row to be at most its right-hand side.
	Le
)

// String renders the relation as its mathematical symbol.
func (r Relation) String() string {
	switch r {
	case Eq:
		return "="
	case Ge:
		return ">="
	case Le:
		return "<="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

func (r Relation) valid() bool { return r == Eq || r == Ge || r == Le }

// Family is a symbolic row template. A governed family (Over != nil)
// expands into one row per label of Over, in declared label order; an
// ungoverned family (Over == nil) expands into exactly one row, and its
// closures receive "" as the label.
//
// LHS must be non-nil. A nil RHS means a constant 0 right-hand side,
// which is the common shape for defining rows like z − Σ cost·x = 0.
type Family struct {
	// Name identifies the family in row names and error messages.
	Name string
	// Over is the governing set, or nil for a single ungoverned row.
	Over *Set
	// Rel is the row relation shared by every expansion of the template.
	Rel Relation
	// LHS produces the left-hand expression for one governing label.
	LHS func(label string) (Expr, error)
	// RHS produces the right-hand constant for one governing label.
	RHS func(label string) (float64, error)
}

// AddFamily appends an equation family and returns its declaration index,
// which fixes the position of its rows in the compiled matrix (families
// expand strictly in declaration order). The governing set, if any, is
// marked in use.
//
// Errors: ErrEmptyName, ErrDuplicateName, ErrBadFamily (nil LHS or
// invalid relation), ErrUnknownSet.
func (m *Model) AddFamily(f Family) (int, error) {
	if f.Name == "" {
		return 0, fmt.Errorf("add family: %w", ErrEmptyName)
	}
	if m.famNames[f.Name] {
		return 0, fmt.Errorf("add family %q: %w", f.Name, ErrDuplicateName)
	}
	if f.LHS == nil {
		return 0, fmt.Errorf("add family %q: nil LHS template: %w", f.Name, ErrBadFamily)
	}
	if !f.Rel.valid() {
		return 0, fmt.Errorf("add family %q: relation %d: %w", f.Name, int(f.Rel), ErrBadFamily)
	}
	if f.Over != nil {
		if err := m.requireSet(f.Over, "add family "+f.Name); err != nil {
			return 0, err
		}
	}
	m.fams = append(m.fams, f)
	m.famNames[f.Name] = true
	return len(m.fams) - 1, nil
}

// AddRow appends a single ungoverned row with constant sides:
// lhs rel rhs. Sugar over AddFamily.
func (m *Model) AddRow(name string, rel Relation, lhs Expr, rhs float64) (int, error) {
	return m.AddFamily(Family{
		Name: name,
		Rel:  rel,
		LHS:  func(string) (Expr, error) { return lhs, nil },
		RHS:  func(string) (float64, error) { return rhs, nil },
	})
}

// NumFamilies returns the number of declared families.
func (m *Model) NumFamilies() int { return len(m.fams) }

// Families returns a copy of the family list in declaration order.
// The template closures are shared, not copied.
func (m *Model) Families() []Family {
	return append([]Family(nil), m.fams...)
}

// SetObjective declares the objective as an explicit linear expression
// over declared variables (the direct-vector formulation). The most
// recent objective declaration wins.
func (m *Model) SetObjective(e Expr) {
	m.obj = objective{kind: objExpr, expr: e}
}

// SetObjectiveVar declares the free-variable objective formulation: v is
// the objective value, and the ungoverned equality family at index family
// defines it (e.g. z − Σ cost·x = 0). The compiler flags the column and
// its defining row for solver adapters. The most recent objective
// declaration wins.
//
// Errors: ErrUnknownVariable for a handle outside this model's catalog,
// ErrBadFamily for an out-of-range index or a governed family.
func (m *Model) SetObjectiveVar(v Var, family int) error {
	if _, ok := m.lookupVar(v); !ok {
		return fmt.Errorf("objective variable %q: %w", v.name, ErrUnknownVariable)
	}
	if family < 0 || family >= len(m.fams) {
		return fmt.Errorf("objective defining family %d: %w", family, ErrBadFamily)
	}
	if m.fams[family].Over != nil {
		return fmt.Errorf("objective defining family %q is governed by set %q: %w",
			m.fams[family].Name, m.fams[family].Over.name, ErrBadFamily)
	}
	m.obj = objective{kind: objVar, v: v, defFamily: family}
	return nil
}

// objKind discriminates the objective formulations.
type objKind int

const (
	objNone objKind = iota
	objExpr
	objVar
)

type objective struct {
	kind      objKind
	expr      Expr
	v         Var
	defFamily int
}

// Objective returns the direct objective expression, if one is declared.
func (m *Model) Objective() (Expr, bool) {
	return m.obj.expr, m.obj.kind == objExpr
}

// ObjectiveVar returns the objective variable and its defining family
// index, if the free-variable formulation is declared.
func (m *Model) ObjectiveVar() (Var, int, bool) {
	return m.obj.v, m.obj.defFamily, m.obj.kind == objVar
}
