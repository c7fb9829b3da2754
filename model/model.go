// SPDX-License-Identifier: MIT

package model

// Model is the declaration registry: sets, parameters, the variable
// catalog, equation families, and the objective. It is a plain in-memory
// builder with no locking; construct it in one goroutine, then treat it
// as read-only once handed to the compiler.
type Model struct {
	name string

	sets    map[string]*Set
	setUsed map[string]bool

	params map[string]*Param

	cols     []ColumnDecl
	varNames map[string]bool

	fams     []Family
	famNames map[string]bool

	obj objective
}

// New creates an empty model. The name is carried into compiled artifacts
// and reports; it may be empty.
func New(name string) *Model {
	return &Model{
		name:     name,
		sets:     make(map[string]*Set),
		setUsed:  make(map[string]bool),
		params:   make(map[string]*Param),
		varNames: make(map[string]bool),
		famNames: make(map[string]bool),
	}
}

// Name returns the model name given to New.
func (m *Model) Name() string { return m.name }

// Lookup returns a registered set by name.
func (m *Model) Lookup(name string) (*Set, bool) {
	s, ok := m.sets[name]
	return s, ok
}

// Param returns a registered parameter by name.
func (m *Model) Param(name string) (*Param, bool) {
	p, ok := m.params[name]
	return p, ok
}

// CheckVar resolves a handle against the catalog and reports whether it
// belongs to this model. Compilation uses the same resolution to reject
// zero or foreign handles.
func (m *Model) CheckVar(v Var) bool {
	_, ok := m.lookupVar(v)
	return ok
}
