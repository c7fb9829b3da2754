package model

import "fmt"

// Set is an ordered collection of unique string labels, e.g. the feeds
// {A, B, C} or the components {X, Y}. Label order is the order given to
// DefineSet and drives every downstream ordering: variable columns,
// expanded rows, Sum iteration.
//
// Sets are created through Model.DefineSet and are immutable afterwards;
// a zero Set is not usable.
type Set struct {
	name   string
	labels []string
	pos    map[string]int
}

// newSet builds the set and its label→position index.
// Validation lives in Model.DefineSet.
func newSet(name string, labels []string) *Set {
	s := &Set{
		name:   name,
		labels: append([]string(nil), labels...),
		pos:    make(map[string]int, len(labels)),
	}
	for i, l := range s.labels {
		s.pos[l] = i
	}
	return s
}

// Name returns the set's registered name.
func (s *Set) Name() string { return s.name }

// Len returns the number of labels.
func (s *Set) Len() int { return len(s.labels) }

// Labels returns the labels in declared order. The slice is a copy.
func (s *Set) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Contains reports whether label is a member of the set.
func (s *Set) Contains(label string) bool {
	_, ok := s.pos[label]
	return ok
}

// Pos returns the 0-based declared position of label.
//
// Errors: ErrUnknownLabel when label is not a member.
// Complexity: O(1).
func (s *Set) Pos(label string) (int, error) {
	i, ok := s.pos[label]
	if !ok {
		return 0, fmt.Errorf("set %q: label %q: %w", s.name, label, ErrUnknownLabel)
	}
	return i, nil
}

// DefineSet registers an ordered label set under name.
//
// Redefining a name is allowed until the set is first referenced by a
// parameter, variable group, or equation family; afterwards it fails with
// ErrSetInUse, because compiled artifacts would silently drift otherwise.
//
// Errors: ErrEmptyName (blank name or blank label), ErrEmptySet (at least
// one label is required, so the only "empty governing set" an equation
// family can have is no set at all), ErrDuplicateLabel, ErrSetInUse.
func (m *Model) DefineSet(name string, labels ...string) (*Set, error) {
	if name == "" {
		return nil, fmt.Errorf("define set: %w", ErrEmptyName)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("define set %q: %w", name, ErrEmptySet)
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("define set %q: empty label: %w", name, ErrEmptyName)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("define set %q: label %q: %w", name, l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}
	if m.setUsed[name] {
		return nil, fmt.Errorf("define set %q: %w", name, ErrSetInUse)
	}
	s := newSet(name, labels)
	m.sets[name] = s
	return s, nil
}

// ownsSet reports whether s was defined in m and is its current version.
func (m *Model) ownsSet(s *Set) bool {
	return s != nil && m.sets[s.name] == s
}

// requireSet validates membership and marks the set as referenced.
func (m *Model) requireSet(s *Set, ctx string) error {
	if !m.ownsSet(s) {
		if s == nil {
			return fmt.Errorf("%s: nil set: %w", ctx, ErrUnknownSet)
		}
		return fmt.Errorf("%s: set %q: %w", ctx, s.name, ErrUnknownSet)
	}
	m.setUsed[s.name] = true
	return nil
}
