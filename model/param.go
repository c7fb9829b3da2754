package model

import (
	"fmt"
	"math"
	"strings"
)

// maxParamArity bounds the number of index sets a parameter may be keyed by.
const maxParamArity = 2

// Param is named numeric data keyed by zero, one, or two index sets:
// a scalar (totalBlend), a vector (cost over feeds), or a matrix
// (content over feeds × components).
//
// Values are written with Set during model construction and read with Get
// during compilation. There is no implicit zero: reading a key that was
// never written is ErrMissingValue, so a forgotten cost entry stops
// compilation instead of pricing a feed at zero.
type Param struct {
	name string
	over []*Set
	vals map[string]float64
}

// DefineParam registers a parameter keyed by the given sets (0 to 2 of
// them). The sets must belong to this model and become frozen on use.
//
// Errors: ErrEmptyName, ErrDuplicateName, ErrArity, ErrUnknownSet.
func (m *Model) DefineParam(name string, over ...*Set) (*Param, error) {
	if name == "" {
		return nil, fmt.Errorf("define parameter: %w", ErrEmptyName)
	}
	if _, dup := m.params[name]; dup {
		return nil, fmt.Errorf("define parameter %q: %w", name, ErrDuplicateName)
	}
	if len(over) > maxParamArity {
		return nil, fmt.Errorf("define parameter %q over %d sets: %w", name, len(over), ErrArity)
	}
	for _, s := range over {
		if err := m.requireSet(s, "define parameter "+name); err != nil {
			return nil, err
		}
	}
	p := &Param{
		name: name,
		over: append([]*Set(nil), over...),
		vals: make(map[string]float64),
	}
	m.params[name] = p
	return p, nil
}

// Name returns the parameter's registered name.
func (p *Param) Name() string { return p.name }

// Arity returns the number of index sets keying the parameter.
func (p *Param) Arity() int { return len(p.over) }

// Set stores value under the given key tuple. The tuple length must equal
// the arity, and each label must be a member of its owning set.
// Writing the same key again overwrites (population phase only).
//
// Errors: ErrInvalidKey (wrong tuple length or foreign label),
// ErrBadValue (NaN or ±Inf).
func (p *Param) Set(value float64, key ...string) error {
	k, err := p.checkKey(key)
	if err != nil {
		return err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("parameter %q%s: value %v: %w", p.name, keyString(key), value, ErrBadValue)
	}
	p.vals[k] = value
	return nil
}

// Get returns the value stored under the key tuple.
//
// Errors: ErrInvalidKey for a malformed tuple, ErrMissingValue when the
// tuple is well-formed but nothing was stored for it.
func (p *Param) Get(key ...string) (float64, error) {
	k, err := p.checkKey(key)
	if err != nil {
		return 0, err
	}
	v, ok := p.vals[k]
	if !ok {
		return 0, fmt.Errorf("parameter %q%s: %w", p.name, keyString(key), ErrMissingValue)
	}
	return v, nil
}

// Has reports whether a value is stored under the key tuple; malformed
// tuples report false.
func (p *Param) Has(key ...string) bool {
	k, err := p.checkKey(key)
	if err != nil {
		return false
	}
	_, ok := p.vals[k]
	return ok
}

// Len returns the number of stored values.
func (p *Param) Len() int { return len(p.vals) }

// checkKey validates arity and set membership, and returns the flattened
// storage key. Positions, not labels, form the key, so label strings that
// embed separators cannot collide.
func (p *Param) checkKey(key []string) (string, error) {
	if len(key) != len(p.over) {
		return "", fmt.Errorf("parameter %q: key%s has %d labels, want %d: %w",
			p.name, keyString(key), len(key), len(p.over), ErrInvalidKey)
	}
	var b strings.Builder
	for i, label := range key {
		pos, ok := p.over[i].pos[label]
		if !ok {
			return "", fmt.Errorf("parameter %q: label %q not in set %q: %w",
				p.name, label, p.over[i].name, ErrInvalidKey)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", pos)
	}
	return b.String(), nil
}

// keyString renders a key tuple for error messages: ("A","X") → `(A,X)`.
func keyString(key []string) string {
	if len(key) == 0 {
		return ""
	}
	return "(" + strings.Join(key, ",") + ")"
}
