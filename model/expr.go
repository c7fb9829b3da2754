package model

import "fmt"

// Term is one coefficient·variable pair of a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// T builds a Term. It reads better inside Sum closures than a struct
// literal:
//
//	model.Sum(feeds, func(f string) (model.Term, error) {
//		c, err := cost.Get(f)
//		if err != nil {
//			return model.Term{}, err
//		}
//		v, err := x.At(f)
//		if err != nil {
//			return model.Term{}, err
//		}
//		return model.T(v, c), nil
//	})
func T(v Var, coef float64) Term {
	return Term{Var: v, Coef: coef}
}

// Expr is an immutable linear expression: an ordered list of terms.
// The same variable may appear in several terms; the compiler sums
// duplicate contributions per column. The zero Expr is empty and valid
// as a starting point for Add chains.
type Expr struct {
	terms []Term
}

// NewExpr builds an expression from terms, copying the slice.
func NewExpr(terms ...Term) Expr {
	return Expr{terms: append([]Term(nil), terms...)}
}

// Add returns a new expression with coef·v appended. The receiver is
// unchanged; derived expressions never share backing storage.
func (e Expr) Add(v Var, coef float64) Expr {
	ts := make([]Term, len(e.terms)+1)
	copy(ts, e.terms)
	ts[len(e.terms)] = Term{Var: v, Coef: coef}
	return Expr{terms: ts}
}

// Plus returns the concatenation of two expressions.
func (e Expr) Plus(o Expr) Expr {
	ts := make([]Term, 0, len(e.terms)+len(o.terms))
	ts = append(ts, e.terms...)
	ts = append(ts, o.terms...)
	return Expr{terms: ts}
}

// Scale returns the expression with every coefficient multiplied by k.
func (e Expr) Scale(k float64) Expr {
	ts := make([]Term, len(e.terms))
	for i, t := range e.terms {
		ts[i] = Term{Var: t.Var, Coef: t.Coef * k}
	}
	return Expr{terms: ts}
}

// Len returns the number of terms (before any compile-time coalescing).
func (e Expr) Len() int { return len(e.terms) }

// Terms returns a copy of the term list in insertion order.
func (e Expr) Terms() []Term {
	return append([]Term(nil), e.terms...)
}

// Sum builds an expression with one term per label of over, iterating in
// declared order. The closure usually combines a Param lookup with a
// VarVector handle; its error aborts the sum and propagates unchanged in
// class (a missing parameter value still matches ErrMissingValue).
//
// Errors: ErrUnknownSet for a nil set; otherwise whatever term returns.
func Sum(over *Set, term func(label string) (Term, error)) (Expr, error) {
	if over == nil {
		return Expr{}, fmt.Errorf("sum: nil set: %w", ErrUnknownSet)
	}
	ts := make([]Term, 0, len(over.labels))
	for _, l := range over.labels {
		t, err := term(l)
		if err != nil {
			return Expr{}, fmt.Errorf("sum over %q at %q: %w", over.name, l, err)
		}
		ts = append(ts, t)
	}
	return Expr{terms: ts}, nil
}
