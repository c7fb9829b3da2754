// Package blend wraps the resource-blending decision as a ready-made
// model: choose nonnegative quantities of feeds that meet a total-quantity
// target and per-component minimum-content floors at minimum cost.
//
//	min  Σ cost(f)·x(f)
//	s.t. Σ x(f)              =  totalBlend
//	     Σ content(f,c)·x(f) ≥  reqMin(c)·totalBlend   for every component c
//	     x(f) ≥ 0
//
// A Problem carries the raw data; Model() lowers it onto the declaration
// API, Compile() produces the canonical matrix form, and Solve() runs a
// solver and returns a Plan keyed by feed label.
//
// Data maps are allowed to be incomplete only in the sense that the error
// comes late, not that zeros are assumed: a feed without a cost entry or a
// missing content fraction aborts with model.ErrMissingValue instead of
// silently pricing the feed at zero.
package blend
