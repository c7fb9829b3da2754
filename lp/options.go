// SPDX-License-Identifier: MIT
package lp

// Options bundles the compile-time switches. Zero value = defaults.
type Options struct {
	// AllowOrphans downgrades orphan columns (declared variables that no
	// row and no objective references) from ErrOrphanVariable to an entry
	// in Model.Warnings. Default false: an unused variable is usually a
	// modeling bug, so the caller must opt in to tolerate it.
	AllowOrphans bool
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{AllowOrphans: false}
}

// WithAllowOrphans keeps compilation going when a declared variable is
// never referenced, recording a warning instead of failing.
func WithAllowOrphans() Option {
	return func(o *Options) { o.AllowOrphans = true }
}
