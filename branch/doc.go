// Package branch is a small, illustrative driver for exploring the
// deferred Disjunctions a core.State accumulates from dark/gray shadow
// generation. It is explicitly outside the core decision procedure:
// production use is expected to hand Disjunctions to an external
// DPLL-style case-splitter, and Explore here is a minimal depth-first
// stand-in for that collaborator, useful for tests, demos, and small
// problems.
//
// Explore takes a State together with the Disjunctions it deferred and
// drives the core solver across every structural choice those
// Disjunctions allow until a model is found or the choices are
// exhausted, the same role a DPLL-style case-splitter would play for
// boolean connectives.
package branch
