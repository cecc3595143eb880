// Package graph implements the type-graph intermediate representation: a
// fixed node algebra living in a single arena, identified by NodeID rather
// than structural equality. Cycles are permitted during construction; they
// are resolved explicitly by the CycleFinder pass in package transform.
package graph
