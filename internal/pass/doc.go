// Package pass provides the ordered, named transformation framework that
// package transform's ten standard passes run under: a Manager executing
// Pass values in registration order, a NodeTracker for cycle-safe traversal,
// and three visiting disciplines (RecursiveVisitor, RecursiveMutator,
// LazyVisitor) a concrete pass can embed to get default child-recursion
// behavior for free, overriding only the node kinds it cares about.
package pass
