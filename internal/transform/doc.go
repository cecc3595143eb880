// Package transform implements the ten standard passes that turn a raw
// type graph into one ready for code emission: Flatten, IdentifyContainers,
// RemoveMembers, TypeIdentifier, AddPadding, AlignmentCalc, NameGen,
// CycleFinder, TopoSort and Prune, plus the KeyCapture rewrite. Each pass is
// built on package pass's visiting disciplines except CycleFinder and
// TopoSort, whose DFS bookkeeping (on-stack sets, deferred-edge queues) is
// specialized enough to not benefit from the generic recursion helpers.
package transform
