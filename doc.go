// Package bandtrace builds pattern-template trees for tree-search track
// finding across a stack of parallel detector planes, and provides the
// runtime helpers a road-builder uses to match reconstructed hits against
// those templates.
//
// What is bandtrace?
//
//	A single-threaded, zero-network library that brings together:
//		- Pattern generation: enumerate every geometrically admissible bit
//		  pattern across N planes and L levels of bin resolution, sharing
//		  equivalent patterns through a content-addressed hash table.
//		- Hit pairing: an ordered-merge iterator over two sorted hit
//		  sequences, matching within a positional tolerance.
//		- Hit-set similarity: a plane-occupancy-weakened set-inclusion test.
//
// Under the hood, everything is organized under five subpackages:
//
//	pattern/ — Pattern, Link, ChildIter, hash table, geometry cuts, Generate
//	hit/     — the Hit contract shared by hitpair and hitset
//	hitpair/ — HitPairIter ordered-merge pair iteration
//	hitset/  — HitSet and the plane-pattern similarity test
//	walk/    — DFS/BFS traversal of a built pattern tree
//
// bandtrace does not know about detector geometry services, drift-time
// conversion, or track fitting; it only builds and walks the pattern
// template tree and hands matched hit sets to whatever the caller's
// road-building pipeline looks like.
package bandtrace
