// Package scc finds the strongly connected components of a depgraph.Graph
// using an iterative formulation of Tarjan's algorithm. The recursive
// formulation is the textbook shape, but it risks stack overflow on deep
// dependency chains; this package replaces the call stack with an
// explicit work stack of (node, next-successor-index) frames, matching
// this codebase's preference for bounded, inspectable iteration over
// unbounded recursion in algorithms whose input size is caller-controlled.
package scc
