// Package ordering turns a condensation DAG into a deterministic row and
// column order via Kahn's algorithm, breaking ties among simultaneously
// available components by (block size, component id) ascending so that
// smaller, simpler blocks surface first.
//
// The tie-break priority queue is modeled directly on this codebase's
// Dijkstra implementation: a container/heap min-heap that is never
// decrease-keyed, only ever pushed fresh. Each component is pushed
// exactly once, when its in-degree reaches zero, so no visited check is
// needed on pop.
package ordering
