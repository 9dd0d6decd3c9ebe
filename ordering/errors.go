package ordering

import "errors"

// ErrCycleDetected is returned by TopoSortWithTiebreak in Strict mode
// when the condensation graph is not acyclic, which can only happen if
// an upstream stage (scc.StronglyConnectedComponents / depgraph.Condense)
// violated its own invariants.
var ErrCycleDetected = errors.New("ordering: condensation is not acyclic")
