// Package search implements the path-finding strategies of gridpath on top
// of a single priority-queue-driven skeleton.
//
// Overview:
//
//   - NaiveWalker walks straight along X, then along Y. It ignores costs and
//     walls and exists to exercise the Strategy contract.
//   - UniformCost ("dijkstra") is classic uniform-cost search: settle each
//     cell once, stop when the goal is popped.
//   - HeuristicSearch ("astar-exp", "astar-div", "astar-msh") adds a
//     heuristic from package heuristic to every enqueue priority.
//
// All queue-driven strategies share Searcher, configured by a Policy:
//
//   - Policy.SettleOnce: discard entries of already-settled cells at pop
//     time (Dijkstra style). When false, a settled cell may be popped and
//     expanded again; "astar-exp" and "astar-msh" run this way.
//   - Policy.Heuristic: nil for uniform-cost search.
//
// Frontier:
//
//   - A container/heap min-heap ordered by core.CompareCoordinates
//     (priority, then X, then Y) and finally insertion sequence, so equal
//     priorities pop in a reproducible order.
//   - Lazy decrease-key: an improved cell is pushed again and the outdated
//     entry is filtered when popped. Under SettleOnce every neighbour is
//     re-enqueued after relaxation even when its cost did not improve,
//     carrying the last priority recorded for it.
//
// Complexity (SettleOnce):
//
//   - Time:  O((V + E) log E), V = W×L cells, E ≤ d·V.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - core.ErrPathNotFound:    the frontier drained before the goal was popped.
//   - core.ErrNilGrid, core.ErrBadDimensions, core.ErrStartOutOfBounds,
//     core.ErrGoalOutOfBounds: the grid failed validation before the search.
//   - core.ErrNeighborOutOfBounds: the grid offered an out-of-bounds neighbour.
//   - ErrNegativeEdgeCost:    an edge cost was negative or NaN.
//   - ErrExpansionLimit:      WithMaxExpansions cap reached.
//   - ErrUnknownStrategy:     New was given an unregistered name.
//
// Observability:
//
//   - Every search logs one Debug line through the configured logrus entry.
//   - Prometheus: gridpath_search_total{strategy,outcome},
//     gridpath_search_expansions{strategy} and
//     gridpath_search_duration_seconds{strategy}.
//
// Thread safety:
//
//   - Strategies hold no per-search state; one value can serve concurrent
//     searches as long as each grid is not mutated during its search.
package search
