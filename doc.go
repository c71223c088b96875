// Package gridpath computes traversal paths across weighted 2-D grids: one
// start cell, one goal cell, a static cost per tile.
//
// 🚀 What is gridpath?
//
//	A small family of interchangeable search strategies sharing one
//	priority-queue-driven skeleton:
//		• naive      – straight walk along X, then Y
//		• dijkstra   – uniform-cost search, each cell settled once
//		• astar-exp  – heuristic search, Exp estimate, re-expansion allowed
//		• astar-div  – heuristic search, Div estimate, settled once
//		• astar-msh  – heuristic search, Exp formula under its own tag
//
// ✨ Guarantees
//
//   - Deterministic – equal priorities break on X, then Y, then insertion order
//   - Explicit failures – sentinel errors, never a partial path
//   - Stateless strategies – safe for concurrent searches on separate grids
//
// Packages:
//
//	core/       - Coordinate, Point, the GridView contract, path checks
//	gridmap/    - TileMap, a tile-cost GridView with Conn4/Conn8 and cost models
//	heuristic/  - Exp and Div cost-to-go estimates, registry by tag
//	search/     - NaiveWalker, UniformCost, HeuristicSearch, registry by name
//	converters/ - gonum export and reference optimum
//	cmd/        - gridpathd (HTTP service) and gridpath (CLI)
//
// Quick ASCII example (3×3, every tile costs 1, 4-connected):
//
//	S · ·
//	· · ·
//	· · G      dijkstra: S→(0,1)→(0,2)→(1,2)→G, cost 4
//
//	go get github.com/katalvlaran/gridpath
package gridpath
