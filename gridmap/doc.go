// Package gridmap provides TileMap, a rectangular tile-cost grid that
// implements core.GridView.
//
// What:
//
//   - TileMap wraps a [][]float64 of tile costs (costs[y][x]) with a fixed
//     start and goal.
//   - Conn4 or Conn8 neighbour enumeration; impassable tiles are skipped.
//   - Three edge-cost models: DestinationTile (cost of the tile entered),
//     HeightExp (2^(h(to)−h(from))) and HeightDiv (h(from)/(h(to)+1)).
//   - Regions / Connected answer reachability without running a search.
//
// Tile values:
//
//   - value > 0 and finite: an ordinary tile.
//   - value == 0 or +Inf:   a wall; TileCost reports +Inf.
//   - value < 0 or NaN:     rejected with ErrBadTileCost.
//
// Complexity:
//
//   - NewTileMap:  O(W×H) time and memory (deep copy).
//   - Neighbors:   O(d), d = 4 or 8.
//   - Regions:     O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadTileCost:    a tile value is negative or NaN.
//   - ErrOutOfBounds:    start or goal lies outside the grid.
//   - ErrWallEndpoint:   start or goal sits on a wall.
package gridmap
