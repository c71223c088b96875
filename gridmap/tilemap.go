package gridmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// NewTileMap constructs a TileMap from a non-empty, rectangular 2D slice of
// tile costs indexed costs[y][x]. It deep-copies the input to ensure
// immutability. Zero and +Inf tiles become walls.
//
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadTileCost for negative or
// NaN values, ErrOutOfBounds if start or goal is outside the grid and
// ErrWallEndpoint if either sits on a wall.
// Complexity: O(W×H) time and memory.
func NewTileMap(costs [][]float64, start, goal core.Point, opts Options) (*TileMap, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	l, w := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]float64, w*l)
	for y := 0; y < l; y++ {
		for x := 0; x < w; x++ {
			v := costs[y][x]
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: (%d,%d)=%v", ErrBadTileCost, x, y, v)
			}
			if v == 0 {
				v = math.Inf(1)
			}
			cells[y*w+x] = v
		}
	}
	for _, p := range []core.Point{start, goal} {
		if !core.InBounds(w, l, p.X, p.Y) {
			return nil, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, p, w, l)
		}
		if core.Impassable(cells[p.Y*w+p.X]) {
			return nil, fmt.Errorf("%w: %s", ErrWallEndpoint, p)
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &TileMap{
		Width:           w,
		Length:          l,
		Conn:            opts.Conn,
		CostModel:       opts.CostModel,
		start:           start,
		goal:            goal,
		costs:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Uniform builds a width×length TileMap where every tile costs c.
func Uniform(width, length int, c float64, start, goal core.Point, opts Options) (*TileMap, error) {
	rows := make([][]float64, length)
	for y := range rows {
		rows[y] = make([]float64, width)
		for x := range rows[y] {
			rows[y][x] = c
		}
	}

	return NewTileMap(rows, start, goal, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (tm *TileMap) InBounds(x, y int) bool {
	return core.InBounds(tm.Width, tm.Length, x, y)
}

// Dimensions implements core.GridView.
func (tm *TileMap) Dimensions() (width, length int) {
	return tm.Width, tm.Length
}

// Start implements core.GridView.
func (tm *TileMap) Start() core.Coordinate {
	return core.NewCoordinate(tm.start.X, tm.start.Y)
}

// Goal implements core.GridView.
func (tm *TileMap) Goal() core.Coordinate {
	return core.NewCoordinate(tm.goal.X, tm.goal.Y)
}

// TileCost returns the stored cost of (x, y); walls and out-of-bounds cells report +Inf.
func (tm *TileMap) TileCost(x, y int) float64 {
	if !tm.InBounds(x, y) {
		return math.Inf(1)
	}

	return tm.costs[tm.index(x, y)]
}

// Neighbors returns the passable in-bounds cells adjacent to c under tm.Conn,
// in offset order (N, E, S, W, with diagonals interleaved for Conn8).
// Returned coordinates carry a zero priority.
func (tm *TileMap) Neighbors(c core.Coordinate) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(tm.neighborOffsets))
	for _, d := range tm.neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !tm.InBounds(nx, ny) || core.Impassable(tm.costs[tm.index(nx, ny)]) {
			continue
		}
		out = append(out, core.NewCoordinate(nx, ny))
	}

	return out
}

// EdgeCost returns the cost of stepping from one cell to an adjacent one
// according to tm.CostModel. Entering a wall costs +Inf.
func (tm *TileMap) EdgeCost(from, to core.Coordinate) float64 {
	hTo := tm.TileCost(to.X, to.Y)
	if core.Impassable(hTo) {
		return math.Inf(1)
	}
	switch tm.CostModel {
	case HeightExp:
		return math.Pow(2, hTo-tm.TileCost(from.X, from.Y))
	case HeightDiv:
		return tm.TileCost(from.X, from.Y) / (hTo + 1)
	default:
		return hTo
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (tm *TileMap) index(x, y int) int {
	return y*tm.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (tm *TileMap) Coordinate(idx int) (x, y int) {
	return idx % tm.Width, idx / tm.Width
}
