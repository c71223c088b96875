package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/stretchr/testify/require"
)

// stubGrid is a hand-wired GridView for contract violations TileMap cannot
// express (bad dimensions, out-of-bounds neighbours, negative costs).
type stubGrid struct {
	width, length int
	start, goal   core.Coordinate
	neighbors     func(c core.Coordinate) []core.Coordinate
	edge          func(from, to core.Coordinate) float64
}

func (s *stubGrid) Dimensions() (int, int)    { return s.width, s.length }
func (s *stubGrid) Start() core.Coordinate    { return s.start }
func (s *stubGrid) Goal() core.Coordinate     { return s.goal }
func (s *stubGrid) TileCost(x, y int) float64 { return 1 }

func (s *stubGrid) Neighbors(c core.Coordinate) []core.Coordinate {
	if s.neighbors == nil {
		return nil
	}
	return s.neighbors(c)
}

func (s *stubGrid) EdgeCost(from, to core.Coordinate) float64 {
	if s.edge == nil {
		return 1
	}
	return s.edge(from, to)
}

// uniform3x3 is the 3×3 all-ones map from (0,0) to (2,2), 4-connected.
func uniform3x3(t testing.TB) *gridmap.TileMap {
	t.Helper()
	tm, err := gridmap.Uniform(3, 3, 1, core.Point{}, core.Point{X: 2, Y: 2}, gridmap.DefaultOptions())
	require.NoError(t, err)
	return tm
}

// walled is a 3×3 map whose goal (2,2) is fenced off by walls.
//
//	1 1 1
//	1 1 #
//	1 # 1
func walled(t testing.TB) *gridmap.TileMap {
	t.Helper()
	tm, err := gridmap.NewTileMap([][]float64{
		{1, 1, 1},
		{1, 1, 0},
		{1, 0, 1},
	}, core.Point{}, core.Point{X: 2, Y: 2}, gridmap.DefaultOptions())
	require.NoError(t, err)
	return tm
}

// randomTiles returns a width×length grid of integer costs in [1, 9] with
// roughly wallRatio of the cells walled off. The corners (0,0) and
// (width-1, length-1) are never walls.
func randomTiles(rng *rand.Rand, width, length int, wallRatio float64) [][]float64 {
	rows := make([][]float64, length)
	for y := range rows {
		rows[y] = make([]float64, width)
		for x := range rows[y] {
			if rng.Float64() < wallRatio {
				continue
			}
			rows[y][x] = float64(1 + rng.Intn(9))
		}
	}
	rows[0][0] = float64(1 + rng.Intn(9))
	rows[length-1][width-1] = float64(1 + rng.Intn(9))

	return rows
}

// bruteForce enumerates every simple path from start to goal and returns the
// cheapest cost, +Inf when none exists.
func bruteForce(g core.GridView) float64 {
	width, _ := g.Dimensions()
	seen := map[int]bool{}
	best := math.Inf(1)
	goal := g.Goal()

	var walk func(c core.Coordinate, acc float64)
	walk = func(c core.Coordinate, acc float64) {
		if acc >= best {
			return
		}
		if c.Equal(goal) {
			best = acc
			return
		}
		seen[c.Y*width+c.X] = true
		for _, n := range g.Neighbors(c) {
			if seen[n.Y*width+n.X] {
				continue
			}
			walk(n, acc+g.EdgeCost(c, n))
		}
		seen[c.Y*width+c.X] = false
	}
	walk(g.Start(), 0)

	return best
}

// detour is a hand-wired graph on a 4×4 board whose Chebyshev estimate
// overshoots the cheap branch, so C is expanded before its best route is
// known.
//
//	S(0,0) -1-> A(0,3) -0.5-> C(2,1) -3-> G(3,0)
//	S(0,0) -1-> B(2,0) -1---> C(2,1)
//
// The optimal walk is S, A, C, G at cost 4.5.
func detour() *stubGrid {
	s, a, b, c, g := core.Point{}, core.Point{Y: 3}, core.Point{X: 2}, core.Point{X: 2, Y: 1}, core.Point{X: 3}
	edges := map[[2]core.Point]float64{
		{s, a}: 1, {s, b}: 1,
		{a, c}: 0.5, {b, c}: 1,
		{c, g}: 3,
	}
	out := map[core.Point][]core.Coordinate{
		s: {core.NewCoordinate(a.X, a.Y), core.NewCoordinate(b.X, b.Y)},
		a: {core.NewCoordinate(c.X, c.Y)},
		b: {core.NewCoordinate(c.X, c.Y)},
		c: {core.NewCoordinate(g.X, g.Y)},
	}

	return &stubGrid{
		width: 4, length: 4,
		start: core.NewCoordinate(s.X, s.Y), goal: core.NewCoordinate(g.X, g.Y),
		neighbors: func(v core.Coordinate) []core.Coordinate { return out[v.Point()] },
		edge: func(from, to core.Coordinate) float64 {
			return edges[[2]core.Point{from.Point(), to.Point()}]
		},
	}
}
