package converters_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/converters"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

func TestToGonum_Shape(t *testing.T) {
	tm, err := gridmap.Uniform(3, 3, 1, core.Point{}, core.Point{X: 2, Y: 2}, gridmap.DefaultOptions())
	require.NoError(t, err)

	gg, err := converters.ToGonum(tm)
	require.NoError(t, err)
	assert.Len(t, graph.NodesOf(gg.Nodes()), 9)
	// 12 undirected adjacencies in a 3×3 Conn4 grid, one edge per direction.
	assert.Len(t, graph.EdgesOf(gg.Edges()), 24)

	w, ok := gg.Weight(converters.NodeID(3, 0, 0), converters.NodeID(3, 1, 0))
	assert.True(t, ok)
	assert.Equal(t, 1.0, w)
}

func TestToGonum_SkipsWalls(t *testing.T) {
	tm, err := gridmap.NewTileMap([][]float64{
		{1, 0},
		{1, 1},
	}, core.Point{}, core.Point{X: 1, Y: 1}, gridmap.DefaultOptions())
	require.NoError(t, err)

	gg, err := converters.ToGonum(tm)
	require.NoError(t, err)
	assert.Empty(t, graph.NodesOf(gg.To(converters.NodeID(2, 1, 0))), "nothing enters a wall")
	assert.False(t, gg.HasEdgeFromTo(converters.NodeID(2, 0, 0), converters.NodeID(2, 1, 0)))
}

func TestOptimalCost(t *testing.T) {
	cases := []struct {
		name  string
		tiles [][]float64
		goal  core.Point
		want  float64
		ok    bool
	}{
		{"Uniform3x3", [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, core.Point{X: 2, Y: 2}, 4, true},
		{"Detour", [][]float64{{1, 9, 1}, {1, 1, 1}}, core.Point{X: 2}, 4, true},
		{"StartIsGoal", [][]float64{{5}}, core.Point{}, 0, true},
		{"Walled", [][]float64{{1, 1, 1}, {1, 1, 0}, {1, 0, 1}}, core.Point{X: 2, Y: 2}, math.Inf(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm, err := gridmap.NewTileMap(tc.tiles, core.Point{}, tc.goal, gridmap.DefaultOptions())
			require.NoError(t, err)

			got, ok, err := converters.OptimalCost(tm)
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToGonum_NilGrid(t *testing.T) {
	_, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, core.ErrNilGrid)
}
