package converters

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// ErrNegativeWeight indicates an edge gonum's Dijkstra cannot accept.
var ErrNegativeWeight = errors.New("converters: negative or NaN edge cost")

// NodeID returns the gonum node ID of (x, y) in a grid of the given width.
func NodeID(width, x, y int) int64 {
	return int64(y*width + x)
}

// ToGonum builds a weighted directed graph holding one node per cell and one
// edge per (cell, neighbour) pair reported by g.Neighbors. Edges whose cost
// is +Inf are left out, since gonum treats a missing edge as +Inf.
func ToGonum(g core.GridView) (*simple.WeightedDirectedGraph, error) {
	width, length, err := core.Validate(g)
	if err != nil {
		return nil, err
	}

	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for y := 0; y < length; y++ {
		for x := 0; x < width; x++ {
			out.AddNode(simple.Node(NodeID(width, x, y)))
		}
	}
	for y := 0; y < length; y++ {
		for x := 0; x < width; x++ {
			from := core.NewCoordinate(x, y)
			for _, to := range g.Neighbors(from) {
				if !core.InBounds(width, length, to.X, to.Y) {
					return nil, fmt.Errorf("%w: %s from %s", core.ErrNeighborOutOfBounds, to, from)
				}
				if to.Equal(from) {
					continue
				}
				w := g.EdgeCost(from, to)
				if w < 0 || math.IsNaN(w) {
					return nil, fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeWeight, from, to, w)
				}
				if math.IsInf(w, 1) {
					continue
				}
				out.SetWeightedEdge(out.NewWeightedEdge(
					simple.Node(NodeID(width, from.X, from.Y)),
					simple.Node(NodeID(width, to.X, to.Y)),
					w,
				))
			}
		}
	}

	return out, nil
}

// OptimalCost returns the cheapest start-to-goal cost of g according to
// gonum's Dijkstra. ok is false when the goal is unreachable.
func OptimalCost(g core.GridView) (cost float64, ok bool, err error) {
	gg, err := ToGonum(g)
	if err != nil {
		return 0, false, err
	}
	width, _ := g.Dimensions()
	s, t := g.Start(), g.Goal()

	shortest := path.DijkstraFrom(simple.Node(NodeID(width, s.X, s.Y)), gg)
	_, cost = shortest.To(NodeID(width, t.X, t.Y))
	if math.IsInf(cost, 1) {
		return cost, false, nil
	}

	return cost, true, nil
}
