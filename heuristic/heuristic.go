// Package heuristic holds the cost-to-go estimates used by the heuristic
// search strategies. Every estimate is a pure function of a grid snapshot
// and two coordinates; none is admissible in general.
//
// Formulas (cheb = Chebyshev distance from neighbour to goal):
//
//   - Exp: deltaH = TileCost(goal) − TileCost(current).
//     neighbour > current (by Priority): 2·deltaH + max(0, cheb − deltaH)
//     neighbour < current:               2^(deltaH / cheb) · cheb, 0 when cheb = 0
//     otherwise:                         cheb
//   - Div: max((cheb − ⌊log2(TileCost(current))⌋) / 2, 0)
//   - MSH: the Exp formula under its own tag.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// ErrUnknownHeuristic indicates a tag with no registered heuristic.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Func estimates the remaining cost at neighbor, reached from current.
type Func func(g core.GridView, neighbor, current core.Coordinate) float64

// Tags of the built-in heuristics.
const (
	TagExp = "exp"
	TagDiv = "div"
	TagMSH = "msh"
)

var registry = map[string]Func{
	TagExp: Exp,
	TagDiv: Div,
	// MSH has always shared the Exp formula; it keeps its own tag so
	// experiments can diverge without touching callers.
	TagMSH: Exp,
}

// ByTag returns the heuristic registered under tag (case-insensitive).
func ByTag(tag string) (Func, error) {
	if h, ok := registry[strings.ToLower(tag)]; ok {
		return h, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, tag)
}

// Tags lists the registered heuristic tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for t := range registry {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return tags
}

// Chebyshev returns max(|a.X−b.X|, |a.Y−b.Y|).
func Chebyshev(a, b core.Coordinate) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}

// Exp compares neighbor and current by Priority and scales the Chebyshev
// distance by the tile-cost difference between goal and current.
func Exp(g core.GridView, neighbor, current core.Coordinate) float64 {
	goal := g.Goal()
	cheb := Chebyshev(goal, neighbor)
	deltaH := g.TileCost(goal.X, goal.Y) - g.TileCost(current.X, current.Y)

	switch {
	case current.Less(neighbor):
		return 2*deltaH + math.Max(0, cheb-deltaH)
	case neighbor.Less(current):
		if cheb == 0 {
			// neighbor is the goal
			return 0
		}
		return math.Pow(2, deltaH/cheb) * cheb
	default:
		return cheb
	}
}

// Div discounts the Chebyshev distance by the binary magnitude of the
// current tile cost and halves it.
func Div(g core.GridView, neighbor, current core.Coordinate) float64 {
	cheb := Chebyshev(g.Goal(), neighbor)
	edge := math.Floor(math.Log2(g.TileCost(current.X, current.Y)))

	return math.Max((cheb-edge)/2, 0)
}
