package search

import (
	"time"

	"github.com/katalvlaran/gridpath/core"
	"github.com/sirupsen/logrus"
)

// NaiveWalker walks from start along X until the column matches the goal,
// then along Y. It never looks at costs or walls.
type NaiveWalker struct {
	options Options
}

var _ Reporter = (*NaiveWalker)(nil)

// NewNaiveWalker returns the straight-line walker.
func NewNaiveWalker(opts ...Option) *NaiveWalker {
	return &NaiveWalker{options: buildOptions(opts)}
}

// Name implements Strategy.
func (w *NaiveWalker) Name() string { return NameNaive }

// ComputePath implements Strategy. The path has |dx| + |dy| + 1 coordinates.
func (w *NaiveWalker) ComputePath(g core.GridView) ([]core.Coordinate, error) {
	res, err := w.Search(g)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search walks the grid and reports the walk as a Result. Cost is the sum of
// g.EdgeCost along the walk and may be +Inf when the walk crosses a wall.
func (w *NaiveWalker) Search(g core.GridView) (Result, error) {
	began := time.Now()
	if _, _, err := core.Validate(g); err != nil {
		observe(NameNaive, outcomeInvalid, 0, time.Since(began))
		return Result{Strategy: NameNaive}, err
	}

	s, t := g.Start(), g.Goal()
	cur := core.NewCoordinate(s.X, s.Y)
	path := make([]core.Coordinate, 0, abs(t.X-s.X)+abs(t.Y-s.Y)+1)
	path = append(path, cur)
	for cur.X != t.X {
		cur.X += sign(t.X - cur.X)
		path = append(path, cur)
	}
	for cur.Y != t.Y {
		cur.Y += sign(t.Y - cur.Y)
		path = append(path, cur)
	}

	res := Result{
		Strategy: NameNaive,
		Path:     path,
		Cost:     core.PathCost(g, path),
		Expanded: len(path),
	}
	took := time.Since(began)
	observe(NameNaive, outcomeFound, res.Expanded, took)
	w.options.Logger.WithFields(logrus.Fields{
		"strategy": NameNaive,
		"length":   len(path),
		"cost":     res.Cost,
		"took":     took,
	}).Debug("walk finished")

	return res, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
