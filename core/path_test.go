package core_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strip is a width×1 corridor whose step cost is the x of the cell entered.
type strip struct {
	width      int
	start, end int
}

func (s strip) Dimensions() (int, int)    { return s.width, 1 }
func (s strip) Start() core.Coordinate    { return core.NewCoordinate(s.start, 0) }
func (s strip) Goal() core.Coordinate     { return core.NewCoordinate(s.end, 0) }
func (s strip) TileCost(x, _ int) float64 { return float64(x) }

func (s strip) Neighbors(c core.Coordinate) []core.Coordinate {
	var out []core.Coordinate
	if c.X > 0 {
		out = append(out, core.NewCoordinate(c.X-1, 0))
	}
	if c.X < s.width-1 {
		out = append(out, core.NewCoordinate(c.X+1, 0))
	}
	return out
}

func (s strip) EdgeCost(_, to core.Coordinate) float64 { return float64(to.X) }

func walk(xs ...int) []core.Coordinate {
	out := make([]core.Coordinate, len(xs))
	for i, x := range xs {
		out[i] = core.NewCoordinate(x, 0)
	}
	return out
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    core.GridView
		want error
	}{
		{"Nil", nil, core.ErrNilGrid},
		{"Empty", strip{width: 0}, core.ErrBadDimensions},
		{"StartOutside", strip{width: 3, start: 3}, core.ErrStartOutOfBounds},
		{"GoalOutside", strip{width: 3, end: -1}, core.ErrGoalOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := core.Validate(tc.g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	w, l, err := core.Validate(strip{width: 4, end: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, w)
	assert.Equal(t, 1, l)
}

func TestPathCost(t *testing.T) {
	g := strip{width: 5, end: 4}
	assert.Equal(t, 10.0, core.PathCost(g, walk(0, 1, 2, 3, 4)))
	assert.Equal(t, 0.0, core.PathCost(g, walk(2)))
	assert.Equal(t, 0.0, core.PathCost(g, nil))
}

func TestValidatePath(t *testing.T) {
	g := strip{width: 4, start: 1, end: 3}
	cases := []struct {
		name string
		path []core.Coordinate
		ok   bool
	}{
		{"Straight", walk(1, 2, 3), true},
		{"Backtrack", walk(1, 0, 1, 2, 3), true},
		{"Empty", nil, false},
		{"WrongStart", walk(0, 1, 2, 3), false},
		{"WrongEnd", walk(1, 2), false},
		{"Jump", walk(1, 3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := core.ValidatePath(g, tc.path)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, core.ErrBrokenPath)
		})
	}
}
