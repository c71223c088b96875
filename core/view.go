package core

import (
	"fmt"
	"math"
)

// GridView is the read-only grid a search runs against.
//
// Implementations must keep dimensions, start, goal and costs fixed for the
// duration of one search. Cells are addressed by X in [0, width) and Y in
// [0, length).
type GridView interface {
	// Dimensions returns the number of columns (width) and rows (length).
	Dimensions() (width, length int)

	// Start returns the cell the path begins at.
	Start() Coordinate

	// Goal returns the cell the path must reach.
	Goal() Coordinate

	// TileCost returns the cost of occupying (x, y). +Inf marks an impassable cell.
	TileCost(x, y int) float64

	// Neighbors returns the cells reachable from c in one step. It must stay
	// within bounds and may omit impassable cells.
	Neighbors(c Coordinate) []Coordinate

	// EdgeCost returns the cost of stepping from one cell to an adjacent one.
	EdgeCost(from, to Coordinate) float64
}

// InBounds reports whether (x, y) lies inside a width×length grid.
func InBounds(width, length, x, y int) bool {
	return x >= 0 && x < width && y >= 0 && y < length
}

// Validate checks the preconditions every search relies on and returns the
// grid dimensions on success.
//
// Order of checks:
//  1. g is non-nil (ErrNilGrid).
//  2. width and length are positive (ErrBadDimensions).
//  3. Start() is in bounds (ErrStartOutOfBounds).
//  4. Goal() is in bounds (ErrGoalOutOfBounds).
func Validate(g GridView) (width, length int, err error) {
	if g == nil {
		return 0, 0, ErrNilGrid
	}
	width, length = g.Dimensions()
	if width <= 0 || length <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, length)
	}
	if s := g.Start(); !InBounds(width, length, s.X, s.Y) {
		return 0, 0, fmt.Errorf("%w: %s in %dx%d", ErrStartOutOfBounds, s, width, length)
	}
	if t := g.Goal(); !InBounds(width, length, t.X, t.Y) {
		return 0, 0, fmt.Errorf("%w: %s in %dx%d", ErrGoalOutOfBounds, t, width, length)
	}

	return width, length, nil
}

// Impassable reports whether a tile cost marks a cell that cannot be entered.
func Impassable(cost float64) bool {
	return math.IsInf(cost, 1) || math.IsNaN(cost)
}
