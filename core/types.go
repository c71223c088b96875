package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid validation and path computation.
var (
	// ErrNilGrid indicates that a nil GridView was supplied.
	ErrNilGrid = errors.New("core: grid is nil")

	// ErrBadDimensions indicates a grid whose width or length is not positive.
	ErrBadDimensions = errors.New("core: grid dimensions must be positive")

	// ErrStartOutOfBounds indicates that the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("core: start coordinate out of bounds")

	// ErrGoalOutOfBounds indicates that the goal coordinate lies outside the grid.
	ErrGoalOutOfBounds = errors.New("core: goal coordinate out of bounds")

	// ErrNeighborOutOfBounds indicates that GridView.Neighbors yielded a cell outside the grid.
	ErrNeighborOutOfBounds = errors.New("core: neighbor coordinate out of bounds")

	// ErrPathNotFound indicates that the search exhausted its frontier without reaching the goal.
	ErrPathNotFound = errors.New("core: no path from start to goal")

	// ErrBrokenPath indicates a path that is empty, does not join start to goal,
	// or contains a step between non-adjacent cells.
	ErrBrokenPath = errors.New("core: path is not a contiguous start-to-goal walk")
)

// Point is the comparable identity of a grid cell. It is the key type for any
// map indexed by cell.
type Point struct {
	X, Y int
}

// String renders the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Coordinate is a grid cell plus a Priority key.
//
// Priority is scratch space owned by whichever frontier currently holds the
// coordinate. It never takes part in identity: Equal and Point ignore it.
type Coordinate struct {
	X, Y     int
	Priority float64
}

// NewCoordinate returns the coordinate (x, y) with a zero priority.
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Point returns the identity of c.
func (c Coordinate) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Equal reports whether c and o name the same cell.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Less reports whether c orders strictly before o by priority.
func (c Coordinate) Less(o Coordinate) bool {
	return c.Priority < o.Priority
}

// WithPriority returns a copy of c carrying priority p.
func (c Coordinate) WithPriority(p float64) Coordinate {
	c.Priority = p
	return c
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CompareCoordinates is the total order used by search frontiers.
// It compares Priority first, then X, then Y, and returns -1, 0 or +1.
func CompareCoordinates(a, b Coordinate) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	case a.X != b.X:
		if a.X < b.X {
			return -1
		}
		return 1
	case a.Y != b.Y:
		if a.Y < b.Y {
			return -1
		}
		return 1
	}

	return 0
}
