package core

import "fmt"

// PathCost sums g.EdgeCost over consecutive coordinates of path.
// A path of zero or one coordinate costs 0.
func PathCost(g GridView, path []Coordinate) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.EdgeCost(path[i-1], path[i])
	}

	return total
}

// ValidatePath checks that path starts at g.Start(), ends at g.Goal() and
// that every step moves to a cell listed by g.Neighbors.
// It returns ErrBrokenPath (wrapped with the offending step) otherwise.
func ValidatePath(g GridView, path []Coordinate) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrBrokenPath)
	}
	if !path[0].Equal(g.Start()) {
		return fmt.Errorf("%w: begins at %s, start is %s", ErrBrokenPath, path[0], g.Start())
	}
	if last := path[len(path)-1]; !last.Equal(g.Goal()) {
		return fmt.Errorf("%w: ends at %s, goal is %s", ErrBrokenPath, last, g.Goal())
	}
	for i := 1; i < len(path); i++ {
		if !adjacent(g, path[i-1], path[i]) {
			return fmt.Errorf("%w: step %d %s→%s", ErrBrokenPath, i, path[i-1], path[i])
		}
	}

	return nil
}

func adjacent(g GridView, from, to Coordinate) bool {
	for _, n := range g.Neighbors(from) {
		if n.Equal(to) {
			return true
		}
	}

	return false
}
