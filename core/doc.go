// Package core defines the shared vocabulary of gridpath: the Coordinate
// type, the GridView contract that every search strategy consumes, and the
// sentinel errors used to report malformed grids and unreachable goals.
//
// What:
//
//   - Coordinate: an (X, Y) cell identity plus a Priority scratch key that is
//     only meaningful while the coordinate sits in a search frontier.
//   - GridView: read-only access to grid dimensions, start/goal, tile costs,
//     neighbour enumeration and edge costs.
//   - Validate: fail-fast precondition checks run before any search starts.
//   - PathCost / ValidatePath: helpers to score and sanity-check a result.
//
// Identity vs. ordering:
//
//	Two coordinates are the same cell iff X and Y match (Equal, Point).
//	Frontier ordering uses Priority only (Less); CompareCoordinates adds a
//	deterministic tie-break on X, then Y, so equal-priority entries pop in a
//	reproducible order.
//
// Errors:
//
//   - ErrNilGrid:             the GridView is nil.
//   - ErrBadDimensions:       width or length is not positive.
//   - ErrStartOutOfBounds:    Start() lies outside the grid.
//   - ErrGoalOutOfBounds:     Goal() lies outside the grid.
//   - ErrNeighborOutOfBounds: Neighbors returned a cell outside the grid.
//   - ErrPathNotFound:        the goal cannot be reached from the start.
//   - ErrBrokenPath:          a path is empty, misplaced or not contiguous.
package core
