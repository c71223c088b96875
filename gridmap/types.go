package gridmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadTileCost indicates a negative or NaN tile value.
	ErrBadTileCost = errors.New("gridmap: tile cost must be non-negative")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
	// ErrWallEndpoint indicates a start or goal placed on an impassable tile.
	ErrWallEndpoint = errors.New("gridmap: start and goal must not be walls")
	// ErrUnknownCostModel indicates an unrecognised cost model name.
	ErrUnknownCostModel = errors.New("gridmap: unknown cost model")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// ConnectivityFromDegree maps 4 or 8 to the matching Connectivity.
func ConnectivityFromDegree(d int) (Connectivity, error) {
	switch d {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	}

	return Conn4, fmt.Errorf("gridmap: connectivity must be 4 or 8, got %d", d)
}

// CostModel decides how EdgeCost derives a step cost from tile values.
type CostModel int

const (
	// DestinationTile charges the cost of the tile being entered.
	DestinationTile CostModel = iota
	// HeightExp treats tiles as heights and charges 2^(h(to) − h(from)).
	HeightExp
	// HeightDiv treats tiles as heights and charges h(from) / (h(to) + 1).
	HeightDiv
)

var costModelNames = map[CostModel]string{
	DestinationTile: "destination",
	HeightExp:       "exp",
	HeightDiv:       "div",
}

// String returns the cost model's configuration name.
func (m CostModel) String() string {
	if name, ok := costModelNames[m]; ok {
		return name
	}

	return fmt.Sprintf("CostModel(%d)", int(m))
}

// ParseCostModel resolves a configuration name ("destination", "exp", "div").
// The empty string selects DestinationTile.
func ParseCostModel(name string) (CostModel, error) {
	if name == "" {
		return DestinationTile, nil
	}
	for m, n := range costModelNames {
		if strings.EqualFold(n, name) {
			return m, nil
		}
	}

	return DestinationTile, fmt.Errorf("%w: %q", ErrUnknownCostModel, name)
}

// Options contains tunable parameters for a TileMap.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CostModel chooses how EdgeCost is computed.
	CostModel CostModel
}

// DefaultOptions returns Options with Conn=Conn4 and CostModel=DestinationTile.
func DefaultOptions() Options {
	return Options{
		Conn:      Conn4,
		CostModel: DestinationTile,
	}
}

// TileMap is an immutable tile-cost grid with a fixed start and goal.
// Width and Length define dimensions; costs is row-major (y*Width + x),
// with walls stored as +Inf.
type TileMap struct {
	Width, Length   int
	Conn            Connectivity
	CostModel       CostModel
	start, goal     core.Point
	costs           []float64
	neighborOffsets [][2]int
}

var _ core.GridView = (*TileMap)(nil)
