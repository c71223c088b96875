// Package planner turns a path request (tile costs, endpoints, strategy) into
// a TileMap, runs the requested strategy and shapes the answer. It is the
// single entry point shared by the HTTP service and the CLI.
package planner

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/converters"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/search"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidRequest indicates a request that failed field validation.
	ErrInvalidRequest = errors.New("planner: invalid request")

	// ErrGridTooLarge indicates a grid with more cells than Defaults.MaxCells.
	ErrGridTooLarge = errors.New("planner: grid exceeds the cell limit")
)

var validate = validator.New()

// Cell is the wire form of a grid cell.
type Cell struct {
	X int `json:"x" validate:"gte=0"`
	Y int `json:"y" validate:"gte=0"`
}

// Request describes one path query. Zero values of Strategy, Connectivity
// and CostModel fall back to the planner defaults.
type Request struct {
	Tiles          [][]float64 `json:"tiles" validate:"required,min=1,dive,min=1"`
	Start          Cell        `json:"start"`
	Goal           Cell        `json:"goal"`
	Strategy       string      `json:"strategy"`
	Connectivity   int         `json:"connectivity" validate:"omitempty,oneof=4 8"`
	CostModel      string      `json:"cost_model" validate:"omitempty,oneof=destination exp div"`
	CompareOptimal bool        `json:"compare_optimal"`
}

// Response is the answer to a Request. Cost is nil when the path crosses a
// wall (only the naive walker does that). OptimalCost and Gap are set when
// the request asked for a comparison with the reference optimum.
type Response struct {
	RequestID   string   `json:"request_id"`
	Strategy    string   `json:"strategy"`
	Path        []Cell   `json:"path"`
	Cost        *float64 `json:"cost"`
	Expanded    int      `json:"expanded"`
	OptimalCost *float64 `json:"optimal_cost,omitempty"`
	Gap         *float64 `json:"gap,omitempty"`
}

// Defaults are applied to requests that leave a field unset.
type Defaults struct {
	Strategy      string
	Connectivity  int
	CostModel     string
	MaxExpansions int
	MaxCells      int
}

// Planner is safe for concurrent use.
type Planner struct {
	defaults Defaults
	log      *logrus.Entry
}

// New returns a planner logging through log.
func New(defaults Defaults, log *logrus.Entry) *Planner {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if defaults.Strategy == "" {
		defaults.Strategy = search.NameDijkstra
	}
	if defaults.Connectivity == 0 {
		defaults.Connectivity = 4
	}

	return &Planner{defaults: defaults, log: log}
}

// Solve answers req. requestID tags the logs and the response; a random one
// is generated when it is empty.
func (p *Planner) Solve(requestID string, req Request) (*Response, error) {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := p.log.WithField("request_id", requestID)

	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	if n := len(req.Tiles) * len(req.Tiles[0]); p.defaults.MaxCells > 0 && n > p.defaults.MaxCells {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrGridTooLarge, n, p.defaults.MaxCells)
	}

	tm, err := p.tileMap(req)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(req.Strategy)
	if name == "" {
		name = p.defaults.Strategy
	}
	strategy, err := search.New(name,
		search.WithMaxExpansions(p.defaults.MaxExpansions),
		search.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	start, goal := core.Point{X: req.Start.X, Y: req.Start.Y}, core.Point{X: req.Goal.X, Y: req.Goal.Y}
	if name != search.NameNaive && !tm.Connected(start, goal) {
		log.WithFields(logrus.Fields{"start": start, "goal": goal}).Debug("goal lies in another region")
		return nil, fmt.Errorf("%w: %s and %s are in different regions", core.ErrPathNotFound, start, goal)
	}

	res, err := strategy.Search(tm)
	if err != nil {
		return nil, err
	}

	// Result.Cost is the goal's recorded cost; re-expansion can leave it
	// above the cost of the returned path.
	cost := core.PathCost(tm, res.Path)
	resp := &Response{
		RequestID: requestID,
		Strategy:  res.Strategy,
		Path:      cells(res.Path),
		Cost:      finite(cost),
		Expanded:  res.Expanded,
	}
	if req.CompareOptimal {
		if err := compare(tm, resp, cost); err != nil {
			return nil, err
		}
	}
	log.WithFields(logrus.Fields{
		"strategy": resp.Strategy,
		"length":   len(resp.Path),
		"expanded": resp.Expanded,
	}).Info("path computed")

	return resp, nil
}

// Strategies lists the strategy names a Request may carry.
func (p *Planner) Strategies() []string {
	return search.Names()
}

func (p *Planner) tileMap(req Request) (*gridmap.TileMap, error) {
	degree := req.Connectivity
	if degree == 0 {
		degree = p.defaults.Connectivity
	}
	conn, err := gridmap.ConnectivityFromDegree(degree)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
	}
	modelName := req.CostModel
	if modelName == "" {
		modelName = p.defaults.CostModel
	}
	model, err := gridmap.ParseCostModel(modelName)
	if err != nil {
		return nil, err
	}

	return gridmap.NewTileMap(req.Tiles,
		core.Point{X: req.Start.X, Y: req.Start.Y},
		core.Point{X: req.Goal.X, Y: req.Goal.Y},
		gridmap.Options{Conn: conn, CostModel: model},
	)
}

// compare fills OptimalCost and Gap = (cost - optimal) / optimal.
func compare(tm *gridmap.TileMap, resp *Response, cost float64) error {
	optimal, ok, err := converters.OptimalCost(tm)
	if err != nil || !ok {
		return err
	}
	resp.OptimalCost = finite(optimal)
	if math.IsInf(cost, 1) {
		return nil
	}
	gap := 0.0
	if optimal > 0 {
		gap = (cost - optimal) / optimal
	}
	resp.Gap = &gap

	return nil
}

func cells(path []core.Coordinate) []Cell {
	out := make([]Cell, len(path))
	for i, c := range path {
		out[i] = Cell{X: c.X, Y: c.Y}
	}

	return out
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}
