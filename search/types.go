package search

import (
	"errors"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the search strategies.
var (
	// ErrNegativeEdgeCost indicates that GridView.EdgeCost returned a negative or NaN cost.
	ErrNegativeEdgeCost = errors.New("search: negative edge cost encountered")

	// ErrExpansionLimit indicates that the search hit its MaxExpansions cap.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")

	// ErrUnknownStrategy indicates that no strategy is registered under the requested name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy computes a path from g.Start() to g.Goal(), both inclusive.
type Strategy interface {
	// Name returns the registry name of the strategy.
	Name() string

	// ComputePath returns the ordered path or an error; never a partial path.
	ComputePath(g core.GridView) ([]core.Coordinate, error)
}

// Reporter is a Strategy that also returns search statistics next to the
// path. Every built-in strategy implements it.
type Reporter interface {
	Strategy

	// Search runs one search and returns the path with its statistics. On
	// error the statistics are kept and the path is nil.
	Search(g core.GridView) (Result, error)
}

// Policy selects the behaviour of the shared search skeleton.
type Policy struct {
	// SettleOnce discards popped entries of cells that were already expanded.
	SettleOnce bool

	// Heuristic is added to the enqueue priority of every improved neighbour.
	// Nil means uniform-cost search.
	Heuristic heuristic.Func
}

// Result is the outcome of one search.
//
// Path    – start-to-goal coordinates, priorities cleared.
// Cost    – accumulated edge cost recorded for the goal.
// Expanded, Pushed, StalePops, Reexpanded – frontier statistics.
type Result struct {
	Strategy   string
	Path       []core.Coordinate
	Cost       float64
	Expanded   int
	Pushed     int
	StalePops  int
	Reexpanded int
}

// Options configures a Strategy.
//
// MaxExpansions – stop with ErrExpansionLimit after this many expansions.
//
//	Must be ≥ 0. Default 0 (no cap).
//
// Logger        – entry used for per-search Debug logs.
type Options struct {
	MaxExpansions int
	Logger        *logrus.Entry
}

// Option represents a functional option for configuring a Strategy.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions of one search.
// Zero disables the cap; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes per-search logs to entry.
func WithLogger(entry *logrus.Entry) Option {
	return func(o *Options) {
		if entry != nil {
			o.Logger = entry
		}
	}
}

// DefaultOptions returns Options with no expansion cap, logging through the
// logrus standard logger.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Logger:        logrus.NewEntry(logrus.StandardLogger()),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
