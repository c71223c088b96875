package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/gridpath/heuristic"
)

// Registry names of the built-in strategies.
const (
	NameNaive    = "naive"
	NameDijkstra = "dijkstra"
	NameAStarExp = "astar-exp"
	NameAStarDiv = "astar-div"
	NameAStarMSH = "astar-msh"
)

// settleOnce records, per heuristic tag, whether a cell may be expanded only
// once. Exp and MSH let a cell be popped and expanded again.
var settleOnce = map[string]bool{
	heuristic.TagExp: false,
	heuristic.TagDiv: true,
	heuristic.TagMSH: false,
}

var constructors = map[string]func(opts ...Option) Reporter{
	NameNaive:    func(opts ...Option) Reporter { return NewNaiveWalker(opts...) },
	NameDijkstra: func(opts ...Option) Reporter { return NewUniformCost(opts...) },
	NameAStarExp: heuristicConstructor(heuristic.TagExp),
	NameAStarDiv: heuristicConstructor(heuristic.TagDiv),
	NameAStarMSH: heuristicConstructor(heuristic.TagMSH),
}

// NewUniformCost returns Dijkstra-style uniform-cost search: no heuristic,
// each cell settled once.
func NewUniformCost(opts ...Option) *Searcher {
	return NewSearcher(NameDijkstra, Policy{SettleOnce: true}, opts...)
}

// NewHeuristicSearch returns the heuristic search registered under tag
// ("exp", "div" or "msh", case-insensitive).
func NewHeuristicSearch(tag string, opts ...Option) (*Searcher, error) {
	tag = strings.ToLower(tag)
	h, err := heuristic.ByTag(tag)
	if err != nil {
		return nil, err
	}

	return NewSearcher("astar-"+tag, Policy{SettleOnce: settleOnce[tag], Heuristic: h}, opts...), nil
}

func heuristicConstructor(tag string) func(opts ...Option) Reporter {
	return func(opts ...Option) Reporter {
		s, err := NewHeuristicSearch(tag, opts...)
		if err != nil {
			// tags above are all registered in package heuristic
			panic(err)
		}
		return s
	}
}

// New returns the strategy registered under name (case-insensitive).
func New(name string, opts ...Option) (Reporter, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}

	return ctor(opts...), nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for n := range constructors {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
