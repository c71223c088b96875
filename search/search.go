package search

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridpath/core"
	"github.com/sirupsen/logrus"
)

// Searcher is the priority-queue-driven skeleton shared by UniformCost and
// the HeuristicSearch variants. It is immutable after construction.
type Searcher struct {
	name    string
	policy  Policy
	options Options
}

var _ Reporter = (*Searcher)(nil)

// NewSearcher builds a skeleton search named name that runs under policy.
// Use it to experiment with policies the registry does not ship.
func NewSearcher(name string, policy Policy, opts ...Option) *Searcher {
	return &Searcher{
		name:    name,
		policy:  policy,
		options: buildOptions(opts),
	}
}

// Name implements Strategy.
func (s *Searcher) Name() string { return s.name }

// Policy returns the policy the searcher runs under.
func (s *Searcher) Policy() Policy { return s.policy }

// ComputePath implements Strategy.
func (s *Searcher) ComputePath(g core.GridView) ([]core.Coordinate, error) {
	res, err := s.Search(g)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs one search over g and returns the path with its statistics.
//
// Preconditions (checked by core.Validate before any allocation): g is
// non-nil, its dimensions are positive and start/goal are in bounds.
//
// Steps:
//  1. cost[*] = +Inf, prev[*] = none, explored[*] = false; cost[start] = 0.
//  2. Pop the minimum entry v; under SettleOnce skip it if v is explored.
//  3. Mark v explored; stop if v is the goal.
//  4. Relax every neighbour of v (see relax).
//  5. Rebuild the path from prev.
func (s *Searcher) Search(g core.GridView) (Result, error) {
	began := time.Now()
	width, length, err := core.Validate(g)
	if err != nil {
		observe(s.name, outcomeInvalid, 0, time.Since(began))
		return Result{Strategy: s.name}, err
	}

	r := &runner{
		g:      g,
		policy: s.policy,
		limit:  s.options.MaxExpansions,
		width:  width,
		length: length,
	}
	r.init()
	err = r.process()
	if err == nil {
		err = r.reconstruct()
	}
	r.res.Strategy = s.name

	s.report(r.res, err, time.Since(began))
	if err != nil {
		// statistics survive, the path never does
		r.res.Path, r.res.Cost = nil, 0
		return r.res, err
	}

	return r.res, nil
}

func (s *Searcher) report(res Result, err error, took time.Duration) {
	outcome := outcomeOf(err)
	observe(s.name, outcome, res.Expanded, took)

	log := s.options.Logger.WithFields(logrus.Fields{
		"strategy": s.name,
		"outcome":  outcome,
		"expanded": res.Expanded,
		"pushed":   res.Pushed,
		"took":     took,
	})
	if err != nil {
		log.WithError(err).Debug("search failed")
		return
	}
	log.WithFields(logrus.Fields{
		"cost":   res.Cost,
		"length": len(res.Path),
	}).Debug("search finished")
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g      core.GridView
	policy Policy
	limit  int

	width, length int
	start, goal   core.Coordinate

	cost     []float64 // best-known accumulated cost per cell
	priority []float64 // last enqueue priority recorded per cell
	prev     []int     // predecessor cell index, -1 for none
	explored []bool    // expanded at least once

	pq      frontier
	seq     uint64
	goalIdx int
	res     Result
}

// init sets every cell unvisited and pushes the start with priority 0.
func (r *runner) init() {
	n := r.width * r.length
	r.cost = make([]float64, n)
	r.priority = make([]float64, n)
	r.prev = make([]int, n)
	r.explored = make([]bool, n)
	for i := 0; i < n; i++ {
		r.cost[i] = math.Inf(1)
		r.priority[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.goalIdx = -1

	s, t := r.g.Start(), r.g.Goal()
	r.start = core.NewCoordinate(s.X, s.Y)
	r.goal = core.NewCoordinate(t.X, t.Y)
	si := r.index(r.start)
	r.cost[si] = 0
	r.priority[si] = 0

	r.pq = make(frontier, 0, n)
	heap.Init(&r.pq)
	r.push(r.start)
}

// process is the main loop. It returns nil once the goal is popped,
// core.ErrPathNotFound when the frontier drains first, or the first error
// raised while relaxing.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		v := heap.Pop(&r.pq).(entry).c
		vi := r.index(v)

		if r.explored[vi] {
			if r.policy.SettleOnce {
				r.res.StalePops++
				continue
			}
			r.res.Reexpanded++
		}
		r.explored[vi] = true
		r.res.Expanded++

		if v.Equal(r.goal) {
			r.goalIdx = vi
			return nil
		}
		if r.limit > 0 && r.res.Expanded >= r.limit {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.res.Expanded)
		}
		if err := r.relax(v, vi); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: frontier exhausted after %d expansions from %s to %s",
		core.ErrPathNotFound, r.res.Expanded, r.start, r.goal)
}

// relax offers every neighbour n of v the route through v.
//
// If alt = EdgeCost(v, n) + cost[v] beats cost[n], n gets the new cost, v as
// predecessor and a priority of alt (+ heuristic). Under SettleOnce a
// neighbour that did not improve is still re-enqueued with its last
// recorded priority; the duplicate is filtered at pop time. Without
// SettleOnce that redundant push is skipped, since re-expanding it would
// re-push its own neighbours and the frontier would never drain.
func (r *runner) relax(v core.Coordinate, vi int) error {
	for _, n := range r.g.Neighbors(v) {
		if !core.InBounds(r.width, r.length, n.X, n.Y) {
			return fmt.Errorf("%w: %s from %s", core.ErrNeighborOutOfBounds, n, v)
		}
		w := r.g.EdgeCost(v, n)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeEdgeCost, v, n, w)
		}
		ni := r.index(n)
		alt := w + r.cost[vi]

		if alt < r.cost[ni] {
			r.cost[ni] = alt
			p := alt
			if r.policy.Heuristic != nil {
				p += r.policy.Heuristic(r.g, n, v)
			}
			r.priority[ni] = p
			r.prev[ni] = vi
			r.push(n.WithPriority(p))
			continue
		}
		if r.policy.SettleOnce && !math.IsInf(r.cost[ni], 1) {
			r.push(n.WithPriority(r.priority[ni]))
		}
	}

	return nil
}

// reconstruct walks prev from the goal back to the start and reverses it.
func (r *runner) reconstruct() error {
	if r.goalIdx < 0 {
		return fmt.Errorf("%w: goal never popped", core.ErrPathNotFound)
	}
	si := r.index(r.start)
	path := []core.Coordinate{r.coordinate(r.goalIdx)}
	for at := r.goalIdx; at != si; {
		at = r.prev[at]
		if at < 0 || len(path) > len(r.prev) {
			return fmt.Errorf("%w: predecessor chain breaks before %s", core.ErrBrokenPath, r.start)
		}
		path = append(path, r.coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Path = path
	r.res.Cost = r.cost[r.goalIdx]

	return nil
}

func (r *runner) push(c core.Coordinate) {
	r.seq++
	r.res.Pushed++
	heap.Push(&r.pq, entry{c: c, seq: r.seq})
}

// index maps a coordinate to its row-major slot y*width + x.
func (r *runner) index(c core.Coordinate) int {
	return c.Y*r.width + c.X
}

func (r *runner) coordinate(i int) core.Coordinate {
	return core.NewCoordinate(i%r.width, i/r.width)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeFound
	case errors.Is(err, core.ErrPathNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrExpansionLimit):
		return outcomeLimit
	default:
		return outcomeError
	}
}
