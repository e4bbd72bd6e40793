// Package pathfind finds least-cost routes across one map with Dijkstra's
// algorithm. Search state is memoized per source point, so repeated
// queries from the same start reuse the distances already relaxed.
package pathfind

import (
	"container/heap"
	"log/slog"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/expedition/internal/movement"
	"github.com/talgya/expedition/internal/world"
)

// Unreachable is the distance reported when no route exists.
const Unreachable = math.MaxInt32

// ceiling is where clamped addition saturates; any tentative distance at
// or above it is treated as infinite.
const ceiling = math.MaxInt32 - 1

// floor is where clamped addition saturates below.
const floor = math.MinInt32 + 1

// Pathfinder answers travel-distance queries against one map. It is not
// safe for concurrent use, and must be discarded (see Cache.Invalidate)
// if the map's terrain changes.
type Pathfinder struct {
	m       *world.Map
	sources map[world.Point]*search
}

// search is the memoized Dijkstra state for one source point.
type search struct {
	dist    map[world.Point]int
	prev    map[world.Point]world.Point
	settled mapset.Set[world.Point]
}

// New creates a Pathfinder over m.
func New(m *world.Map) *Pathfinder {
	return &Pathfinder{m: m, sources: make(map[world.Point]*search)}
}

// Map returns the map this pathfinder searches.
func (pf *Pathfinder) Map() *world.Map {
	return pf.m
}

// TravelDistance returns the least total movement cost from start to end
// and the points along the route, start and end included. If end cannot
// be reached it returns Unreachable and an empty path.
func (pf *Pathfinder) TravelDistance(start, end world.Point) (int, []world.Point) {
	dims := pf.m.Dimensions()
	start, end = dims.Wrap(start), dims.Wrap(end)
	if start == end {
		return 0, []world.Point{start}
	}

	s := pf.stateFor(start)
	if s.settled.Has(end) {
		return s.dist[end], s.path(start, end)
	}

	unvisited := mapset.New[world.Point]()
	queue := &frontier{}
	for _, p := range dims.Points() {
		unvisited.Put(p)
		if d := s.distance(p); d < ceiling {
			heap.Push(queue, entry{point: p, dist: d})
		}
	}

	for {
		current, ok := next(queue, unvisited, s)
		if !ok {
			return Unreachable, nil
		}
		estimate := s.distance(current)
		if estimate < 0 {
			slog.Error("negative tentative distance, abandoning search",
				"start", start, "end", end, "point", current, "distance", estimate)
			return Unreachable, nil
		}
		if current == end {
			s.settled.Put(current)
			return estimate, s.path(start, end)
		}
		for _, d := range world.Directions {
			neighbor := dims.Neighbor(current, d)
			if !unvisited.Has(neighbor) {
				continue
			}
			candidate := clampedAdd(estimate, movement.StepCost(pf.m, current, d))
			if candidate < 0 {
				slog.Error("negative relaxed distance, abandoning search",
					"start", start, "end", end, "point", neighbor, "distance", candidate)
				return Unreachable, nil
			}
			if candidate < s.distance(neighbor) {
				s.dist[neighbor] = candidate
				s.prev[neighbor] = current
				heap.Push(queue, entry{point: neighbor, dist: candidate})
			}
		}
		unvisited.Remove(current)
		s.settled.Put(current)
	}
}

func (pf *Pathfinder) stateFor(start world.Point) *search {
	s, ok := pf.sources[start]
	if !ok {
		s = &search{
			dist:    map[world.Point]int{start: 0},
			prev:    make(map[world.Point]world.Point),
			settled: mapset.New[world.Point](),
		}
		pf.sources[start] = s
	}
	return s
}

// distance returns the tentative distance of p, Unreachable if none.
func (s *search) distance(p world.Point) int {
	if d, ok := s.dist[p]; ok {
		return d
	}
	return Unreachable
}

func (s *search) path(start, end world.Point) []world.Point {
	path := []world.Point{end}
	for current := end; current != start; {
		prev, ok := s.prev[current]
		if !ok {
			return nil
		}
		path = append(path, prev)
		current = prev
	}
	slices.Reverse(path)
	return path
}

// next pops the unvisited point with the smallest finite tentative
// distance. Stale queue entries are skipped.
func next(queue *frontier, unvisited mapset.Set[world.Point], s *search) (world.Point, bool) {
	for queue.Len() > 0 {
		e := heap.Pop(queue).(entry)
		if !unvisited.Has(e.point) || e.dist != s.distance(e.point) {
			continue
		}
		if e.dist >= ceiling {
			return world.InvalidPoint, false
		}
		return e.point, true
	}
	return world.InvalidPoint, false
}

// clampedAdd adds without overflowing, saturating just inside the int32
// range.
func clampedAdd(a, b int) int {
	sum := int64(a) + int64(b)
	switch {
	case sum >= ceiling:
		return ceiling
	case sum <= floor:
		return floor
	default:
		return int(sum)
	}
}

type entry struct {
	point world.Point
	dist  int
}

// frontier is a min-heap of tentative distances.
type frontier []entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}
