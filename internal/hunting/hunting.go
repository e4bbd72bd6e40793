// Package hunting generates encounter sequences for hunting, fishing,
// trapping and gathering around a point of one map snapshot.
package hunting

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

const (
	// DefaultNothingProportion is the chance that a hunting or fishing
	// draw finds nothing.
	DefaultNothingProportion = 0.5

	searchRadius = 2
	checkBonus   = 15  // Added to the d20 roll against a candidate's DC.
	retryBudget  = 100 // Candidate samples per draw before giving up.
)

// Model draws encounters from a single map. It reads the map but never
// changes it.
type Model struct {
	m       *world.Map
	rng     *entropy.Source
	nothing float64
	aquatic mapset.Set[string]
}

// NewModel classifies aquatic animal kinds in m and returns a Model.
// A nothing proportion outside [0, 1) falls back to the default.
func NewModel(m *world.Map, rng *entropy.Source, nothing float64) *Model {
	if nothing < 0 || nothing >= 1 {
		slog.Warn("invalid nothing proportion, using default", "got", nothing, "default", DefaultNothingProportion)
		nothing = DefaultNothingProportion
	}
	aquatic := mapset.New[string]()
	for _, p := range m.Locations() {
		if m.Terrain(p) != world.TileOcean {
			continue
		}
		for _, f := range m.Fixtures(p) {
			if a, ok := f.(*fixture.Animal); ok {
				aquatic.Put(a.Kind)
			}
		}
	}
	slog.Debug("hunting model ready", "aquatic_kinds", aquatic.Size())
	return &Model{m: m, rng: rng, nothing: nothing, aquatic: aquatic}
}

// Aquatic reports whether animals of kind live in water.
func (h *Model) Aquatic(kind string) bool {
	return h.aquatic.Has(kind)
}

// Hunt returns the endless stream of land-animal encounters around p.
func (h *Model) Hunt(p world.Point) *Stream {
	return h.stream("hunt", h.animals(p, false))
}

// Fish returns the endless stream of aquatic-animal encounters around p.
func (h *Model) Fish(p world.Point) *Stream {
	return h.stream("fish", h.animals(p, true))
}

// Trap returns the endless stream of encounters for traps set around p.
// Traps catch the same land animals a hunter could find.
func (h *Model) Trap(p world.Point) *Stream {
	return h.stream("trap", h.animals(p, false))
}

func (h *Model) stream(activity string, pool []fixture.Fixture) *Stream {
	return &Stream{activity: activity, pool: pool, nothing: h.nothing, rng: h.rng}
}

// animals collects the non-talking animals within the search radius of
// p whose kind is (or is not) aquatic.
func (h *Model) animals(p world.Point, aquatic bool) []fixture.Fixture {
	var pool []fixture.Fixture
	for _, q := range h.m.Dimensions().Surrounding(p, searchRadius) {
		for _, f := range h.m.Fixtures(q) {
			a, ok := f.(*fixture.Animal)
			if !ok || a.Talking || h.aquatic.Has(a.Kind) != aquatic {
				continue
			}
			pool = append(pool, a)
		}
	}
	return pool
}

// Stream is an endless sequence of encounters. Each draw finds nothing
// with the model's nothing proportion; otherwise candidates are sampled
// uniformly until one passes a d20+15 check against its DC, so easier
// quarry turns up more often.
type Stream struct {
	activity string
	pool     []fixture.Fixture
	nothing  float64
	rng      *entropy.Source
}

// Candidates returns the number of fixtures the stream draws from.
func (s *Stream) Candidates() int {
	return len(s.pool)
}

// Next draws one encounter, possibly fixture.Nothing.
func (s *Stream) Next() fixture.Fixture {
	if len(s.pool) == 0 || s.rng.Chance(s.nothing) {
		return fixture.Nothing
	}
	for range retryBudget {
		c := s.pool[s.rng.Intn(len(s.pool))]
		if s.rng.D20()+checkBonus >= c.DC() {
			return c
		}
	}
	slog.Warn("no candidate passed its check", "activity", s.activity, "candidates", len(s.pool), "attempts", retryBudget)
	return fixture.Nothing
}

// Take draws n encounters.
func (s *Stream) Take(n int) []fixture.Fixture {
	result := make([]fixture.Fixture, 0, n)
	for range n {
		result = append(result, s.Next())
	}
	return result
}
