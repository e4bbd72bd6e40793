// Package exploration moves the selected unit across the main map and
// keeps every subordinate map (a player's limited view) loosely in sync
// with it. Subordinate maps are best-effort: a mismatch is logged and the
// operation carries on, and nothing is rolled back if a later map fails.
package exploration

import (
	"errors"
	"log/slog"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// Fixed movement-point charges.
const (
	BlockedCost = 1
	DigCost     = 4
	SwearCost   = 5
)

// watchRadius is how far around a destination other players' fixtures may
// observe a move, and how far stale sightings are cleaned up.
const watchRadius = 2

var (
	// ErrNoSelection means an operation needed a selected unit.
	ErrNoSelection = errors.New("exploration: no unit selected")
	// ErrRemovalPrecondition means a unit to be removed was not empty or
	// did not match the requested name and kind in some map.
	ErrRemovalPrecondition = errors.New("exploration: unit cannot be removed")
)

// Selection is the currently selected unit and where it stands.
type Selection struct {
	Point world.Point
	Unit  *fixture.Unit
}

// NoSelection is the empty selection.
var NoSelection = Selection{Point: world.InvalidPoint}

// Valid reports whether a unit is selected at a real location.
func (s Selection) Valid() bool {
	return s.Unit != nil && s.Point.Valid()
}

// Model is the exploration session over one main map and any number of
// subordinate maps. It is not safe for concurrent use.
type Model struct {
	main         *world.Map
	subordinates []*world.Map
	rng          *entropy.Source
	selection    Selection
	dismissed    []fixture.Fixture

	costListeners      []func(cost int)
	selectionListeners []func(previous, current Selection)
}

// NewModel creates a session over main. rng drives the random choices
// made by Dig and SwearVillages.
func NewModel(main *world.Map, rng *entropy.Source) *Model {
	return &Model{main: main, rng: rng, selection: NoSelection}
}

// AddSubordinateMap registers a player's view to keep in sync.
func (m *Model) AddSubordinateMap(sub *world.Map) {
	m.subordinates = append(m.subordinates, sub)
}

// MainMap returns the authoritative map.
func (m *Model) MainMap() *world.Map {
	return m.main
}

// Maps returns the main map followed by every subordinate map.
func (m *Model) Maps() []*world.Map {
	return append([]*world.Map{m.main}, m.subordinates...)
}

// Selection returns the current selection.
func (m *Model) Selection() Selection {
	return m.selection
}

// Dismissed returns the members removed through DismissUnitMember.
func (m *Model) Dismissed() []fixture.Fixture {
	return append([]fixture.Fixture(nil), m.dismissed...)
}

// OnMovementCost registers a listener for movement points spent.
func (m *Model) OnMovementCost(fn func(cost int)) {
	m.costListeners = append(m.costListeners, fn)
}

// OnSelectionChange registers a listener for selection changes.
func (m *Model) OnSelectionChange(fn func(previous, current Selection)) {
	m.selectionListeners = append(m.selectionListeners, fn)
}

func (m *Model) fireCost(cost int) {
	for _, fn := range m.costListeners {
		fn(cost)
	}
}

func (m *Model) setSelection(next Selection) {
	old := m.selection
	m.selection = next
	for _, fn := range m.selectionListeners {
		fn(old, next)
	}
}

// Select makes u the selected unit, located through the main map. A unit
// the main map does not contain (or nil) clears the selection. Every
// subordinate map that also has the unit is checked for agreement on its
// location; a disagreement is only logged.
func (m *Model) Select(u *fixture.Unit) {
	if u == nil {
		m.setSelection(NoSelection)
		return
	}
	loc := m.Find(u)
	if !loc.Valid() {
		slog.Debug("selected unit not on main map", "unit", u.String())
		m.setSelection(NoSelection)
		return
	}
	for i, sub := range m.subordinates {
		for _, pl := range unitsIn(sub) {
			if sameUnit(pl.unit, u) && pl.point != loc {
				slog.Warn("subordinate map disagrees on unit location",
					"unit", u.String(), "main", loc, "subordinate", i, "location", pl.point)
			}
		}
	}
	m.setSelection(Selection{Point: loc, Unit: u})
}

// Find returns where f is on the main map, looking at top-level fixtures
// and one level inside fortresses, or world.InvalidPoint. Diggable
// deposits also match a copy differing only in rolled difficulty.
func (m *Model) Find(f fixture.Fixture) world.Point {
	if f == nil {
		return world.InvalidPoint
	}
	for _, p := range m.main.Locations() {
		for _, candidate := range m.main.Fixtures(p) {
			if findMatches(f, candidate) {
				return p
			}
			if fort, ok := candidate.(*fixture.Fortress); ok {
				for _, inner := range fort.Members {
					if findMatches(f, inner) {
						return p
					}
				}
			}
		}
	}
	return world.InvalidPoint
}

func findMatches(target, candidate fixture.Fixture) bool {
	if candidate == target || candidate.Equals(target) {
		return true
	}
	return fixture.IsDiggable(target) && fixture.EqualEnough(target, candidate)
}
