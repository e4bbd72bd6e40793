package exploration

import (
	"log/slog"

	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/movement"
	"github.com/talgya/expedition/internal/world"
)

// MoveResult is the outcome of one step. A blocked step (land to ocean or
// into unknown terrain) is not an error: the unit stays put, the caller
// is still charged Cost, and subordinate maps still learn the terrain of
// the tile that blocked it.
type MoveResult struct {
	Destination world.Point
	Cost        int
	Blocked     bool
	// Watchers are other players' fixtures near the destination that may
	// have seen the move.
	Watchers []fixture.Fixture
}

// Move steps the selected unit one tile in direction d at the given
// speed. It returns ErrNoSelection if no unit is selected.
func (m *Model) Move(d world.Direction, speed movement.Speed) (MoveResult, error) {
	sel := m.selection
	if !sel.Valid() {
		return MoveResult{}, ErrNoSelection
	}
	unit, point := sel.Unit, sel.Point
	dest := m.main.Dimensions().Neighbor(point, d)

	if !movement.Traversable(m.main.Terrain(point), m.main.Terrain(dest)) {
		for _, sub := range m.subordinates {
			ensureTerrain(m.main, sub, dest)
		}
		slog.Debug("movement blocked",
			"unit", unit.String(), "from", point, "to", dest,
			"terrain", m.main.Terrain(dest).String())
		m.fireCost(BlockedCost)
		return MoveResult{Destination: point, Cost: BlockedCost, Blocked: true}, nil
	}

	base := 1
	if dest != point {
		base = movement.StepCost(m.main, point, d)
	}
	cost := movement.ScaledCost(base, speed)

	if dest != point {
		if !relocate(m.main, point, dest, unit) {
			slog.Warn("selected unit missing from main map at its location",
				"unit", unit.String(), "location", point)
			m.main.AddFixture(dest, unit)
		}
		m.main.SetModified(true)
		for i, sub := range m.subordinates {
			if !hasUnitAt(sub, point, unit) {
				continue
			}
			ensureTerrain(m.main, sub, dest)
			if !relocate(sub, point, dest, unit) {
				slog.Warn("failed to move unit in subordinate map",
					"unit", unit.String(), "subordinate", i)
				continue
			}
			sub.SetModified(true)
		}
	}

	m.setSelection(Selection{Point: dest, Unit: unit})
	m.fireCost(cost)
	watchers := m.nearbyWatchers(unit, dest)
	m.fixMovedUnits(unit, dest)
	return MoveResult{Destination: dest, Cost: cost, Watchers: watchers}, nil
}

// hasUnitAt reports whether m shows a unit matching u at p.
func hasUnitAt(m *world.Map, p world.Point, u *fixture.Unit) bool {
	for _, pl := range unitsAt(m, p) {
		if pl.unit == u || sameUnit(pl.unit, u) {
			return true
		}
	}
	return false
}

// relocate moves the unit matching u from one point to another in m. A
// unit stationed in a fortress leaves it.
func relocate(m *world.Map, from, to world.Point, u *fixture.Unit) bool {
	for _, pl := range unitsAt(m, from) {
		if pl.unit != u && !sameUnit(pl.unit, u) {
			continue
		}
		if !pl.remove(m) {
			return false
		}
		m.AddFixture(to, pl.unit)
		return true
	}
	return false
}

// nearbyWatchers logs and returns every fixture within watchRadius of
// dest owned by a player other than the mover's, ignoring independents.
func (m *Model) nearbyWatchers(mover *fixture.Unit, dest world.Point) []fixture.Fixture {
	var watchers []fixture.Fixture
	for _, p := range m.main.Dimensions().Surrounding(dest, watchRadius) {
		for _, f := range m.main.Fixtures(p) {
			owner, ok := fixture.OwnerOf(f)
			if !ok || owner.Independent() || fixture.SamePlayer(owner, mover.Owner) {
				continue
			}
			slog.Info("movement may have been observed",
				"mover", mover.String(), "destination", dest,
				"watcher", f.String(), "watcher_location", p)
			watchers = append(watchers, f)
		}
	}
	return watchers
}

// fixMovedUnits drops stale sightings near dest: any mobile fixture a
// subordinate map shows at a point where the main map no longer has it.
func (m *Model) fixMovedUnits(mover *fixture.Unit, dest world.Point) {
	for _, p := range m.main.Dimensions().Surrounding(dest, watchRadius) {
		current := m.main.Fixtures(p)
		for _, pl := range unitsAt(m.main, p) {
			current = append(current, pl.unit)
		}
		for i, sub := range m.subordinates {
			for _, f := range sub.Fixtures(p) {
				if !fixture.IsMobile(f) {
					continue
				}
				if u, ok := f.(*fixture.Unit); ok && (u == mover || sameUnit(u, mover)) {
					continue
				}
				if containsMatch(current, f) {
					continue
				}
				slog.Debug("removing stale sighting",
					"fixture", f.String(), "location", p, "subordinate", i)
				sub.RemoveFixture(p, f)
				sub.SetModified(true)
			}
		}
	}
}

func containsMatch(fixtures []fixture.Fixture, f fixture.Fixture) bool {
	for _, c := range fixtures {
		if fixture.Matches(c, f) {
			return true
		}
	}
	return false
}
