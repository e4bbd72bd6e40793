package exploration

import (
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// placement is where a unit sits in one map: at a point, either directly
// or stationed inside a fortress.
type placement struct {
	point    world.Point
	unit     *fixture.Unit
	fortress *fixture.Fortress
}

// remove takes the unit out of the map (or its fortress).
func (pl placement) remove(m *world.Map) bool {
	if pl.fortress != nil {
		return pl.fortress.RemoveMember(pl.unit)
	}
	return m.RemoveFixture(pl.point, pl.unit)
}

// unitsIn returns every unit in m, top-level or inside a fortress.
func unitsIn(m *world.Map) []placement {
	var result []placement
	for _, p := range m.Locations() {
		result = append(result, unitsAt(m, p)...)
	}
	return result
}

// unitsAt returns the units at p, top-level or inside a fortress.
func unitsAt(m *world.Map, p world.Point) []placement {
	var result []placement
	for _, f := range m.Fixtures(p) {
		switch v := f.(type) {
		case *fixture.Unit:
			result = append(result, placement{point: p, unit: v})
		case *fixture.Fortress:
			for _, inner := range v.Members {
				if u, ok := inner.(*fixture.Unit); ok {
					result = append(result, placement{point: p, unit: u, fortress: v})
				}
			}
		}
	}
	return result
}

// sameUnit matches corresponding units across map instances, where object
// identity differs: same owner, kind, name and ID.
func sameUnit(a, b *fixture.Unit) bool {
	return a.ID == b.ID && a.Owner.ID == b.Owner.ID && a.Kind == b.Kind && a.Name == b.Name
}

// matchingUnit finds the unit in m corresponding to ref.
func matchingUnit(m *world.Map, ref *fixture.Unit) (placement, bool) {
	for _, pl := range unitsIn(m) {
		if pl.unit == ref || sameUnit(pl.unit, ref) {
			return pl, true
		}
	}
	return placement{}, false
}

// sameItem matches corresponding fixtures across map instances: same
// variant and ID, plus the same owner, kind and name where the variant
// has them.
func sameItem(a, b fixture.Fixture) bool {
	if a == b {
		return true
	}
	if !fixture.SameVariant(a, b) || a.FixtureID() != b.FixtureID() {
		return false
	}
	if ua, ok := a.(*fixture.Unit); ok {
		return sameUnit(ua, b.(*fixture.Unit))
	}
	if ka, ok := fixture.KindOf(a); ok {
		if kb, _ := fixture.KindOf(b); ka != kb {
			return false
		}
	}
	if na, ok := fixture.NameOf(a); ok {
		if nb, _ := fixture.NameOf(b); na != nb {
			return false
		}
	}
	if oa, ok := fixture.OwnerOf(a); ok {
		if ob, _ := fixture.OwnerOf(b); oa.ID != ob.ID {
			return false
		}
	}
	return true
}

// located is a fixture found while walking a map, with the container
// holding it (nil for top-level fixtures).
type located struct {
	point  world.Point
	item   fixture.Fixture
	parent fixture.Fixture
}

// walk lists every fixture in m: top-level, inside fortresses, and inside
// units (including units in fortresses).
func walk(m *world.Map) []located {
	var result []located
	var visit func(p world.Point, f, parent fixture.Fixture)
	visit = func(p world.Point, f, parent fixture.Fixture) {
		result = append(result, located{point: p, item: f, parent: parent})
		if contents, ok := fixture.Contents(f); ok {
			for _, inner := range contents {
				visit(p, inner, f)
			}
		}
	}
	for _, p := range m.Locations() {
		for _, f := range m.Fixtures(p) {
			visit(p, f, nil)
		}
	}
	return result
}

// matchesIn returns every fixture in m corresponding to ref.
func matchesIn(m *world.Map, ref fixture.Fixture) []located {
	var result []located
	for _, l := range walk(m) {
		if sameItem(l.item, ref) {
			result = append(result, l)
		}
	}
	return result
}

// matchIn returns the fixture among fixtures denoting the same object
// as f, or nil.
func matchIn(fixtures []fixture.Fixture, f fixture.Fixture) fixture.Fixture {
	for _, c := range fixtures {
		if fixture.Matches(c, f) {
			return c
		}
	}
	return nil
}

// ownUnit reports whether f is a unit belonging to m's current player.
func ownUnit(m *world.Map, f fixture.Fixture) bool {
	u, ok := f.(*fixture.Unit)
	if !ok {
		return false
	}
	current, ok := m.CurrentPlayer()
	return ok && fixture.SamePlayer(u.Owner, current)
}

// ensureTerrain copies terrain, mountain, river and road knowledge of p
// from main into sub wherever sub lacks it. It reports whether sub
// changed.
func ensureTerrain(main, sub *world.Map, p world.Point) bool {
	changed := false
	if sub.Terrain(p) == world.TileUnknown {
		if t := main.Terrain(p); t != world.TileUnknown {
			sub.SetTerrain(p, t)
			changed = true
		}
	}
	if main.Mountainous(p) && !sub.Mountainous(p) {
		sub.SetMountainous(p, true)
		changed = true
	}
	if missing := main.Rivers(p) &^ sub.Rivers(p); !missing.Empty() {
		sub.AddRivers(p, missing)
		changed = true
	}
	for d, level := range main.Roads(p) {
		if sub.RoadLevel(p, d) < level {
			sub.SetRoadLevel(p, d, level)
			changed = true
		}
	}
	if changed {
		sub.SetModified(true)
	}
	return changed
}
