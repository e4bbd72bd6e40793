package exploration

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// digShuffles bounds how many times Dig reshuffles looking for ground.
const digShuffles = 4

// Dig exposes one buried deposit at the selected location and propagates
// it to every map: the main map keeps the real fixture, each subordinate
// map gets a zeroed copy, replacing its own version if it has one. It
// charges DigCost and returns the exposed fixture, or nil if nothing at
// the location can be dug.
func (m *Model) Dig() (fixture.Fixture, error) {
	sel := m.selection
	if !sel.Valid() {
		return nil, ErrNoSelection
	}
	m.fireCost(DigCost)

	var diggables []fixture.Fixture
	for _, f := range m.main.Fixtures(sel.Point) {
		if fixture.IsDiggable(f) {
			diggables = append(diggables, f)
		}
	}
	if len(diggables) == 0 {
		return nil, nil
	}

	for i := 0; i < digShuffles; i++ {
		diggables = entropy.Shuffled(m.rng, diggables)
		if _, ok := diggables[0].(*fixture.Ground); ok {
			break
		}
	}
	original := diggables[0]
	exposed, _ := fixture.Expose(original)

	for i, mp := range m.Maps() {
		replacement := exposed
		if i > 0 {
			replacement = exposed.Copy(true)
			ensureTerrain(m.main, mp, sel.Point)
		}
		var existing fixture.Fixture
		for _, f := range mp.Fixtures(sel.Point) {
			if fixture.EqualEnough(f, original) || fixture.EqualEnough(f, exposed) {
				existing = f
				break
			}
		}
		if existing != nil {
			mp.ReplaceFixture(sel.Point, existing, replacement)
		} else {
			mp.AddFixture(sel.Point, replacement)
		}
		mp.SetModified(true)
	}
	slog.Debug("dug", "location", sel.Point, "fixture", exposed.String())
	return exposed, nil
}

// SwearVillages makes every independent village at the selected location,
// in every map, swear to the selected unit's owner. Subordinate maps also
// learn the terrain and forests of the surrounding tiles, plus at most one
// nearby plant and one nearby animal. It charges SwearCost and returns how
// many distinct villages changed hands.
func (m *Model) SwearVillages() (int, error) {
	sel := m.selection
	if !sel.Valid() {
		return 0, ErrNoSelection
	}
	owner := sel.Unit.Owner
	sworn := mapset.New[int]()
	for _, mp := range m.Maps() {
		newOwner := owner
		if local, ok := mp.Player(owner.ID); ok {
			newOwner = local
		}
		for _, f := range mp.Fixtures(sel.Point) {
			v, ok := f.(*fixture.Village)
			if !ok || !v.Owner.Independent() {
				continue
			}
			v.Owner = newOwner
			mp.SetModified(true)
			sworn.Put(v.ID)
		}
	}

	var vegetation, animals []located
	for _, p := range m.main.Dimensions().Surrounding(sel.Point, 1) {
		for _, sub := range m.subordinates {
			ensureTerrain(m.main, sub, p)
		}
		for _, f := range m.main.Fixtures(p) {
			switch {
			case fixture.IsVegetation(f):
				vegetation = append(vegetation, located{point: p, item: f})
			case fixture.IsAnimalOrTracks(f) && !talking(f):
				animals = append(animals, located{point: p, item: f})
			default:
				if _, ok := f.(*fixture.Forest); ok {
					m.addToSubMaps(p, f, true)
				}
			}
		}
	}
	if l, ok := entropy.Pick(m.rng, vegetation); ok {
		m.addToSubMaps(l.point, l.item, true)
	}
	if l, ok := entropy.Pick(m.rng, animals); ok {
		m.addToSubMaps(l.point, l.item, true)
	}

	m.fireCost(SwearCost)
	slog.Debug("villages sworn", "location", sel.Point, "count", sworn.Size(), "owner", owner.Name)
	return sworn.Size(), nil
}

func talking(f fixture.Fixture) bool {
	a, ok := f.(*fixture.Animal)
	return ok && a.Talking
}

// addToSubMaps copies f into every subordinate map. A stale copy of the
// same fixture at p is replaced; one that is already equal enough is left
// alone, as is a unit the map's own player owns. It reports whether any
// map changed.
func (m *Model) addToSubMaps(p world.Point, f fixture.Fixture, zero bool) bool {
	changed := false
	for _, sub := range m.subordinates {
		existing := matchIn(sub.Fixtures(p), f)
		switch {
		case existing == nil:
			sub.AddFixture(p, f.Copy(zero))
		case fixture.EqualEnough(existing, f), ownUnit(sub, existing):
			continue
		default:
			sub.ReplaceFixture(p, existing, f.Copy(zero))
		}
		sub.SetModified(true)
		changed = true
	}
	return changed
}

// CopyToSubMaps reveals the main map's version of f at location to every
// subordinate map. The main-map fixture is found by ID, or by value for
// tracks, which have none and need not be on the main map at all. A
// revealed resource cache is consumed: it is removed from the main map.
// It reports whether any subordinate map changed.
func (m *Model) CopyToSubMaps(location world.Point, f fixture.Fixture, zero bool) bool {
	var authoritative fixture.Fixture
	if _, ok := f.(*fixture.AnimalTracks); ok {
		authoritative = f
	} else {
		for _, candidate := range m.main.Fixtures(location) {
			if fixture.Matches(candidate, f) {
				authoritative = candidate
				break
			}
		}
	}
	if authoritative == nil {
		slog.Warn("fixture to reveal not found on main map",
			"fixture", f.String(), "location", location)
		return false
	}

	changed := false
	for _, sub := range m.subordinates {
		if ensureTerrain(m.main, sub, location) {
			changed = true
		}
	}
	if m.addToSubMaps(location, authoritative, zero) {
		changed = true
	}

	if _, ok := authoritative.(*fixture.Cache); ok {
		m.main.RemoveFixture(location, authoritative)
		m.main.SetModified(true)
	}
	return changed
}
