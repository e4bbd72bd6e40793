package main

import (
	"log/slog"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/exploration"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/hunting"
	"github.com/talgya/expedition/internal/movement"
	"github.com/talgya/expedition/internal/pathfind"
	"github.com/talgya/expedition/internal/world"
)

// currentUnit returns the first unit owned by the map's current player.
func currentUnit(m *world.Map) (*fixture.Unit, bool) {
	player, ok := m.CurrentPlayer()
	if !ok {
		return nil, false
	}
	for _, p := range m.Locations() {
		for _, f := range m.Fixtures(p) {
			if u, ok := f.(*fixture.Unit); ok && fixture.SamePlayer(u.Owner, player) {
				return u, true
			}
		}
	}
	return nil, false
}

// deriveSubordinate builds player's view of mainMap: the tiles around each
// of the player's units, the units themselves, and whatever is obvious
// there.
func deriveSubordinate(mainMap *world.Map, player fixture.Player) *world.Map {
	dims := mainMap.Dimensions()
	sub := world.NewMap(dims)
	player.Current = true
	sub.AddPlayer(player)

	for _, p := range mainMap.Locations() {
		for _, f := range mainMap.Fixtures(p) {
			u, ok := f.(*fixture.Unit)
			if !ok || !fixture.SamePlayer(u.Owner, player) {
				continue
			}
			for _, q := range dims.Surrounding(p, 1) {
				sub.SetTerrain(q, mainMap.Terrain(q))
				sub.SetMountainous(q, mainMap.Mountainous(q))
				sub.AddRivers(q, mainMap.Rivers(q))
				for d, level := range mainMap.Roads(q) {
					sub.SetRoadLevel(q, d, level)
				}
				for _, seen := range mainMap.Fixtures(q) {
					if seen == f || !movement.ShouldAlwaysNotice(u, seen) {
						continue
					}
					sub.AddFixture(q, seen.Copy(true))
				}
			}
			sub.AddFixture(p, u.Copy(false))
		}
	}
	sub.SetModified(false)
	return sub
}

// nearestVillage finds the cheapest-to-reach independent village from
// start.
func nearestVillage(finder *pathfind.Pathfinder, start world.Point) (world.Point, int, []world.Point, bool) {
	m := finder.Map()
	best, bestCost := world.InvalidPoint, pathfind.Unreachable
	var bestPath []world.Point
	for _, p := range m.Locations() {
		for _, f := range m.Fixtures(p) {
			v, ok := f.(*fixture.Village)
			if !ok || !v.Owner.Independent() {
				continue
			}
			cost, path := finder.TravelDistance(start, p)
			if cost < bestCost {
				best, bestCost, bestPath = p, cost, path
			}
		}
	}
	return best, bestCost, bestPath, best.Valid()
}

// directionToward returns the direction of the adjacent point to from,
// or Nowhere if to is not adjacent.
func directionToward(dims world.MapDimensions, from, to world.Point) world.Direction {
	for _, d := range world.Directions {
		if dims.Neighbor(from, d) == to {
			return d
		}
	}
	return world.Nowhere
}

// walk moves the selected unit up to steps times at speed, following the
// route to the nearest independent village and wandering once it is done
// or blocked.
func walk(model *exploration.Model, finders *pathfind.Cache, rng *entropy.Source, steps int, speed movement.Speed) {
	dims := model.MainMap().Dimensions()
	target, cost, path, ok := nearestVillage(finders.For(model.MainMap()), model.Selection().Point)
	if ok {
		slog.Info("route planned", "village", target, "cost", cost, "steps", len(path)-1)
	} else {
		slog.Info("no reachable village, wandering")
	}

	for i := range steps {
		from := model.Selection().Point
		var d world.Direction
		if i+1 < len(path) {
			d = directionToward(dims, from, path[i+1])
		} else {
			d, _ = entropy.Pick(rng, world.Directions[:])
		}
		res, err := model.Move(d, speed)
		if err != nil {
			slog.Error("move failed", "error", err)
			return
		}
		if res.Blocked {
			slog.Info("move blocked", "direction", d.String(), "from", from)
			path = nil
			continue
		}
		slog.Debug("moved", "direction", d.String(), "to", res.Destination, "cost", res.Cost)
		reveal(model, rng, res.Destination, speed)
	}
}

// sighting is a fixture the moving unit might notice.
type sighting struct {
	point world.Point
	item  fixture.Fixture
}

// reveal copies what the selected unit notices around dest into the
// subordinate maps.
func reveal(model *exploration.Model, rng *entropy.Source, dest world.Point, speed movement.Speed) {
	mover := model.Selection().Unit
	m := model.MainMap()
	var candidates []sighting
	for _, p := range m.Dimensions().Surrounding(dest, 1) {
		for _, f := range m.Fixtures(p) {
			switch {
			case f == fixture.Fixture(mover):
			case movement.ShouldAlwaysNotice(mover, f):
				model.CopyToSubMaps(p, f, true)
			case movement.ShouldSometimesNotice(mover, speed, f):
				candidates = append(candidates, sighting{point: p, item: f})
			}
		}
	}
	noticed := movement.SelectNoticed(rng, candidates, func(s sighting) int { return s.item.DC() }, mover, speed)
	for _, s := range noticed {
		slog.Info("noticed", "fixture", s.item.String(), "location", s.point)
		model.CopyToSubMaps(s.point, s.item, true)
	}
}

// Foraging times, in minutes.
const (
	drawMinutes    = 10
	minutesPerHour = 60
)

var carcassWeight = map[string]float64{
	"deer": 150, "bison": 900, "caribou": 250, "boar": 200, "camel": 600,
	"hare": 6, "trout": 4, "salmon": 12, "seal": 200, "cod": 20,
}

// forage spends the minutes budget evenly on hunting, trapping, fishing
// and gathering around p. It returns how many things were found.
func forage(h *hunting.Model, p world.Point, minutes int) int {
	total := 0
	share := minutes / 4
	streams := []struct {
		name   string
		stream *hunting.Stream
	}{
		{"hunt", h.Hunt(p)},
		{"trap", h.Trap(p)},
		{"fish", h.Fish(p)},
	}
	for _, s := range streams {
		found, draws := 0, 0
		for spent := 0; spent < share; spent += drawMinutes {
			draws++
			a, ok := s.stream.Next().(*fixture.Animal)
			if !ok {
				continue
			}
			found++
			weight, known := carcassWeight[a.Kind]
			if !known {
				weight = 40
			}
			hours := hunting.ProcessingTime(weight)
			spent += int(hours * minutesPerHour)
			slog.Debug("caught", "activity", s.name, "animal", a.Kind, "processing_hours", hours)
		}
		slog.Info("foraging", "activity", s.name, "candidates", s.stream.Candidates(), "draws", draws, "found", found)
		total += found
	}

	sampler := h.Gather(p)
	found, draws := 0, 0
	for spent := 0; spent < share; spent += drawMinutes {
		draws++
		if f := sampler.Draw(); !fixture.IsNothing(f) {
			found++
			slog.Debug("gathered", "plant", f.String())
		}
	}
	slog.Info("foraging", "activity", "gather", "pool", sampler.Len(), "draws", draws, "found", found)
	return total + found
}
