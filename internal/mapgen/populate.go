package mapgen

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// wildlife per terrain: kind and discovery DC.
type quarry struct {
	kind string
	dc   int
}

var (
	landAnimals = map[world.TileType][]quarry{
		world.TilePlains: {{"deer", 12}, {"hare", 8}, {"wolf", 18}},
		world.TileSteppe: {{"antelope", 14}, {"hare", 8}, {"bison", 10}},
		world.TileDesert: {{"lizard", 16}, {"camel", 12}},
		world.TileTundra: {{"caribou", 10}, {"arctic fox", 20}},
		world.TileJungle: {{"boar", 14}, {"jaguar", 24}, {"tapir", 16}},
		world.TileSwamp:  {{"heron", 14}, {"alligator", 18}},
	}
	aquaticAnimals = []quarry{{"trout", 12}, {"salmon", 14}, {"seal", 16}, {"cod", 10}}
	groundKinds    = []string{"limestone", "granite", "sandstone", "shale"}
	mineralKinds   = []string{"iron", "copper", "tin", "silver", "gold"}
	villageRaces   = []string{"human", "human", "human", "dwarf", "elf", "halfling"}
)

// populate places wildlife, plants, minerals, settlements and one
// starting unit per configured player.
func (g *generator) populate(rng *entropy.Source) {
	for _, p := range g.cfg.Dimensions.Points() {
		g.placeWildlife(p, rng)
	}
	seeds := g.placeSettlements(rng)
	g.placeUnits(seeds, rng)
}

func (g *generator) placeWildlife(p world.Point, rng *entropy.Source) {
	t := g.m.Terrain(p)
	if t == world.TileOcean {
		if rng.Chance(0.05) {
			q, _ := entropy.Pick(rng, aquaticAnimals)
			g.m.AddFixture(p, g.animal(q, rng))
		}
		return
	}
	if rng.Chance(0.08) {
		if q, ok := entropy.Pick(rng, landAnimals[t]); ok {
			g.m.AddFixture(p, g.animal(q, rng))
		}
	}
	if !g.m.Rivers(p).Empty() && rng.Chance(0.15) {
		q, _ := entropy.Pick(rng, aquaticAnimals[:2])
		g.m.AddFixture(p, g.animal(q, rng))
	}

	switch {
	case rng.Chance(plantChance(t)):
		g.m.AddFixture(p, g.plant(t, rng))
	case rng.Chance(0.01):
		g.m.AddFixture(p, &fixture.Cache{ID: g.id(), Kind: "buried", Contents: "coins"})
	}

	if rng.Chance(0.12) {
		kind, _ := entropy.Pick(rng, groundKinds)
		g.m.AddFixture(p, &fixture.Ground{ID: g.id(), Kind: kind, Exposed: rng.Chance(0.3)})
	}
	if g.m.Mountainous(p) {
		if rng.Chance(0.3) {
			kind, _ := entropy.Pick(rng, mineralKinds)
			g.m.AddFixture(p, &fixture.MineralVein{
				ID:         g.id(),
				Kind:       kind,
				Exposed:    rng.Chance(0.2),
				Difficulty: 20 + rng.Intn(20),
			})
		}
		if rng.Chance(0.04) {
			kind, _ := entropy.Pick(rng, mineralKinds)
			g.m.AddFixture(p, &fixture.Mine{ID: g.id(), Kind: kind, Status: "abandoned"})
		}
	}
	if rng.Chance(0.003) {
		g.m.AddFixture(p, &fixture.Immortal{ID: g.id(), Kind: "sphinx"})
	}
}

func (g *generator) animal(q quarry, rng *entropy.Source) *fixture.Animal {
	return &fixture.Animal{
		ID:         g.id(),
		Kind:       q.kind,
		Status:     "wild",
		Born:       -1,
		Population: 1 + rng.Intn(12),
		Difficulty: q.dc,
	}
}

func plantChance(t world.TileType) float64 {
	switch t {
	case world.TileJungle, world.TileSwamp:
		return 0.25
	case world.TileDesert, world.TileTundra:
		return 0.05
	default:
		return 0.12
	}
}

func (g *generator) plant(t world.TileType, rng *entropy.Source) fixture.Fixture {
	switch rng.Intn(3) {
	case 0:
		kinds := map[world.TileType]string{world.TileJungle: "banana", world.TileDesert: "date palm"}
		kind := cmp.Or(kinds[t], "apple")
		return &fixture.Grove{ID: g.id(), Kind: kind, Population: 5 + rng.Intn(40)}
	case 1:
		return &fixture.Meadow{ID: g.id(), Kind: "wildflower", Acres: float64(1 + rng.Intn(30))}
	default:
		kinds := map[world.TileType]string{world.TileTundra: "lingonberry", world.TileSwamp: "cranberry"}
		kind := cmp.Or(kinds[t], "blackberry")
		return &fixture.Shrub{ID: g.id(), Kind: kind, Population: 3 + rng.Intn(20)}
	}
}

// settlementSeed is a chosen settlement location.
type settlementSeed struct {
	point world.Point
	town  bool
	score float64
}

// placeSettlements scores every land tile and places towns, then
// villages, at the best spots subject to minimum spacing. It returns the
// remaining candidates in score order for unit placement.
func (g *generator) placeSettlements(rng *entropy.Source) []world.Point {
	var candidates []settlementSeed
	for _, p := range g.cfg.Dimensions.Points() {
		if s := g.settlementScore(p); s > 0 {
			candidates = append(candidates, settlementSeed{point: p, score: s})
		}
	}
	slices.SortStableFunc(candidates, func(a, b settlementSeed) int {
		return cmp.Compare(b.score, a.score)
	})

	var seeds []settlementSeed
	taken := make(map[world.Point]bool)
	const minTownDist, minVillageDist = 6, 3

	for _, c := range candidates {
		if len(seeds) >= g.cfg.Towns {
			break
		}
		if g.tooClose(c.point, seeds, minTownDist) {
			continue
		}
		taken[c.point] = true
		c.town = true
		seeds = append(seeds, c)
	}
	villages := 0
	for _, c := range candidates {
		if villages >= g.cfg.Villages {
			break
		}
		if taken[c.point] || g.tooClose(c.point, seeds, minVillageDist) {
			continue
		}
		taken[c.point] = true
		seeds = append(seeds, c)
		villages++
	}

	names := generateNames(rng, len(seeds))
	for i, s := range seeds {
		if s.town {
			g.m.AddFixture(s.point, &fixture.Town{
				ID:     g.id(),
				Name:   names[i],
				Owner:  fixture.IndependentPlayer,
				Size:   fixture.TownSize(rng.Intn(3)),
				Status: "active",
			})
			continue
		}
		race, _ := entropy.Pick(rng, villageRaces)
		g.m.AddFixture(s.point, &fixture.Village{
			ID:         g.id(),
			Name:       names[i],
			Owner:      fixture.IndependentPlayer,
			Race:       race,
			Population: 20 + rng.Intn(80),
		})
	}

	var rest []world.Point
	for _, c := range candidates {
		if !taken[c.point] {
			rest = append(rest, c.point)
		}
	}
	return rest
}

// settlementScore evaluates how desirable a tile is for a settlement.
// Prefers open fertile land with water and varied surroundings.
func (g *generator) settlementScore(p world.Point) float64 {
	score := 0.0
	switch g.m.Terrain(p) {
	case world.TilePlains:
		score += 3.0
	case world.TileSteppe:
		score += 2.5
	case world.TileJungle, world.TileSwamp:
		score += 1.0
	case world.TileDesert, world.TileTundra:
		score += 0.5
	default:
		return 0
	}
	if g.m.Mountainous(p) {
		score -= 0.5
	}
	if !g.m.Rivers(p).Empty() {
		score += 1.0
	}

	// Bonus for nearby terrain diversity and water access.
	dims := g.cfg.Dimensions
	kinds := make(map[world.TileType]bool)
	water := false
	for _, d := range world.Directions {
		q := dims.Neighbor(p, d)
		t := g.m.Terrain(q)
		if t == world.TileOcean || !g.m.Rivers(q).Empty() {
			water = true
		}
		if t != world.TileOcean {
			kinds[t] = true
		}
	}
	score += float64(len(kinds)) * 0.3
	if water {
		score += 0.5
	}
	score += math.Log1p(g.climate[p].rain*10) * 0.2
	return score
}

func (g *generator) tooClose(p world.Point, existing []settlementSeed, minDist int) bool {
	for _, s := range existing {
		if g.cfg.Dimensions.Distance(p, s.point) < minDist {
			return true
		}
	}
	return false
}

// placeUnits gives each configured player a unit of explorers at one of
// the best remaining land tiles.
func (g *generator) placeUnits(spots []world.Point, rng *entropy.Source) {
	names := generateNames(rng, len(g.cfg.Players)*4)
	for i, player := range g.cfg.Players {
		g.m.AddPlayer(player)
		if len(spots) == 0 {
			continue
		}
		spot := spots[i*len(spots)/len(g.cfg.Players)]
		unit := &fixture.Unit{ID: g.id(), Owner: player, Kind: "explorers", Name: names[i*4]}
		for j := 1; j < 4; j++ {
			unit.AddMember(g.worker(names[i*4+j], rng))
		}
		unit.SetOrders(1, "Explore the surrounding country.")
		g.m.AddFixture(spot, unit)
	}
}

func (g *generator) worker(name string, rng *entropy.Source) *fixture.Worker {
	roll := func() int { return 3 + rng.Intn(6) + rng.Intn(6) + rng.Intn(6) }
	stats := &fixture.Stats{
		Strength:     roll(),
		Dexterity:    roll(),
		Constitution: roll(),
		Intelligence: roll(),
		Wisdom:       roll(),
		Charisma:     roll(),
	}
	race, _ := entropy.Pick(rng, villageRaces)
	job := fixture.Job{Name: "scout", Level: 1 + rng.Intn(3)}
	job.Skills = append(job.Skills, fixture.Skill{Name: "perception", Level: 1 + rng.Intn(2)})
	return &fixture.Worker{ID: g.id(), Name: name, Race: race, Stats: stats, Jobs: []fixture.Job{job}}
}

var (
	namePrefixes = []string{
		"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
		"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
		"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
		"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
	}
	nameSuffixes = []string{
		"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
		"stead", "wood", "field", "dale", "crest", "vale", "port",
		"town", "bury", "marsh", "well", "brook", "cliff", "moor",
		"ridge", "watch", "fall", "rest", "point", "reach", "helm",
	}
)

// generateNames returns count distinct names built from a prefix and a
// suffix. Once every pairing is used, later rounds repeat them with a
// number: "Ironford 2", "Ironford 3" and so on.
func generateNames(rng *entropy.Source, count int) []string {
	pairings := make([]string, 0, len(namePrefixes)*len(nameSuffixes))
	for _, p := range namePrefixes {
		for _, s := range nameSuffixes {
			pairings = append(pairings, p+s)
		}
	}
	pairings = entropy.Shuffled(rng, pairings)

	names := make([]string, 0, count)
	for round := 1; len(names) < count; round++ {
		for _, name := range pairings {
			if len(names) == count {
				break
			}
			if round > 1 {
				name += " " + strconv.Itoa(round)
			}
			names = append(names, name)
		}
	}
	return names
}
