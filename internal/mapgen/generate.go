// Package mapgen builds main maps from layered simplex noise.
// Elevation, rainfall and temperature fields are sampled on a 4-D torus so
// the map wraps seamlessly, then terrain, mountains, forests, hills and
// rivers are derived from them before the map is populated.
package mapgen

import (
	"log/slog"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// Config holds map generation parameters.
type Config struct {
	Dimensions    world.MapDimensions
	Seed          int64   // Random seed (0 = random)
	SeaLevel      float64 // Elevation threshold for ocean (0.0–1.0)
	MountainLevel float64 // Elevation threshold for mountains (0.0–1.0)
	Towns         int
	Villages      int
	Players       []fixture.Player // Each gets one starting unit
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Dimensions:    world.MapDimensions{Rows: 40, Columns: 60},
		SeaLevel:      0.42,
		MountainLevel: 0.62,
		Towns:         4,
		Villages:      20,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() Config {
	return Config{
		Dimensions:    world.MapDimensions{Rows: 16, Columns: 20},
		Seed:          42,
		SeaLevel:      0.42,
		MountainLevel: 0.62,
		Towns:         1,
		Villages:      4,
		Players: []fixture.Player{
			{ID: 1, Name: "Player One", Current: true},
			{ID: 2, Name: "Player Two"},
		},
	}
}

// climate is the sampled noise at one point.
type climate struct {
	elev, rain, temp float64
}

type generator struct {
	cfg     Config
	m       *world.Map
	climate map[world.Point]climate
	nextID  int
}

// Generate creates a complete main map: terrain, rivers and fixtures.
func Generate(cfg Config) *world.Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = entropy.CryptoSeed()
	}
	g := &generator{
		cfg:     cfg,
		m:       world.NewMap(cfg.Dimensions),
		climate: make(map[world.Point]climate),
		nextID:  1,
	}

	// Three noise generators for independent layers.
	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	terrainRNG := entropy.New(seed + 50)
	dims := cfg.Dimensions
	for _, p := range dims.Points() {
		u := float64(p.Column) / float64(dims.Columns)
		v := float64(p.Row) / float64(dims.Rows)

		elev := torusNoise(elevNoise, u, v, 4, 1.2, 0.5)
		rain := torusNoise(rainNoise, u, v, 3, 0.9, 0.5)
		temp := torusNoise(tempNoise, u, v, 3, 0.7, 0.5)

		// Colder away from the middle row and at altitude.
		latitude := math.Abs(v-0.5) * 2
		temp = temp*0.6 + (1.0-latitude)*0.3 + (1.0-elev)*0.1

		c := climate{elev: elev, rain: rain, temp: temp}
		g.climate[p] = c
		g.m.SetTerrain(p, deriveTerrain(c, cfg))
		if c.elev > cfg.MountainLevel {
			g.m.SetMountainous(p, true)
		}
		g.placeCover(p, c, terrainRNG)
	}

	g.placeRivers(entropy.New(seed + 100))
	g.populate(entropy.New(seed + 200))

	g.m.SetModified(false)
	slog.Info("map generated", "rows", dims.Rows, "columns", dims.Columns, "seed", seed,
		"locations", len(g.m.Locations()))
	return g.m
}

func (g *generator) id() int {
	id := g.nextID
	g.nextID++
	return id
}

// deriveTerrain determines the tile type from environmental parameters.
func deriveTerrain(c climate, cfg Config) world.TileType {
	if c.elev < cfg.SeaLevel {
		return world.TileOcean
	}
	if c.temp < 0.3 {
		return world.TileTundra
	}
	if c.rain < 0.3 && c.temp > 0.5 {
		return world.TileDesert
	}
	if c.rain > 0.62 && c.elev < cfg.SeaLevel+0.05 {
		return world.TileSwamp
	}
	if c.rain > 0.58 && c.temp > 0.6 {
		return world.TileJungle
	}
	if c.rain < 0.42 {
		return world.TileSteppe
	}
	return world.TilePlains
}

// placeCover adds forests to wet uplands and hills just below the
// mountain line.
func (g *generator) placeCover(p world.Point, c climate, rng *entropy.Source) {
	t := g.m.Terrain(p)
	if t == world.TileOcean {
		return
	}
	if c.rain > 0.5 && t != world.TileDesert && t != world.TileSwamp {
		kind := forestKind(t)
		g.m.AddFixture(p, &fixture.Forest{ID: g.id(), Kind: kind, Acres: 20 + float64(rng.Intn(200))})
		return
	}
	if !g.m.Mountainous(p) && c.elev > g.cfg.MountainLevel-0.06 && rng.Chance(0.5) {
		g.m.AddFixture(p, &fixture.Hill{ID: g.id()})
	}
}

func forestKind(t world.TileType) string {
	switch t {
	case world.TileTundra:
		return "spruce"
	case world.TileJungle:
		return "mahogany"
	case world.TileSteppe:
		return "birch"
	default:
		return "oak"
	}
}

// placeRivers traces rivers from a handful of highland sources down to
// the sea.
func (g *generator) placeRivers(rng *entropy.Source) {
	var sources []world.Point
	for _, p := range g.cfg.Dimensions.Points() {
		if g.m.Terrain(p) != world.TileOcean && g.climate[p].elev > g.cfg.MountainLevel-0.04 {
			sources = append(sources, p)
		}
	}

	// Only create a handful of rivers; not every mountain needs one.
	numRivers := min(max(len(sources)/8, 2), 10)
	sources = entropy.Shuffled(rng, sources)
	if len(sources) > numRivers {
		sources = sources[:numRivers]
	}
	for _, start := range sources {
		g.traceRiver(start)
	}
}

var riverDirections = []world.Direction{world.North, world.East, world.South, world.West}

// traceRiver follows the steepest orthogonal descent from start, laying a
// segment on both sides of each step, until it reaches the ocean. With no
// downhill path left the river ends in a lake.
func (g *generator) traceRiver(start world.Point) {
	dims := g.cfg.Dimensions
	current := start
	visited := map[world.Point]bool{}
	const maxSteps = 50

	for range maxSteps {
		visited[current] = true
		best, bestDir := world.InvalidPoint, world.Nowhere
		bestElev := g.climate[current].elev
		for _, d := range riverDirections {
			next := dims.Neighbor(current, d)
			if visited[next] {
				continue
			}
			if e := g.climate[next].elev; e < bestElev {
				best, bestDir, bestElev = next, d, e
			}
		}
		if !best.Valid() {
			g.m.AddRivers(current, world.RiversOf(world.RiverLake))
			return
		}
		out, _ := world.RiverToward(bestDir)
		g.m.AddRivers(current, world.RiversOf(out))
		if g.m.Terrain(best) == world.TileOcean {
			return
		}
		in, _ := world.RiverToward(bestDir.Opposite())
		g.m.AddRivers(best, world.RiversOf(in))
		current = best
	}
}

// torusNoise samples fractal noise at (u, v) in [0,1)² mapped onto a
// torus in 4-D, so both axes wrap without seams.
func torusNoise(noise opensimplex.Noise, u, v float64, octaves int, frequency, persistence float64) float64 {
	a := 2 * math.Pi * u
	b := 2 * math.Pi * v
	x, y := math.Cos(a), math.Sin(a)
	z, w := math.Cos(b), math.Sin(b)

	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for range octaves {
		total += noise.Eval4(x*frequency, y*frequency, z*frequency, w*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
