package hunting

import (
	"math"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// gatherNothingProportion is the share of fruitless gathering attempts on
// each terrain.
func gatherNothingProportion(t world.TileType) float64 {
	switch t {
	case world.TileDesert, world.TileTundra:
		return 0.75
	case world.TileJungle:
		return 1.0 / 3.0
	default:
		return 0.5
	}
}

// PlantEncounters lists every grove, meadow and shrub within the search
// radius of p once, followed by enough fixture.Nothing entries to bring
// the fruitless share up to the terrain's proportion.
func (h *Model) PlantEncounters(p world.Point) []fixture.Fixture {
	var result []fixture.Fixture
	for _, q := range h.m.Dimensions().Surrounding(p, searchRadius) {
		for _, f := range h.m.Fixtures(q) {
			if fixture.IsVegetation(f) {
				result = append(result, f)
			}
		}
	}
	prop := gatherNothingProportion(h.m.Terrain(p))
	nothings := int(math.Round(float64(len(result)) * prop / (1 - prop)))
	for range nothings {
		result = append(result, fixture.Nothing)
	}
	return result
}

// Gather returns a sampler over the plant encounters around p.
func (h *Model) Gather(p world.Point) *Sampler {
	return &Sampler{pool: h.PlantEncounters(p), rng: h.rng}
}

// Sampler draws uniformly, with replacement, from a fixed pool.
type Sampler struct {
	pool []fixture.Fixture
	rng  *entropy.Source
}

// Len returns the size of the pool.
func (s *Sampler) Len() int {
	return len(s.pool)
}

// Draw returns one entry of the pool, or fixture.Nothing if it is empty.
func (s *Sampler) Draw() fixture.Fixture {
	f, ok := entropy.Pick(s.rng, s.pool)
	if !ok {
		return fixture.Nothing
	}
	return f
}

// ProcessingTime estimates the man-hours needed to process a carcass of
// the given weight in pounds.
func ProcessingTime(weight float64) float64 {
	return 0.855 + 0.0239*weight - 0.000000872*weight*weight
}
