// Package movement computes per-step movement cost and what a moving unit
// notices. Everything here is a pure function of its arguments apart from
// the injected random source used by SelectNoticed.
package movement

import (
	"fmt"
	"math"

	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

// Impassable is the cost of entering ocean or unknown terrain. It is large
// enough to dominate any real route yet still safe to add to.
const Impassable = math.MaxInt32 - 1

// LandMovementPossible reports whether a land unit can stand on t.
func LandMovementPossible(t world.TileType) bool {
	return t != world.TileOcean
}

// RiversSpeedTravel reports whether a river runs along the direction of
// travel: on the outgoing edge of the source tile or the incoming edge of
// the destination tile. Diagonals succeed if either orthogonal component
// does.
func RiversSpeedTravel(d world.Direction, source, dest world.Rivers) bool {
	switch d {
	case world.North, world.East, world.South, world.West:
		out, _ := world.RiverToward(d)
		in, _ := world.RiverToward(d.Opposite())
		return source.Has(out) || dest.Has(in)
	case world.Northeast:
		return RiversSpeedTravel(world.North, source, dest) || RiversSpeedTravel(world.East, source, dest)
	case world.Southeast:
		return RiversSpeedTravel(world.South, source, dest) || RiversSpeedTravel(world.East, source, dest)
	case world.Southwest:
		return RiversSpeedTravel(world.South, source, dest) || RiversSpeedTravel(world.West, source, dest)
	case world.Northwest:
		return RiversSpeedTravel(world.North, source, dest) || RiversSpeedTravel(world.West, source, dest)
	default:
		return false
	}
}

// Cost returns the movement points needed to enter a tile. A forest or
// hill fixture among fixtures counts as forest/mountain. Unknown or ocean
// terrain costs Impassable. Any terrain outside the known set panics.
func Cost(t world.TileType, forest, mountainous, river bool, fixtures []fixture.Fixture) int {
	if t == world.TileUnknown || t == world.TileOcean {
		return Impassable
	}
	for _, f := range fixtures {
		switch f.(type) {
		case *fixture.Forest:
			forest = true
		case *fixture.Hill:
			mountainous = true
		}
	}
	if forest || mountainous || t == world.TileDesert {
		return withRiver(3, 2, river)
	}
	switch t {
	case world.TileJungle, world.TileSwamp:
		return withRiver(6, 4, river)
	case world.TileSteppe, world.TilePlains, world.TileTundra:
		return withRiver(2, 1, river)
	default:
		panic(fmt.Sprintf("movement: unhandled terrain %d", t))
	}
}

func withRiver(base, reduced int, river bool) int {
	if river {
		return reduced
	}
	return base
}

// StepCost returns the cost of entering to from the neighboring point in
// direction d, reading terrain, rivers and fixtures from m.
func StepCost(m *world.Map, from world.Point, d world.Direction) int {
	to := m.Dimensions().Neighbor(from, d)
	fixtures := m.Fixtures(to)
	forest := false
	for _, f := range fixtures {
		if _, ok := f.(*fixture.Forest); ok {
			forest = true
			break
		}
	}
	river := RiversSpeedTravel(d, m.Rivers(from), m.Rivers(to))
	return Cost(m.Terrain(to), forest, m.Mountainous(to), river, fixtures)
}

// Traversable reports whether a unit may move from a tile of terrain from
// to a tile of terrain to: land to land, or ocean to ocean.
func Traversable(from, to world.TileType) bool {
	if from == world.TileOcean && to == world.TileOcean {
		return true
	}
	return from != world.TileUnknown && to != world.TileUnknown &&
		LandMovementPossible(from) && LandMovementPossible(to)
}

// ScaledCost applies a speed multiplier to a base cost, rounding up. The
// +0.1 pushes exact multiples up to the next point.
func ScaledCost(base int, speed Speed) int {
	return int(math.Ceil(float64(base)*speed.Multiplier() + 0.1))
}
