package pathfind

import (
	"slices"
	"testing"

	"github.com/talgya/expedition/internal/world"
)

func uniformMap(rows, cols int, t world.TileType) *world.Map {
	m := world.NewMap(world.MapDimensions{Rows: rows, Columns: cols})
	for _, p := range m.Dimensions().Points() {
		m.SetTerrain(p, t)
	}
	return m
}

func TestSamePoint(t *testing.T) {
	pf := New(uniformMap(5, 5, world.TilePlains))
	origin := world.Point{Row: 0, Column: 0}
	cost, path := pf.TravelDistance(origin, origin)
	if cost != 0 {
		t.Errorf("cost = %d, want 0", cost)
	}
	if !slices.Equal(path, []world.Point{origin}) {
		t.Errorf("path = %v, want [%v]", path, origin)
	}
}

func TestUniformMapChebyshev(t *testing.T) {
	m := uniformMap(12, 12, world.TilePlains)
	pf := New(m)
	tests := []struct{ start, end world.Point }{
		{world.Point{Row: 1, Column: 1}, world.Point{Row: 4, Column: 6}},
		{world.Point{Row: 0, Column: 0}, world.Point{Row: 11, Column: 11}}, // wraps
		{world.Point{Row: 2, Column: 9}, world.Point{Row: 2, Column: 2}},
		{world.Point{Row: 6, Column: 0}, world.Point{Row: 0, Column: 6}},
	}
	for _, tt := range tests {
		steps := m.Dimensions().Distance(tt.start, tt.end)
		cost, path := pf.TravelDistance(tt.start, tt.end)
		if len(path)-1 != steps {
			t.Errorf("%v→%v: %d steps, want %d (path %v)", tt.start, tt.end, len(path)-1, steps, path)
		}
		if cost != 2*steps {
			t.Errorf("%v→%v: cost %d, want %d", tt.start, tt.end, cost, 2*steps)
		}
		if path[0] != tt.start || path[len(path)-1] != tt.end {
			t.Errorf("%v→%v: path endpoints %v", tt.start, tt.end, path)
		}
		for i := 1; i < len(path); i++ {
			if m.Dimensions().Distance(path[i-1], path[i]) != 1 {
				t.Errorf("path is not contiguous at %d: %v", i, path)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	m := uniformMap(10, 10, world.TilePlains)
	m.SetTerrain(world.Point{Row: 3, Column: 3}, world.TileJungle)
	m.SetTerrain(world.Point{Row: 3, Column: 4}, world.TileJungle)
	pf := New(m)
	start, end := world.Point{Row: 3, Column: 1}, world.Point{Row: 3, Column: 6}

	cost1, path1 := pf.TravelDistance(start, end)
	// Query another target from the same source in between.
	pf.TravelDistance(start, world.Point{Row: 8, Column: 8})
	cost2, path2 := pf.TravelDistance(start, end)
	if cost1 != cost2 || !slices.Equal(path1, path2) {
		t.Errorf("results differ: (%d, %v) vs (%d, %v)", cost1, path1, cost2, path2)
	}
	fresh, _ := New(m).TravelDistance(start, end)
	if fresh != cost1 {
		t.Errorf("memoized cost %d differs from fresh cost %d", cost1, fresh)
	}
}

func TestCheapestRouteThroughExpensiveTerrain(t *testing.T) {
	m := uniformMap(9, 13, world.TilePlains)
	// A swamp wall down column 4 with one plains gap at row 8.
	for r := 0; r < 8; r++ {
		m.SetTerrain(world.Point{Row: r, Column: 4}, world.TileSwamp)
	}
	pf := New(m)
	cost, path := pf.TravelDistance(world.Point{Row: 4, Column: 2}, world.Point{Row: 4, Column: 6})
	// Straight through the swamp: 2 + 6 + 2 + 2. Around through the gap
	// takes 8 plains steps (16), and west around the torus 9 steps (18).
	if cost != 12 {
		t.Errorf("cost = %d, want 12", cost)
	}
	if len(path) != 5 {
		t.Errorf("path = %v, want 4 steps", path)
	}
}

func TestOceanBandUnreachable(t *testing.T) {
	m := uniformMap(6, 9, world.TilePlains)
	// Two full ocean columns cut the torus into two bands.
	for r := 0; r < 6; r++ {
		m.SetTerrain(world.Point{Row: r, Column: 0}, world.TileOcean)
		m.SetTerrain(world.Point{Row: r, Column: 4}, world.TileOcean)
	}
	pf := New(m)
	cost, path := pf.TravelDistance(world.Point{Row: 2, Column: 2}, world.Point{Row: 2, Column: 6})
	if cost != Unreachable {
		t.Errorf("cost = %d, want Unreachable", cost)
	}
	if len(path) != 0 {
		t.Errorf("path = %v, want empty", path)
	}
	// Same side of the water is fine.
	if cost, _ := pf.TravelDistance(world.Point{Row: 2, Column: 2}, world.Point{Row: 5, Column: 3}); cost == Unreachable {
		t.Error("points on the same side should be reachable")
	}
}

func TestUnknownTerrainIsImpassable(t *testing.T) {
	m := world.NewMap(world.MapDimensions{Rows: 4, Columns: 4})
	m.SetTerrain(world.Point{Row: 0, Column: 0}, world.TilePlains)
	if cost, _ := New(m).TravelDistance(world.Point{Row: 0, Column: 0}, world.Point{Row: 2, Column: 2}); cost != Unreachable {
		t.Errorf("cost into unknown terrain = %d, want Unreachable", cost)
	}
}

func TestClampedAdd(t *testing.T) {
	if got := clampedAdd(ceiling, 5); got != ceiling {
		t.Errorf("clampedAdd overflowed: %d", got)
	}
	if got := clampedAdd(floor, -5); got != floor {
		t.Errorf("clampedAdd underflowed: %d", got)
	}
	if got := clampedAdd(3, 4); got != 7 {
		t.Errorf("clampedAdd(3, 4) = %d", got)
	}
}

func TestNegativeDistanceAborts(t *testing.T) {
	m := uniformMap(5, 5, world.TilePlains)
	pf := New(m)
	start := world.Point{Row: 0, Column: 0}
	pf.stateFor(start).dist[start] = -3
	cost, path := pf.TravelDistance(start, world.Point{Row: 2, Column: 2})
	if cost != Unreachable || len(path) != 0 {
		t.Errorf("corrupted state returned (%d, %v)", cost, path)
	}
}

func TestCache(t *testing.T) {
	m := uniformMap(4, 4, world.TilePlains)
	c := NewCache()
	pf := c.For(m)
	if c.For(m) != pf {
		t.Error("cache should return the same pathfinder")
	}
	c.Invalidate(m)
	if c.For(m) == pf {
		t.Error("Invalidate should drop the pathfinder")
	}
}
