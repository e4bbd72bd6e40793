package movement

import (
	"strings"
	"testing"

	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		terrain  world.TileType
		forest   bool
		mountain bool
		river    bool
		fixtures []fixture.Fixture
		want     int
	}{
		{"plains", world.TilePlains, false, false, false, nil, 2},
		{"plains with river", world.TilePlains, false, false, true, nil, 1},
		{"steppe", world.TileSteppe, false, false, false, nil, 2},
		{"tundra with river", world.TileTundra, false, false, true, nil, 1},
		{"desert", world.TileDesert, false, false, false, nil, 3},
		{"desert with river", world.TileDesert, false, false, true, nil, 2},
		{"jungle", world.TileJungle, false, false, false, nil, 6},
		{"swamp with river", world.TileSwamp, false, false, true, nil, 4},
		{"forested plains", world.TilePlains, true, false, false, nil, 3},
		{"mountainous jungle", world.TileJungle, false, true, false, nil, 3},
		{"forest fixture", world.TilePlains, false, false, false, []fixture.Fixture{&fixture.Forest{Kind: "oak"}}, 3},
		{"hill fixture with river", world.TileSteppe, false, false, true, []fixture.Fixture{&fixture.Hill{}}, 2},
		{"ocean", world.TileOcean, false, false, false, nil, Impassable},
		{"unknown", world.TileUnknown, true, true, true, nil, Impassable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cost(tt.terrain, tt.forest, tt.mountain, tt.river, tt.fixtures)
			if got != tt.want {
				t.Errorf("Cost = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Cost is negative: %d", got)
			}
		})
	}
}

func TestCostPanicsOnUnhandledTerrain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unhandled terrain value")
		}
	}()
	Cost(world.TileType(200), false, false, false, nil)
}

func TestRiversSpeedTravel(t *testing.T) {
	north := world.RiversOf(world.RiverNorth)
	south := world.RiversOf(world.RiverSouth)
	east := world.RiversOf(world.RiverEast)
	none := world.Rivers(0)

	if !RiversSpeedTravel(world.North, north, none) {
		t.Error("river on the outgoing edge should help")
	}
	if !RiversSpeedTravel(world.North, none, south) {
		t.Error("river on the incoming edge should help")
	}
	if RiversSpeedTravel(world.North, south, none) {
		t.Error("river on the far edge should not help")
	}
	if !RiversSpeedTravel(world.Northeast, east, none) {
		t.Error("diagonal should succeed through its East component")
	}
	if RiversSpeedTravel(world.Nowhere, north, south) {
		t.Error("standing still never uses a river")
	}
}

func TestRiversSpeedTravelSymmetric(t *testing.T) {
	var sets []world.Rivers
	for i := 0; i < 32; i++ {
		sets = append(sets, world.Rivers(i))
	}
	for _, d := range world.Directions {
		for _, a := range sets {
			for _, b := range sets {
				if RiversSpeedTravel(d, a, b) != RiversSpeedTravel(d.Opposite(), b, a) {
					t.Fatalf("asymmetric for %s with %v / %v", d, a.Segments(), b.Segments())
				}
			}
		}
	}
}

func TestScaledCost(t *testing.T) {
	tests := []struct {
		base  int
		speed Speed
		want  int
	}{
		{2, Normal, 3},
		{1, Normal, 2},
		{2, Hurried, 2},
		{3, Careful, 7},
		{6, Meticulous, 16},
		{2, Observant, 4},
	}
	for _, tt := range tests {
		if got := ScaledCost(tt.base, tt.speed); got != tt.want {
			t.Errorf("ScaledCost(%d, %s) = %d, want %d", tt.base, tt.speed, got, tt.want)
		}
	}
}

func TestTraversable(t *testing.T) {
	tests := []struct {
		from, to world.TileType
		want     bool
	}{
		{world.TilePlains, world.TileJungle, true},
		{world.TileOcean, world.TileOcean, true},
		{world.TilePlains, world.TileOcean, false},
		{world.TileOcean, world.TilePlains, false},
		{world.TilePlains, world.TileUnknown, false},
	}
	for _, tt := range tests {
		if got := Traversable(tt.from, tt.to); got != tt.want {
			t.Errorf("Traversable(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStepCostUsesRiverBetweenTiles(t *testing.T) {
	m := world.NewMap(world.MapDimensions{Rows: 3, Columns: 3})
	for _, p := range m.Dimensions().Points() {
		m.SetTerrain(p, world.TilePlains)
	}
	from := world.Point{Row: 1, Column: 1}
	if got := StepCost(m, from, world.East); got != 2 {
		t.Errorf("dry step = %d, want 2", got)
	}
	m.AddRivers(from, world.RiversOf(world.RiverEast))
	if got := StepCost(m, from, world.East); got != 1 {
		t.Errorf("river step = %d, want 1", got)
	}
}

func TestParseSpeed(t *testing.T) {
	for _, s := range Speeds {
		got, err := ParseSpeed(strings.ToLower(s.String()))
		if err != nil || got != s {
			t.Errorf("ParseSpeed(%q) = %v, %v", s, got, err)
		}
	}
	if got, err := ParseSpeed("gallop"); err == nil || got != Normal {
		t.Errorf("ParseSpeed(gallop) = %v, %v; want Normal and an error", got, err)
	}
}
