package hunting

import (
	"math"
	"testing"

	"github.com/talgya/expedition/internal/entropy"
	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

var center = world.Point{Row: 5, Column: 5}

func plainsMap(t world.TileType) *world.Map {
	dims := world.MapDimensions{Rows: 12, Columns: 12}
	m := world.NewMap(dims)
	for _, p := range dims.Points() {
		m.SetTerrain(p, t)
	}
	return m
}

func nothingShare(draws []fixture.Fixture) float64 {
	n := 0
	for _, f := range draws {
		if fixture.IsNothing(f) {
			n++
		}
	}
	return float64(n) / float64(len(draws))
}

func TestHuntEmptyNeighborhoodFindsNothing(t *testing.T) {
	m := plainsMap(world.TilePlains)
	m.AddFixture(world.Point{Row: 0, Column: 0}, &fixture.Animal{ID: 1, Kind: "deer", Population: 3, Difficulty: 5})
	h := NewModel(m, entropy.New(1), DefaultNothingProportion)
	s := h.Hunt(center)
	if s.Candidates() != 0 {
		t.Fatalf("candidates = %d, want 0", s.Candidates())
	}
	for i, f := range s.Take(500) {
		if !fixture.IsNothing(f) {
			t.Fatalf("draw %d = %v, want nothing", i, f)
		}
	}
}

func TestHuntNothingProportion(t *testing.T) {
	m := plainsMap(world.TilePlains)
	m.AddFixture(world.Point{Row: 4, Column: 5}, &fixture.Animal{ID: 1, Kind: "deer", Population: 3, Difficulty: 10})
	m.AddFixture(world.Point{Row: 7, Column: 7}, &fixture.Animal{ID: 2, Kind: "hare", Population: 8, Difficulty: 5})

	tests := []struct {
		name       string
		proportion float64
		want       float64
	}{
		{"default", DefaultNothingProportion, 0.5},
		{"quarter", 0.25, 0.25},
		{"out of range falls back", 1.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewModel(m, entropy.New(42), tt.proportion)
			got := nothingShare(h.Hunt(center).Take(20000))
			if math.Abs(got-tt.want) > 0.02 {
				t.Errorf("nothing share = %.3f, want about %.2f", got, tt.want)
			}
		})
	}
}

func TestHuntFavorsEasierQuarry(t *testing.T) {
	m := plainsMap(world.TilePlains)
	easy := &fixture.Animal{ID: 1, Kind: "hare", Difficulty: 5}
	hard := &fixture.Animal{ID: 2, Kind: "lynx", Difficulty: 30}
	m.AddFixture(center, easy)
	m.AddFixture(center, hard)
	h := NewModel(m, entropy.New(3), DefaultNothingProportion)

	counts := map[int]int{}
	for _, f := range h.Hunt(center).Take(10000) {
		counts[f.FixtureID()]++
	}
	if counts[1] <= 2*counts[2] {
		t.Errorf("hare %d vs lynx %d, want hares far more common", counts[1], counts[2])
	}
}

func TestHuntSkipsTalkingAndImpossibleAnimals(t *testing.T) {
	m := plainsMap(world.TilePlains)
	m.AddFixture(center, &fixture.Animal{ID: 1, Kind: "raven", Talking: true, Difficulty: 5})
	h := NewModel(m, entropy.New(4), 0)
	if c := h.Hunt(center).Candidates(); c != 0 {
		t.Fatalf("talking animal counted as a candidate (%d)", c)
	}

	m.AddFixture(center, &fixture.Animal{ID: 2, Kind: "dragon", Difficulty: 40})
	h = NewModel(m, entropy.New(4), 0)
	for _, f := range h.Hunt(center).Take(20) {
		if !fixture.IsNothing(f) {
			t.Fatalf("drew %v, want nothing when no candidate can pass", f)
		}
	}
}

func TestFishAndHuntSplitByAquaticKind(t *testing.T) {
	m := plainsMap(world.TilePlains)
	lake := world.Point{Row: 5, Column: 6}
	m.SetTerrain(lake, world.TileOcean)
	m.AddFixture(lake, &fixture.Animal{ID: 1, Kind: "trout", Difficulty: 5})
	// A trout in a land tile is still a fish.
	m.AddFixture(center, &fixture.Animal{ID: 2, Kind: "trout", Difficulty: 5})
	m.AddFixture(center, &fixture.Animal{ID: 3, Kind: "boar", Difficulty: 5})
	h := NewModel(m, entropy.New(9), DefaultNothingProportion)

	if !h.Aquatic("trout") || h.Aquatic("boar") {
		t.Fatal("aquatic classification wrong")
	}
	for _, f := range h.Fish(center).Take(200) {
		if a, ok := f.(*fixture.Animal); ok && a.Kind != "trout" {
			t.Fatalf("fishing caught %v", a)
		}
	}
	if c := h.Fish(center).Candidates(); c != 2 {
		t.Errorf("fish candidates = %d, want 2", c)
	}
	for _, s := range []*Stream{h.Hunt(center), h.Trap(center)} {
		if s.Candidates() != 1 {
			t.Errorf("%s candidates = %d, want 1", s.activity, s.Candidates())
		}
		for _, f := range s.Take(200) {
			if a, ok := f.(*fixture.Animal); ok && a.Kind != "boar" {
				t.Fatalf("%s found %v", s.activity, a)
			}
		}
	}
}

func TestPlantEncounters(t *testing.T) {
	tests := []struct {
		terrain world.TileType
		plants  int
		want    int
	}{
		{world.TilePlains, 2, 4},
		{world.TileSteppe, 3, 6},
		{world.TileDesert, 2, 8},
		{world.TileTundra, 1, 4},
		{world.TileJungle, 2, 3},
		{world.TileJungle, 4, 6},
		{world.TilePlains, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			m := plainsMap(tt.terrain)
			for i := range tt.plants {
				m.AddFixture(center, &fixture.Shrub{ID: i + 1, Kind: "berry"})
			}
			m.AddFixture(center, &fixture.Animal{ID: 99, Kind: "deer"})
			got := NewModel(m, entropy.New(1), DefaultNothingProportion).PlantEncounters(center)
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			for i, f := range got {
				if (i < tt.plants) == fixture.IsNothing(f) {
					t.Errorf("entry %d = %v: plants must come first, then nothing", i, f)
				}
			}
		})
	}
}

func TestGatherSampler(t *testing.T) {
	m := plainsMap(world.TilePlains)
	grove := &fixture.Grove{ID: 1, Kind: "apple", Orchard: true}
	meadow := &fixture.Meadow{ID: 2, Kind: "wheat", Field: true}
	m.AddFixture(center, grove)
	m.AddFixture(world.Point{Row: 3, Column: 3}, meadow)
	h := NewModel(m, entropy.New(11), DefaultNothingProportion)

	s := h.Gather(center)
	if s.Len() != 4 {
		t.Fatalf("pool = %d, want 4", s.Len())
	}
	seen := map[int]int{}
	nothing := 0
	for range 4000 {
		f := s.Draw()
		if fixture.IsNothing(f) {
			nothing++
			continue
		}
		seen[f.FixtureID()]++
	}
	if seen[1] == 0 || seen[2] == 0 {
		t.Errorf("sampler never drew one of the plants: %v", seen)
	}
	if share := float64(nothing) / 4000; math.Abs(share-0.5) > 0.05 {
		t.Errorf("nothing share = %.3f, want about 0.5", share)
	}

	empty := h.Gather(world.Point{Row: 10, Column: 10})
	if empty.Len() != 0 || !fixture.IsNothing(empty.Draw()) {
		t.Error("empty sampler should draw nothing")
	}
}

func TestProcessingTime(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{0, 0.855},
		{100, 3.23628},
		{1000, 23.883},
	}
	for _, tt := range tests {
		if got := ProcessingTime(tt.weight); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ProcessingTime(%v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}
