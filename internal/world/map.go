package world

import (
	"fmt"
	"slices"

	"github.com/talgya/expedition/internal/fixture"
)

// Map is one instance of the grid: terrain, mountains, rivers, roads and
// fixtures per point, plus the players it knows about. The main map and
// each subordinate map are separate instances that are mutated in place.
type Map struct {
	dims      MapDimensions
	terrain   map[Point]TileType
	mountains map[Point]bool
	rivers    map[Point]Rivers
	roads     map[Point]map[Direction]int
	fixtures  map[Point][]fixture.Fixture
	players   []fixture.Player
	modified  bool
}

// NewMap creates an empty map with the given dimensions.
func NewMap(dims MapDimensions) *Map {
	return &Map{
		dims:      dims,
		terrain:   make(map[Point]TileType),
		mountains: make(map[Point]bool),
		rivers:    make(map[Point]Rivers),
		roads:     make(map[Point]map[Direction]int),
		fixtures:  make(map[Point][]fixture.Fixture),
	}
}

// Dimensions returns the size of the map.
func (m *Map) Dimensions() MapDimensions {
	return m.dims
}

// Terrain returns the base terrain at p, TileUnknown if none is recorded.
func (m *Map) Terrain(p Point) TileType {
	return m.terrain[p]
}

// SetTerrain records the base terrain at p.
func (m *Map) SetTerrain(p Point, t TileType) {
	if t == TileUnknown {
		delete(m.terrain, p)
		return
	}
	m.terrain[p] = t
}

// Mountainous reports whether p is mountainous.
func (m *Map) Mountainous(p Point) bool {
	return m.mountains[p]
}

// SetMountainous sets the mountain flag at p.
func (m *Map) SetMountainous(p Point, mountainous bool) {
	if mountainous {
		m.mountains[p] = true
	} else {
		delete(m.mountains, p)
	}
}

// Rivers returns the river segments at p.
func (m *Map) Rivers(p Point) Rivers {
	return m.rivers[p]
}

// AddRivers adds river segments at p.
func (m *Map) AddRivers(p Point, r Rivers) {
	if r.Empty() {
		return
	}
	m.rivers[p] = m.rivers[p].With(r)
}

// RoadLevel returns the road quality leaving p in the given direction.
func (m *Map) RoadLevel(p Point, d Direction) int {
	return m.roads[p][d]
}

// Roads returns a copy of the road levels at p.
func (m *Map) Roads(p Point) map[Direction]int {
	result := make(map[Direction]int, len(m.roads[p]))
	for d, l := range m.roads[p] {
		result[d] = l
	}
	return result
}

// SetRoadLevel sets the road quality leaving p in the given direction.
func (m *Map) SetRoadLevel(p Point, d Direction, level int) {
	if level <= 0 {
		delete(m.roads[p], d)
		return
	}
	if m.roads[p] == nil {
		m.roads[p] = make(map[Direction]int)
	}
	m.roads[p][d] = level
}

// Fixtures returns the fixtures at p. The slice is a copy; the fixtures
// are not.
func (m *Map) Fixtures(p Point) []fixture.Fixture {
	return slices.Clone(m.fixtures[p])
}

// HasFixture reports whether f (by identity) is at p.
func (m *Map) HasFixture(p Point, f fixture.Fixture) bool {
	return slices.Contains(m.fixtures[p], f)
}

// AddFixture places f at p. Adding a fixture that is already present (by
// identity) is a no-op and returns false.
func (m *Map) AddFixture(p Point, f fixture.Fixture) bool {
	if f == nil || m.HasFixture(p, f) {
		return false
	}
	m.fixtures[p] = append(m.fixtures[p], f)
	return true
}

// RemoveFixture removes f (by identity) from p.
func (m *Map) RemoveFixture(p Point, f fixture.Fixture) bool {
	list := m.fixtures[p]
	i := slices.Index(list, f)
	if i < 0 {
		return false
	}
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(m.fixtures, p)
	} else {
		m.fixtures[p] = list
	}
	return true
}

// ReplaceFixture swaps old for replacement at p, keeping its position in
// the tile's fixture order. If old is absent, replacement is added.
func (m *Map) ReplaceFixture(p Point, old, replacement fixture.Fixture) {
	list := m.fixtures[p]
	if i := slices.Index(list, old); i >= 0 {
		list[i] = replacement
		return
	}
	m.AddFixture(p, replacement)
}

// Locations returns every point that has terrain or fixtures recorded.
func (m *Map) Locations() []Point {
	seen := make(map[Point]bool)
	var result []Point
	for p := range m.terrain {
		seen[p] = true
		result = append(result, p)
	}
	for p := range m.fixtures {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	slices.SortFunc(result, func(a, b Point) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Column - b.Column
	})
	return result
}

// Players returns the players known to this map.
func (m *Map) Players() []fixture.Player {
	return slices.Clone(m.players)
}

// AddPlayer registers a player, replacing any with the same ID.
func (m *Map) AddPlayer(p fixture.Player) {
	for i, existing := range m.players {
		if existing.ID == p.ID {
			m.players[i] = p
			return
		}
	}
	m.players = append(m.players, p)
}

// Player returns this map's record for the player with the given ID.
func (m *Map) Player(id int) (fixture.Player, bool) {
	for _, p := range m.players {
		if p.ID == id {
			return p, true
		}
	}
	return fixture.Player{}, false
}

// CurrentPlayer returns the player whose view this map is.
func (m *Map) CurrentPlayer() (fixture.Player, bool) {
	for _, p := range m.players {
		if p.Current {
			return p, true
		}
	}
	return fixture.Player{}, false
}

// Modified reports whether the map changed since the flag was cleared.
func (m *Map) Modified() bool {
	return m.modified
}

// SetModified sets the modified flag.
func (m *Map) SetModified(modified bool) {
	m.modified = modified
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, tiles=%d, populated=%d)",
		m.dims.Rows, m.dims.Columns, len(m.terrain), len(m.fixtures))
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(m *Map) map[TileType]int {
	counts := make(map[TileType]int)
	for _, t := range m.terrain {
		counts[t]++
	}
	return counts
}
