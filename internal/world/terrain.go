package world

// TileType is the base terrain of a tile. TileUnknown means the map has
// no terrain recorded for the point.
type TileType uint8

const (
	TileUnknown TileType = iota
	TileOcean            // Exclusive: no land↔ocean transitions
	TileDesert
	TileJungle
	TileSwamp
	TileSteppe
	TilePlains
	TileTundra
)

// TileTypes lists every known terrain.
var TileTypes = []TileType{TileOcean, TileDesert, TileJungle, TileSwamp, TileSteppe, TilePlains, TileTundra}

func (t TileType) String() string {
	switch t {
	case TileOcean:
		return "Ocean"
	case TileDesert:
		return "Desert"
	case TileJungle:
		return "Jungle"
	case TileSwamp:
		return "Swamp"
	case TileSteppe:
		return "Steppe"
	case TilePlains:
		return "Plains"
	case TileTundra:
		return "Tundra"
	default:
		return "Unknown"
	}
}

// River is a compass-aligned river segment within a tile.
type River uint8

const (
	RiverNorth River = 1 << iota
	RiverEast
	RiverSouth
	RiverWest
	RiverLake
)

// Rivers is the set of river segments in a tile.
type Rivers uint8

// RiversOf builds a set from individual segments.
func RiversOf(segments ...River) Rivers {
	var r Rivers
	for _, s := range segments {
		r |= Rivers(s)
	}
	return r
}

// Has reports whether the segment is present.
func (r Rivers) Has(s River) bool {
	return r&Rivers(s) != 0
}

// With returns the union of r and other.
func (r Rivers) With(other Rivers) Rivers {
	return r | other
}

// Empty reports whether there are no river segments.
func (r Rivers) Empty() bool {
	return r == 0
}

// Segments lists the segments present, in North, East, South, West, Lake order.
func (r Rivers) Segments() []River {
	var result []River
	for _, s := range []River{RiverNorth, RiverEast, RiverSouth, RiverWest, RiverLake} {
		if r.Has(s) {
			result = append(result, s)
		}
	}
	return result
}

// RiverToward returns the river segment on the edge of a tile facing an
// orthogonal direction. ok is false for diagonals and Nowhere.
func RiverToward(d Direction) (River, bool) {
	switch d {
	case North:
		return RiverNorth, true
	case East:
		return RiverEast, true
	case South:
		return RiverSouth, true
	case West:
		return RiverWest, true
	default:
		return 0, false
	}
}
