package world

// Direction is one of the eight compass directions, or Nowhere.
type Direction uint8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
	Nowhere
)

// Directions lists the eight real directions clockwise from North.
var Directions = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

// Offset returns the (row, column) delta of one step. North is row - 1.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return -1, 0
	case Northeast:
		return -1, 1
	case East:
		return 0, 1
	case Southeast:
		return 1, 1
	case South:
		return 1, 0
	case Southwest:
		return 1, -1
	case West:
		return 0, -1
	case Northwest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. Nowhere is its own opposite.
func (d Direction) Opposite() Direction {
	if d >= Nowhere {
		return Nowhere
	}
	return (d + 4) % 8
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case Northeast:
		return "Northeast"
	case East:
		return "East"
	case Southeast:
		return "Southeast"
	case South:
		return "South"
	case Southwest:
		return "Southwest"
	case West:
		return "West"
	case Northwest:
		return "Northwest"
	default:
		return "Nowhere"
	}
}
