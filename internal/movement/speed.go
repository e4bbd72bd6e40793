package movement

import (
	"fmt"
	"strings"
)

// Speed is how carefully a unit moves: more care costs more movement
// points and improves the chance of noticing things.
type Speed uint8

const (
	Hurried Speed = iota
	Normal
	Observant
	Careful
	Meticulous
)

// Speeds lists every speed from least to most careful.
var Speeds = []Speed{Hurried, Normal, Observant, Careful, Meticulous}

// Multiplier scales the base movement cost.
func (s Speed) Multiplier() float64 {
	switch s {
	case Hurried:
		return 0.66
	case Observant:
		return 1.5
	case Careful:
		return 2.0
	case Meticulous:
		return 2.5
	default:
		return 1.0
	}
}

// PerceptionModifier is added to Perception checks made while moving.
func (s Speed) PerceptionModifier() int {
	switch s {
	case Hurried:
		return -2
	case Observant:
		return 2
	case Careful:
		return 4
	case Meticulous:
		return 6
	default:
		return 0
	}
}

func (s Speed) String() string {
	switch s {
	case Hurried:
		return "Hurried"
	case Observant:
		return "Observant"
	case Careful:
		return "Careful"
	case Meticulous:
		return "Meticulous"
	default:
		return "Normal"
	}
}

// ParseSpeed looks a speed up by name, ignoring case. Unknown names give
// Normal and an error.
func ParseSpeed(name string) (Speed, error) {
	for _, s := range Speeds {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return Normal, fmt.Errorf("unknown speed %q", name)
}
