// Package fixture provides the closed family of things that sit on a map
// tile: animals, vegetation, resources, towns, units and their members.
//
// Fixture is a sealed interface; capabilities (kind, owner, name,
// contents) are reached through the type-switch helpers in this package
// rather than through extra interfaces.
package fixture

import "strings"

// Fixture is any discrete object placed on a map tile.
type Fixture interface {
	// FixtureID is the numeric identity shared by corresponding fixtures
	// across map instances. Fixtures without an identity return -1.
	FixtureID() int
	// DC is the difficulty of noticing the fixture.
	DC() int
	// Copy returns a deep copy; zero drops information a player who only
	// glimpsed the fixture should not learn.
	Copy(zero bool) Fixture
	// Equals is value equality.
	Equals(other Fixture) bool
	String() string

	isFixture()
}

// Player owns units and towns.
type Player struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Current bool   `json:"current,omitempty"`
}

// Independent reports whether p is the placeholder owner for unclaimed
// towns and wild units.
func (p Player) Independent() bool {
	return strings.EqualFold(p.Name, "independent")
}

// SamePlayer compares players by ID.
func SamePlayer(a, b Player) bool {
	return a.ID == b.ID
}

// IndependentPlayer is the conventional independent owner.
var IndependentPlayer = Player{ID: -1, Name: "Independent"}

// NothingFound is the sentinel encounter meaning "nothing turned up".
type NothingFound struct{}

// Nothing is the shared NothingFound value.
var Nothing Fixture = &NothingFound{}

func (*NothingFound) FixtureID() int      { return -1 }
func (*NothingFound) DC() int             { return 0 }
func (n *NothingFound) Copy(bool) Fixture { return n }
func (*NothingFound) String() string      { return "nothing" }
func (*NothingFound) isFixture()          {}
func (*NothingFound) Equals(o Fixture) bool {
	_, ok := o.(*NothingFound)
	return ok
}

// IsNothing reports whether f is the NothingFound sentinel.
func IsNothing(f Fixture) bool {
	_, ok := f.(*NothingFound)
	return ok
}

// KindOf returns the kind string of fixtures that have one.
func KindOf(f Fixture) (string, bool) {
	switch v := f.(type) {
	case *Animal:
		return v.Kind, true
	case *AnimalTracks:
		return v.Kind, true
	case *Forest:
		return v.Kind, true
	case *Ground:
		return v.Kind, true
	case *MineralVein:
		return v.Kind, true
	case *Mine:
		return v.Kind, true
	case *Grove:
		return v.Kind, true
	case *Meadow:
		return v.Kind, true
	case *Shrub:
		return v.Kind, true
	case *Immortal:
		return v.Kind, true
	case *Unit:
		return v.Kind, true
	case *ResourcePile:
		return v.Kind, true
	case *Cache:
		return v.Kind, true
	default:
		return "", false
	}
}

// SetKind changes the kind of fixtures that have one.
func SetKind(f Fixture, kind string) bool {
	switch v := f.(type) {
	case *Animal:
		v.Kind = kind
	case *Unit:
		v.Kind = kind
	case *ResourcePile:
		v.Kind = kind
	case *Immortal:
		v.Kind = kind
	case *Grove:
		v.Kind = kind
	case *Meadow:
		v.Kind = kind
	case *Shrub:
		v.Kind = kind
	default:
		return false
	}
	return true
}

// OwnerOf returns the owner of towns and units.
func OwnerOf(f Fixture) (Player, bool) {
	switch v := f.(type) {
	case *Village:
		return v.Owner, true
	case *Town:
		return v.Owner, true
	case *Fortress:
		return v.Owner, true
	case *Unit:
		return v.Owner, true
	default:
		return Player{}, false
	}
}

// SetOwner changes the owner of towns and units.
func SetOwner(f Fixture, p Player) bool {
	switch v := f.(type) {
	case *Village:
		v.Owner = p
	case *Town:
		v.Owner = p
	case *Fortress:
		v.Owner = p
	case *Unit:
		v.Owner = p
	default:
		return false
	}
	return true
}

// NameOf returns the name of named fixtures.
func NameOf(f Fixture) (string, bool) {
	switch v := f.(type) {
	case *Village:
		return v.Name, true
	case *Town:
		return v.Name, true
	case *Fortress:
		return v.Name, true
	case *Unit:
		return v.Name, true
	case *Worker:
		return v.Name, true
	default:
		return "", false
	}
}

// SetName renames named fixtures.
func SetName(f Fixture, name string) bool {
	switch v := f.(type) {
	case *Village:
		v.Name = name
	case *Town:
		v.Name = name
	case *Fortress:
		v.Name = name
	case *Unit:
		v.Name = name
	case *Worker:
		v.Name = name
	default:
		return false
	}
	return true
}

// Contents returns the nested fixtures of a container (unit or fortress).
// The returned slice is the container's own; callers must not retain it
// across mutations.
func Contents(f Fixture) ([]Fixture, bool) {
	switch v := f.(type) {
	case *Unit:
		return v.Members, true
	case *Fortress:
		return v.Members, true
	default:
		return nil, false
	}
}

// IsMobile reports whether f can move between tiles on its own.
func IsMobile(f Fixture) bool {
	switch f.(type) {
	case *Animal, *Unit, *Immortal:
		return true
	default:
		return false
	}
}

// IsUnitMember reports whether f may be placed inside a unit.
func IsUnitMember(f Fixture) bool {
	switch f.(type) {
	case *Worker, *Animal, *Immortal, *ResourcePile:
		return true
	default:
		return false
	}
}

// IsTown reports whether f is a village, town or fortress.
func IsTown(f Fixture) bool {
	switch f.(type) {
	case *Village, *Town, *Fortress:
		return true
	default:
		return false
	}
}

// IsVegetation reports whether f is a gatherable plant.
func IsVegetation(f Fixture) bool {
	switch f.(type) {
	case *Grove, *Meadow, *Shrub:
		return true
	default:
		return false
	}
}

// IsAnimalOrTracks reports whether f is an animal or its tracks.
func IsAnimalOrTracks(f Fixture) bool {
	switch f.(type) {
	case *Animal, *AnimalTracks:
		return true
	default:
		return false
	}
}

// SameVariant reports whether a and b are the same concrete fixture type.
func SameVariant(a, b Fixture) bool {
	switch a.(type) {
	case *Animal:
		_, ok := b.(*Animal)
		return ok
	case *AnimalTracks:
		_, ok := b.(*AnimalTracks)
		return ok
	case *Forest:
		_, ok := b.(*Forest)
		return ok
	case *Hill:
		_, ok := b.(*Hill)
		return ok
	case *Ground:
		_, ok := b.(*Ground)
		return ok
	case *MineralVein:
		_, ok := b.(*MineralVein)
		return ok
	case *Mine:
		_, ok := b.(*Mine)
		return ok
	case *Grove:
		_, ok := b.(*Grove)
		return ok
	case *Meadow:
		_, ok := b.(*Meadow)
		return ok
	case *Shrub:
		_, ok := b.(*Shrub)
		return ok
	case *Immortal:
		_, ok := b.(*Immortal)
		return ok
	case *Village:
		_, ok := b.(*Village)
		return ok
	case *Town:
		_, ok := b.(*Town)
		return ok
	case *Fortress:
		_, ok := b.(*Fortress)
		return ok
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	case *Worker:
		_, ok := b.(*Worker)
		return ok
	case *ResourcePile:
		_, ok := b.(*ResourcePile)
		return ok
	case *Cache:
		_, ok := b.(*Cache)
		return ok
	case *NothingFound:
		_, ok := b.(*NothingFound)
		return ok
	default:
		return false
	}
}

// EqualEnough reports whether a and b are the same fixture for the
// purpose of keeping maps in sync: identical, value-equal, or equal once
// both have their sensitive information zeroed (which ignores the
// randomized difficulty of mineral deposits).
func EqualEnough(a, b Fixture) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b || a.Equals(b) {
		return true
	}
	if !SameVariant(a, b) {
		return false
	}
	return a.Copy(true).Equals(b.Copy(true))
}

// Matches reports whether a and b denote the same object in different map
// instances: same variant and same identity. Fixtures without an identity
// fall back to value equality.
func Matches(a, b Fixture) bool {
	if a == nil || b == nil || !SameVariant(a, b) {
		return false
	}
	if a.FixtureID() < 0 || b.FixtureID() < 0 {
		return a.Equals(b)
	}
	return a.FixtureID() == b.FixtureID()
}

func copyAll(members []Fixture, zero bool) []Fixture {
	if members == nil {
		return nil
	}
	result := make([]Fixture, len(members))
	for i, m := range members {
		result[i] = m.Copy(zero)
	}
	return result
}

func equalAll(a, b []Fixture) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
