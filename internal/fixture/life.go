package fixture

import "fmt"

// Animal is a population of animals, wild or domesticated. Animals may
// stand on a tile or belong to a unit.
type Animal struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"`
	Talking    bool   `json:"talking,omitempty"`
	Status     string `json:"status"` // "wild", "domesticated", ...
	Born       int    `json:"born"`   // Turn of birth, -1 if unknown
	Population int    `json:"population"`
	Difficulty int    `json:"dc"`
}

func (a *Animal) FixtureID() int { return a.ID }
func (a *Animal) DC() int        { return a.Difficulty }
func (a *Animal) isFixture()     {}

// Copy with zero forgets the birth turn.
func (a *Animal) Copy(zero bool) Fixture {
	c := *a
	if zero {
		c.Born = -1
	}
	return &c
}

func (a *Animal) Equals(o Fixture) bool {
	other, ok := o.(*Animal)
	return ok && *a == *other
}

func (a *Animal) String() string {
	if a.Talking {
		return fmt.Sprintf("talking %s", a.Kind)
	}
	if a.Population > 1 {
		return fmt.Sprintf("group of %d %s %s", a.Population, a.Status, a.Kind)
	}
	return fmt.Sprintf("%s %s", a.Status, a.Kind)
}

// AnimalTracks are signs that an animal passed through. They carry no
// identity of their own.
type AnimalTracks struct {
	Kind       string `json:"kind"`
	Difficulty int    `json:"dc"`
}

func (t *AnimalTracks) FixtureID() int { return -1 }
func (t *AnimalTracks) DC() int        { return t.Difficulty }
func (t *AnimalTracks) isFixture()     {}

func (t *AnimalTracks) Copy(bool) Fixture {
	c := *t
	return &c
}

func (t *AnimalTracks) Equals(o Fixture) bool {
	other, ok := o.(*AnimalTracks)
	return ok && t.Kind == other.Kind
}

func (t *AnimalTracks) String() string {
	return fmt.Sprintf("tracks of %s", t.Kind)
}

// Immortal is a unique mythic creature (sphinx, centaur, ...).
type Immortal struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

func (i *Immortal) FixtureID() int { return i.ID }
func (i *Immortal) DC() int        { return 20 }
func (i *Immortal) isFixture()     {}
func (i *Immortal) String() string { return i.Kind }

func (i *Immortal) Copy(bool) Fixture {
	c := *i
	return &c
}

func (i *Immortal) Equals(o Fixture) bool {
	other, ok := o.(*Immortal)
	return ok && *i == *other
}

// Grove is a grove or orchard of trees.
type Grove struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"`
	Orchard    bool   `json:"orchard,omitempty"`
	Cultivated bool   `json:"cultivated,omitempty"`
	Population int    `json:"population"`
}

func (g *Grove) FixtureID() int { return g.ID }
func (g *Grove) DC() int        { return 18 }
func (g *Grove) isFixture()     {}

func (g *Grove) Copy(bool) Fixture {
	c := *g
	return &c
}

func (g *Grove) Equals(o Fixture) bool {
	other, ok := o.(*Grove)
	return ok && *g == *other
}

func (g *Grove) String() string {
	if g.Orchard {
		return fmt.Sprintf("%s orchard", g.Kind)
	}
	return fmt.Sprintf("%s grove", g.Kind)
}

// Meadow is a meadow or field.
type Meadow struct {
	ID         int     `json:"id"`
	Kind       string  `json:"kind"`
	Field      bool    `json:"field,omitempty"`
	Cultivated bool    `json:"cultivated,omitempty"`
	Acres      float64 `json:"acres"`
}

func (m *Meadow) FixtureID() int { return m.ID }
func (m *Meadow) DC() int        { return 18 }
func (m *Meadow) isFixture()     {}

func (m *Meadow) Copy(bool) Fixture {
	c := *m
	return &c
}

func (m *Meadow) Equals(o Fixture) bool {
	other, ok := o.(*Meadow)
	return ok && *m == *other
}

func (m *Meadow) String() string {
	if m.Field {
		return fmt.Sprintf("field of %s", m.Kind)
	}
	return fmt.Sprintf("%s meadow", m.Kind)
}

// Shrub is wild brush of some kind.
type Shrub struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"`
	Population int    `json:"population"`
}

func (s *Shrub) FixtureID() int { return s.ID }
func (s *Shrub) DC() int        { return 15 }
func (s *Shrub) isFixture()     {}
func (s *Shrub) String() string { return s.Kind }

func (s *Shrub) Copy(bool) Fixture {
	c := *s
	return &c
}

func (s *Shrub) Equals(o Fixture) bool {
	other, ok := o.(*Shrub)
	return ok && *s == *other
}
