package fixture

import "fmt"

// Village is a small settlement that a unit can swear to its owner.
type Village struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Owner      Player `json:"owner"`
	Race       string `json:"race"`
	Population int    `json:"population"`
}

func (v *Village) FixtureID() int { return v.ID }
func (v *Village) DC() int        { return 30 }
func (v *Village) isFixture()     {}

// Copy with zero hides the population.
func (v *Village) Copy(zero bool) Fixture {
	c := *v
	if zero {
		c.Population = 0
	}
	return &c
}

func (v *Village) Equals(o Fixture) bool {
	other, ok := o.(*Village)
	return ok && v.ID == other.ID && v.Name == other.Name && v.Race == other.Race &&
		v.Population == other.Population && SamePlayer(v.Owner, other.Owner)
}

func (v *Village) String() string {
	return fmt.Sprintf("%s village %s (%s)", v.Race, v.Name, v.Owner.Name)
}

// TownSize categorizes town scale.
type TownSize uint8

const (
	SizeSmall TownSize = iota
	SizeMedium
	SizeLarge
)

// Town is a town or city.
type Town struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Owner  Player   `json:"owner"`
	Size   TownSize `json:"size"`
	Status string   `json:"status"` // "active", "abandoned", "ruined", ...
}

func (t *Town) FixtureID() int { return t.ID }
func (t *Town) DC() int        { return 20 - 5*int(t.Size) }
func (t *Town) isFixture()     {}

func (t *Town) Copy(bool) Fixture {
	c := *t
	return &c
}

func (t *Town) Equals(o Fixture) bool {
	other, ok := o.(*Town)
	return ok && t.ID == other.ID && t.Name == other.Name && t.Size == other.Size &&
		t.Status == other.Status && SamePlayer(t.Owner, other.Owner)
}

func (t *Town) String() string {
	return fmt.Sprintf("%s town %s (%s)", t.Status, t.Name, t.Owner.Name)
}

// Fortress is a player's stronghold. Units may be stationed inside.
type Fortress struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Owner   Player    `json:"owner"`
	Members []Fixture `json:"-"`
}

func (f *Fortress) FixtureID() int { return f.ID }
func (f *Fortress) DC() int        { return 20 }
func (f *Fortress) isFixture()     {}

func (f *Fortress) Copy(zero bool) Fixture {
	c := *f
	c.Members = copyAll(f.Members, zero)
	return &c
}

func (f *Fortress) Equals(o Fixture) bool {
	other, ok := o.(*Fortress)
	return ok && f.ID == other.ID && f.Name == other.Name &&
		SamePlayer(f.Owner, other.Owner) && equalAll(f.Members, other.Members)
}

func (f *Fortress) String() string {
	return fmt.Sprintf("fortress %s (%s)", f.Name, f.Owner.Name)
}

// AddMember stations a fixture inside the fortress.
func (f *Fortress) AddMember(m Fixture) {
	f.Members = append(f.Members, m)
}

// RemoveMember removes a fixture by identity.
func (f *Fortress) RemoveMember(m Fixture) bool {
	var ok bool
	f.Members, ok = removeFrom(f.Members, m)
	return ok
}

func removeFrom(members []Fixture, m Fixture) ([]Fixture, bool) {
	for i, existing := range members {
		if existing == m {
			return append(members[:i:i], members[i+1:]...), true
		}
	}
	return members, false
}
