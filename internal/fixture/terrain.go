package fixture

import "fmt"

// Forest is a stand of trees on a tile.
type Forest struct {
	ID    int     `json:"id"`
	Kind  string  `json:"kind"`
	Rows  bool    `json:"rows,omitempty"` // Planted in rows
	Acres float64 `json:"acres"`
}

func (f *Forest) FixtureID() int { return f.ID }
func (f *Forest) DC() int        { return 5 }
func (f *Forest) isFixture()     {}

func (f *Forest) Copy(bool) Fixture {
	c := *f
	return &c
}

func (f *Forest) Equals(o Fixture) bool {
	other, ok := o.(*Forest)
	return ok && *f == *other
}

func (f *Forest) String() string {
	return fmt.Sprintf("%s forest", f.Kind)
}

// Hill marks hilly ground on an otherwise flat tile.
type Hill struct {
	ID int `json:"id"`
}

func (h *Hill) FixtureID() int { return h.ID }
func (h *Hill) DC() int        { return 10 }
func (h *Hill) isFixture()     {}
func (h *Hill) String() string { return "hill" }

func (h *Hill) Copy(bool) Fixture {
	c := *h
	return &c
}

func (h *Hill) Equals(o Fixture) bool {
	other, ok := o.(*Hill)
	return ok && *h == *other
}

// Ground is the exposed or buried bedrock of a tile.
type Ground struct {
	ID      int    `json:"id"`
	Kind    string `json:"kind"`
	Exposed bool   `json:"exposed"`
}

func (g *Ground) FixtureID() int { return g.ID }
func (g *Ground) isFixture()     {}

func (g *Ground) DC() int {
	if g.Exposed {
		return 10
	}
	return 40
}

func (g *Ground) Copy(bool) Fixture {
	c := *g
	return &c
}

func (g *Ground) Equals(o Fixture) bool {
	other, ok := o.(*Ground)
	return ok && *g == *other
}

func (g *Ground) String() string {
	if g.Exposed {
		return fmt.Sprintf("exposed %s ground", g.Kind)
	}
	return fmt.Sprintf("%s ground", g.Kind)
}

// MineralVein is a deposit whose difficulty is rolled at placement time.
type MineralVein struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"`
	Exposed    bool   `json:"exposed"`
	Difficulty int    `json:"dc"`
}

func (v *MineralVein) FixtureID() int { return v.ID }
func (v *MineralVein) isFixture()     {}

func (v *MineralVein) DC() int {
	if v.Exposed {
		return v.Difficulty - 4
	}
	return v.Difficulty
}

// Copy with zero drops the rolled difficulty.
func (v *MineralVein) Copy(zero bool) Fixture {
	c := *v
	if zero {
		c.Difficulty = 0
	}
	return &c
}

func (v *MineralVein) Equals(o Fixture) bool {
	other, ok := o.(*MineralVein)
	return ok && *v == *other
}

func (v *MineralVein) String() string {
	if v.Exposed {
		return fmt.Sprintf("exposed vein of %s", v.Kind)
	}
	return fmt.Sprintf("vein of %s", v.Kind)
}

// Mine is a worked mine entrance.
type Mine struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"` // "active", "abandoned", ...
}

func (m *Mine) FixtureID() int { return m.ID }
func (m *Mine) DC() int        { return 15 }
func (m *Mine) isFixture()     {}

func (m *Mine) Copy(bool) Fixture {
	c := *m
	return &c
}

func (m *Mine) Equals(o Fixture) bool {
	other, ok := o.(*Mine)
	return ok && *m == *other
}

func (m *Mine) String() string {
	return fmt.Sprintf("%s %s mine", m.Status, m.Kind)
}

// IsDiggable reports whether digging at a tile can expose f.
func IsDiggable(f Fixture) bool {
	switch f.(type) {
	case *Ground, *MineralVein:
		return true
	default:
		return false
	}
}

// Expose returns a copy of a diggable fixture with its exposed flag set.
// Already-exposed fixtures stay exposed.
func Expose(f Fixture) (Fixture, bool) {
	switch v := f.(type) {
	case *Ground:
		c := *v
		c.Exposed = true
		return &c, true
	case *MineralVein:
		c := *v
		c.Exposed = true
		return &c, true
	default:
		return nil, false
	}
}
