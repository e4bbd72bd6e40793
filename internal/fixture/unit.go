package fixture

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Unit is a group of workers, animals and supplies under one owner.
type Unit struct {
	ID      int            `json:"id"`
	Owner   Player         `json:"owner"`
	Kind    string         `json:"kind"`
	Name    string         `json:"name"`
	Orders  map[int]string `json:"orders,omitempty"`  // Turn → orders
	Results map[int]string `json:"results,omitempty"` // Turn → results
	Members []Fixture      `json:"-"`
}

func (u *Unit) FixtureID() int { return u.ID }
func (u *Unit) isFixture()     {}

// DC drops as the unit grows; big groups are easy to spot.
func (u *Unit) DC() int {
	dc := 25 - len(u.Members)
	if dc < 5 {
		return 5
	}
	return dc
}

// Copy with zero drops orders and results and zeroes every member.
func (u *Unit) Copy(zero bool) Fixture {
	c := *u
	c.Orders = nil
	c.Results = nil
	if !zero {
		c.Orders = maps.Clone(u.Orders)
		c.Results = maps.Clone(u.Results)
	}
	c.Members = copyAll(u.Members, zero)
	return &c
}

func (u *Unit) Equals(o Fixture) bool {
	other, ok := o.(*Unit)
	return ok && u.ID == other.ID && u.Kind == other.Kind && u.Name == other.Name &&
		u.Owner.ID == other.Owner.ID &&
		maps.Equal(u.Orders, other.Orders) && maps.Equal(u.Results, other.Results) &&
		equalAll(u.Members, other.Members)
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s %s (%s)", u.Kind, u.Name, u.Owner.Name)
}

// SetOrders records the orders for a turn.
func (u *Unit) SetOrders(turn int, orders string) {
	if u.Orders == nil {
		u.Orders = make(map[int]string)
	}
	u.Orders[turn] = orders
}

// SetResults records the results for a turn.
func (u *Unit) SetResults(turn int, results string) {
	if u.Results == nil {
		u.Results = make(map[int]string)
	}
	u.Results[turn] = results
}

// LatestOrders returns the orders of the most recent turn at or before
// turn, or "" if there are none.
func (u *Unit) LatestOrders(turn int) string {
	turns := slices.Sorted(maps.Keys(u.Orders))
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i] <= turn {
			return u.Orders[turns[i]]
		}
	}
	return ""
}

// AddMember appends a member.
func (u *Unit) AddMember(m Fixture) {
	u.Members = append(u.Members, m)
}

// RemoveMember removes a member by identity.
func (u *Unit) RemoveMember(m Fixture) bool {
	var ok bool
	u.Members, ok = removeFrom(u.Members, m)
	return ok
}

// Empty reports whether the unit has no members.
func (u *Unit) Empty() bool {
	return len(u.Members) == 0
}

// Workers returns the worker members.
func (u *Unit) Workers() []*Worker {
	var result []*Worker
	for _, m := range u.Members {
		if w, ok := m.(*Worker); ok {
			result = append(result, w)
		}
	}
	return result
}

// Stats are a worker's six ability scores.
type Stats struct {
	Strength     int `json:"str"`
	Dexterity    int `json:"dex"`
	Constitution int `json:"con"`
	Intelligence int `json:"int"`
	Wisdom       int `json:"wis"`
	Charisma     int `json:"cha"`
}

// Modifier converts an ability score to its check modifier.
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// Skill is a trained skill within a job.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Hours int    `json:"hours"`
}

// Job is a worker's profession and the skills learned in it.
type Job struct {
	Name   string  `json:"name"`
	Level  int     `json:"level"`
	Skills []Skill `json:"skills,omitempty"`
}

// Worker is a person in a unit.
type Worker struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Race  string `json:"race"`
	Stats *Stats `json:"stats,omitempty"`
	Jobs  []Job  `json:"jobs,omitempty"`
}

func (w *Worker) FixtureID() int { return w.ID }
func (w *Worker) DC() int        { return 25 }
func (w *Worker) isFixture()     {}

// Copy with zero drops stats.
func (w *Worker) Copy(zero bool) Fixture {
	c := *w
	if zero || w.Stats == nil {
		c.Stats = nil
	} else {
		stats := *w.Stats
		c.Stats = &stats
	}
	c.Jobs = make([]Job, len(w.Jobs))
	for i, j := range w.Jobs {
		c.Jobs[i] = Job{Name: j.Name, Level: j.Level, Skills: slices.Clone(j.Skills)}
	}
	return &c
}

func (w *Worker) Equals(o Fixture) bool {
	other, ok := o.(*Worker)
	if !ok || w.ID != other.ID || w.Name != other.Name || w.Race != other.Race {
		return false
	}
	if (w.Stats == nil) != (other.Stats == nil) || (w.Stats != nil && *w.Stats != *other.Stats) {
		return false
	}
	return slices.EqualFunc(w.Jobs, other.Jobs, func(a, b Job) bool {
		return a.Name == b.Name && a.Level == b.Level && slices.Equal(a.Skills, b.Skills)
	})
}

func (w *Worker) String() string {
	return fmt.Sprintf("%s, a %s", w.Name, w.Race)
}

// SkillRanks sums the levels of every skill with the given name, matched
// case-insensitively, across all of the worker's jobs.
func (w *Worker) SkillRanks(name string) int {
	total := 0
	for _, j := range w.Jobs {
		for _, s := range j.Skills {
			if strings.EqualFold(s.Name, name) {
				total += s.Level
			}
		}
	}
	return total
}

// ResourcePile is a quantity of some resource carried by a unit or left
// on a tile.
type ResourcePile struct {
	ID       int     `json:"id"`
	Kind     string  `json:"kind"`
	Contents string  `json:"contents"`
	Quantity float64 `json:"quantity"`
	Units    string  `json:"units"`
	Created  int     `json:"created"` // Turn, -1 if unknown
}

func (r *ResourcePile) FixtureID() int { return r.ID }
func (r *ResourcePile) DC() int        { return 10 }
func (r *ResourcePile) isFixture()     {}

func (r *ResourcePile) Copy(bool) Fixture {
	c := *r
	return &c
}

func (r *ResourcePile) Equals(o Fixture) bool {
	other, ok := o.(*ResourcePile)
	return ok && *r == *other
}

func (r *ResourcePile) String() string {
	return fmt.Sprintf("%g %s of %s", r.Quantity, r.Units, r.Contents)
}

// Cache is a hidden store of resources. Revealing it to a player consumes
// it from the main map.
type Cache struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Contents string `json:"contents"`
}

func (c *Cache) FixtureID() int { return c.ID }
func (c *Cache) DC() int        { return 25 }
func (c *Cache) isFixture()     {}

// Copy with zero hides the contents.
func (c *Cache) Copy(zero bool) Fixture {
	cp := *c
	if zero {
		cp.Contents = ""
	}
	return &cp
}

func (c *Cache) Equals(o Fixture) bool {
	other, ok := o.(*Cache)
	return ok && *c == *other
}

func (c *Cache) String() string {
	return fmt.Sprintf("cache of %s", c.Kind)
}
