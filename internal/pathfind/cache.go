package pathfind

import "github.com/talgya/expedition/internal/world"

// Cache hands out one Pathfinder per map so that memoized distances are
// shared between callers. The owner must call Invalidate after changing a
// map's terrain, rivers or fixtures that affect movement cost.
type Cache struct {
	finders map[*world.Map]*Pathfinder
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{finders: make(map[*world.Map]*Pathfinder)}
}

// For returns the Pathfinder for m, creating it on first use.
func (c *Cache) For(m *world.Map) *Pathfinder {
	pf, ok := c.finders[m]
	if !ok {
		pf = New(m)
		c.finders[m] = pf
	}
	return pf
}

// Invalidate drops any memoized state for m.
func (c *Cache) Invalidate(m *world.Map) {
	delete(c.finders, m)
}
