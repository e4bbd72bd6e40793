// Package world provides the toroidal terrain grid: points, directions,
// tile types, rivers, and the per-instance map that stores terrain and
// fixtures. The main map and every subordinate map are each a *Map.
package world

import "fmt"

// Point is a (row, column) location on the grid.
type Point struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// InvalidPoint means "no location".
var InvalidPoint = Point{Row: -1, Column: -1}

// Valid reports whether p refers to a real location.
func (p Point) Valid() bool {
	return p.Row >= 0 && p.Column >= 0
}

func (p Point) String() string {
	if !p.Valid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// MapDimensions is the fixed size of a map. Every coordinate computed
// through it wraps around both edges.
type MapDimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Wrap brings p back onto the grid.
func (d MapDimensions) Wrap(p Point) Point {
	return Point{Row: mod(p.Row, d.Rows), Column: mod(p.Column, d.Columns)}
}

// Contains reports whether p lies on the grid without wrapping.
func (d MapDimensions) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Column >= 0 && p.Column < d.Columns
}

// Neighbor returns the point one step from p in the given direction.
func (d MapDimensions) Neighbor(p Point, dir Direction) Point {
	dr, dc := dir.Offset()
	return d.Wrap(Point{Row: p.Row + dr, Column: p.Column + dc})
}

// Surrounding returns every point within radius steps of center
// (Chebyshev distance), center included. On small maps the square wraps
// onto itself; each point appears once.
func (d MapDimensions) Surrounding(center Point, radius int) []Point {
	seen := make(map[Point]bool)
	var result []Point
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			p := d.Wrap(Point{Row: center.Row + dr, Column: center.Column + dc})
			if seen[p] {
				continue
			}
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}

// Points returns every point on the grid in row-major order.
func (d MapDimensions) Points() []Point {
	result := make([]Point, 0, d.Rows*d.Columns)
	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Columns; c++ {
			result = append(result, Point{Row: r, Column: c})
		}
	}
	return result
}

// Distance returns the number of 8-directional steps between a and b,
// taking the shorter way around each axis.
func (d MapDimensions) Distance(a, b Point) int {
	dr := wrappedDelta(a.Row, b.Row, d.Rows)
	dc := wrappedDelta(a.Column, b.Column, d.Columns)
	if dr > dc {
		return dr
	}
	return dc
}

func wrappedDelta(a, b, size int) int {
	delta := abs(a - b)
	if size-delta < delta {
		return size - delta
	}
	return delta
}

func mod(a, n int) int {
	if n <= 0 {
		return a
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
