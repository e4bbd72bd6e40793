package world

import "testing"

func TestNeighborInverse(t *testing.T) {
	dims := MapDimensions{Rows: 7, Columns: 5}
	for _, p := range dims.Points() {
		for _, d := range Directions {
			back := dims.Neighbor(dims.Neighbor(p, d), d.Opposite())
			if back != p {
				t.Errorf("%v: %s then %s landed on %v", p, d, d.Opposite(), back)
			}
		}
	}
}

func TestNeighborWraps(t *testing.T) {
	dims := MapDimensions{Rows: 10, Columns: 10}
	tests := []struct {
		from Point
		dir  Direction
		want Point
	}{
		{Point{0, 0}, North, Point{9, 0}},
		{Point{0, 0}, West, Point{0, 9}},
		{Point{9, 9}, Southeast, Point{0, 0}},
		{Point{5, 5}, East, Point{5, 6}},
		{Point{5, 5}, Nowhere, Point{5, 5}},
	}
	for _, tt := range tests {
		if got := dims.Neighbor(tt.from, tt.dir); got != tt.want {
			t.Errorf("Neighbor(%v, %s) = %v, want %v", tt.from, tt.dir, got, tt.want)
		}
		if !dims.Contains(dims.Neighbor(tt.from, tt.dir)) {
			t.Errorf("Neighbor(%v, %s) left the grid", tt.from, tt.dir)
		}
	}
}

func TestSurrounding(t *testing.T) {
	dims := MapDimensions{Rows: 20, Columns: 20}
	if got := len(dims.Surrounding(Point{0, 0}, 2)); got != 25 {
		t.Errorf("radius 2 on a large map: %d points, want 25", got)
	}
	small := MapDimensions{Rows: 3, Columns: 3}
	if got := len(small.Surrounding(Point{1, 1}, 2)); got != 9 {
		t.Errorf("radius 2 on a 3x3 map: %d points, want 9", got)
	}
}

func TestDistance(t *testing.T) {
	dims := MapDimensions{Rows: 10, Columns: 10}
	if d := dims.Distance(Point{0, 0}, Point{9, 9}); d != 1 {
		t.Errorf("corner-to-corner distance = %d, want 1", d)
	}
	if d := dims.Distance(Point{2, 3}, Point{5, 4}); d != 3 {
		t.Errorf("Distance = %d, want 3", d)
	}
}

func TestInvalidPoint(t *testing.T) {
	if InvalidPoint.Valid() {
		t.Error("InvalidPoint reports valid")
	}
	if !(Point{0, 0}).Valid() {
		t.Error("origin reports invalid")
	}
}

func TestOppositeOfNowhere(t *testing.T) {
	if Nowhere.Opposite() != Nowhere {
		t.Error("Nowhere should be its own opposite")
	}
}
