package core

import "testing"

func TestGridContains(t *testing.T) {
	g := NewGrid(32, 32, 25)

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{31, 31}, true},
		{"right edge", Cell{32, 0}, false},
		{"bottom edge", Cell{0, 32}, false},
		{"negative", Cell{-1, 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(32, 20, 25)

	tests := []struct {
		in, expected Cell
	}{
		{Cell{-1, 5}, Cell{31, 5}},
		{Cell{32, 5}, Cell{0, 5}},
		{Cell{4, -1}, Cell{4, 19}},
		{Cell{4, 20}, Cell{4, 0}},
		{Cell{10, 10}, Cell{10, 10}},
	}

	for _, tc := range tests {
		got := g.Wrap(tc.in)
		if got != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
		if !g.Contains(got) {
			t.Errorf("Wrap(%v) = %v is out of bounds", tc.in, got)
		}
	}
}

func TestGridCellAtCoversBoard(t *testing.T) {
	g := NewGrid(7, 5, 1)
	seen := make(map[Cell]bool)
	for i := range g.Size() {
		c := g.CellAt(i)
		if !g.Contains(c) {
			t.Fatalf("CellAt(%d) = %v out of bounds", i, c)
		}
		seen[c] = true
	}
	if len(seen) != g.Size() {
		t.Errorf("CellAt produced %d distinct cells, expected %d", len(seen), g.Size())
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(32, 32, 25)
	r := g.Bounds(Cell{4, 2})
	if r != NewRect(100, 50, 25, 25) {
		t.Errorf("Bounds = %+v, expected {100 50 25 25}", r)
	}
	if g.PixelW() != 800 || g.PixelH() != 800 {
		t.Errorf("pixel size = %dx%d, expected 800x800", g.PixelW(), g.PixelH())
	}
}
