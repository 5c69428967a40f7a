package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestPlaceAvoidsExcluded(t *testing.T) {
	grid := core.NewGrid(8, 8, 1)
	p := NewPlacer(grid, 1)
	taken := func(c core.Cell) bool { return c.X < 4 }

	for range 200 {
		c, err := p.Place(taken)
		if err != nil {
			t.Fatalf("Place: %v", err)
		}
		if taken(c) || !grid.Contains(c) {
			t.Fatalf("placed on excluded or outside cell %v", c)
		}
	}
}

func TestPlaceSingleFreeCell(t *testing.T) {
	grid := core.NewGrid(5, 5, 1)
	free := core.Cell{X: 3, Y: 2}
	p := NewPlacer(grid, 9)

	c, err := p.Place(func(c core.Cell) bool { return c != free })
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if c != free {
		t.Errorf("placed at %v, want %v", c, free)
	}
}

func TestPlaceBoardFull(t *testing.T) {
	tests := []struct {
		name string
		grid core.Grid
	}{
		{"all excluded", core.NewGrid(4, 4, 1)},
		{"empty grid", core.NewGrid(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlacer(tt.grid, 1)
			_, err := p.Place(func(core.Cell) bool { return true })
			if !errors.Is(err, ErrBoardFull) {
				t.Errorf("err = %v, want ErrBoardFull", err)
			}
		})
	}
}

func TestPlaceDeterministic(t *testing.T) {
	grid := core.NewGrid(16, 16, 1)
	a, b := NewPlacer(grid, 77), NewPlacer(grid, 77)
	none := func(core.Cell) bool { return false }

	for range 50 {
		ca, _ := a.Place(none)
		cb, _ := b.Place(none)
		if ca != cb {
			t.Fatalf("same seed placed %v and %v", ca, cb)
		}
	}
}

func TestObstaclesDistinct(t *testing.T) {
	grid := core.NewGrid(6, 6, 1)
	p := NewPlacer(grid, 3)
	body := map[core.Cell]bool{{X: 0, Y: 0}: true, {X: 1, Y: 0}: true}

	obs, err := p.Obstacles(20, func(c core.Cell) bool { return body[c] })
	if err != nil {
		t.Fatalf("Obstacles: %v", err)
	}
	if len(obs) != 20 {
		t.Fatalf("placed %d obstacles, want 20", len(obs))
	}
	for c := range obs {
		if body[c] {
			t.Errorf("obstacle on excluded cell %v", c)
		}
	}

	// Only 36-2-20 = 14 cells remain.
	more, err := p.Obstacles(15, func(c core.Cell) bool { return body[c] || obs[c] })
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("err = %v, want ErrBoardFull", err)
	}
	if len(more) != 14 {
		t.Errorf("placed %d before running out, want 14", len(more))
	}
}

func TestChase(t *testing.T) {
	tests := []struct {
		name         string
		from, target core.Cell
		speed        int
		want         core.Cell
	}{
		{"diagonal", core.Cell{X: 10, Y: 10}, core.Cell{X: 6, Y: 4}, 1, core.Cell{X: 9, Y: 9}},
		{"same row", core.Cell{X: 0, Y: 3}, core.Cell{X: 5, Y: 3}, 1, core.Cell{X: 1, Y: 3}},
		{"no overshoot", core.Cell{X: 4, Y: 4}, core.Cell{X: 5, Y: 9}, 3, core.Cell{X: 5, Y: 7}},
		{"already there", core.Cell{X: 2, Y: 2}, core.Cell{X: 2, Y: 2}, 1, core.Cell{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chase(tt.from, tt.target, tt.speed); got != tt.want {
				t.Errorf("chase(%v, %v, %d) = %v, want %v", tt.from, tt.target, tt.speed, got, tt.want)
			}
		})
	}
}
