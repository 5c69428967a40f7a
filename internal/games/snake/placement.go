package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned when no free cell is left.
var ErrBoardFull = errors.New("snake: no free cell left on the board")

// attemptsPerCell bounds rejection sampling before falling back to a scan.
const attemptsPerCell = 4

// Placer picks uniformly random free cells on a grid.
type Placer struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewPlacer creates a placer seeded for deterministic placement.
func NewPlacer(grid core.Grid, seed int64) *Placer {
	return &Placer{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Place returns a free cell, i.e. one for which excluded reports false.
// Random probing is tried first; once that budget is spent every free cell is
// collected and one is drawn from them, so a nearly full board still
// terminates.
func (p *Placer) Place(excluded func(core.Cell) bool) (core.Cell, error) {
	size := p.grid.Size()
	if size == 0 {
		return core.Cell{}, ErrBoardFull
	}

	for range attemptsPerCell * size {
		c := p.grid.CellAt(p.rng.Intn(size))
		if !excluded(c) {
			return c, nil
		}
	}

	var free []core.Cell
	for i := range size {
		if c := p.grid.CellAt(i); !excluded(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}

// Obstacles places n pairwise distinct cells, none of them excluded.
func (p *Placer) Obstacles(n int, excluded func(core.Cell) bool) (map[core.Cell]bool, error) {
	out := make(map[core.Cell]bool, n)
	for range n {
		c, err := p.Place(func(c core.Cell) bool {
			return out[c] || excluded(c)
		})
		if err != nil {
			return out, err
		}
		out[c] = true
	}
	return out, nil
}
