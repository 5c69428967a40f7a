package core

import "fmt"

// Cell is a (col, row) position on the playfield grid.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes a fixed W×H board of square cells, each Unit pixels wide.
type Grid struct {
	W, H int
	Unit int
}

// NewGrid creates a grid description.
func NewGrid(w, h, unit int) Grid {
	return Grid{W: w, H: h, Unit: unit}
}

// Size returns the number of cells on the board.
func (g Grid) Size() int {
	return g.W * g.H
}

// Contains reports whether c lies within [0,W)×[0,H).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Wrap renormalizes c into the board, modulo each dimension.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: Mod(c.X, g.W), Y: Mod(c.Y, g.H)}
}

// CellAt maps a linear index in [0, Size) to a cell, row-major.
func (g Grid) CellAt(i int) Cell {
	return Cell{X: i % g.W, Y: i / g.W}
}

// Bounds returns the pixel rectangle covered by a cell.
func (g Grid) Bounds(c Cell) Rect {
	return NewRect(c.X*g.Unit, c.Y*g.Unit, g.Unit, g.Unit)
}

// PixelW returns the board width in pixels.
func (g Grid) PixelW() int {
	return g.W * g.Unit
}

// PixelH returns the board height in pixels.
func (g Grid) PixelH() int {
	return g.H * g.Unit
}
