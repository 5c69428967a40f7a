package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// chase moves from toward target by at most speed cells on each axis
// independently, never overshooting.
func chase(from, target core.Cell, speed int) core.Cell {
	dx := target.X - from.X
	dy := target.Y - from.Y
	return core.Cell{
		X: from.X + core.Sign(dx)*min(speed, core.Abs(dx)),
		Y: from.Y + core.Sign(dy)*min(speed, core.Abs(dy)),
	}
}
