package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Colors of the board entities.
var itemColors = map[ItemKind]core.Color{
	ItemApple:  core.ColorRed,
	ItemBonus:  core.ColorYellow,
	ItemShield: core.ColorBlue,
	ItemPotion: core.ColorGreen,
}

// BuildFrame turns a snapshot into an ordered draw list. Board primitives
// use pixel bounds (cell * unit). HUD texts anchor to the top edge (Y 0) or
// the bottom edge (Y = pixel height); their X is the left edge, the center
// or the right edge depending on Align.
func BuildFrame(s Snapshot) core.Frame {
	f := core.Frame{Grid: s.Grid}
	pw, ph := s.Grid.PixelW(), s.Grid.PixelH()

	f.Add(core.Primitive{
		Shape:  core.ShapeOutline,
		Layer:  core.LayerBoard,
		Bounds: core.NewRect(0, 0, pw, ph),
		Color:  core.ColorWhite,
	})

	switch s.Phase {
	case PhaseMenu:
		addMenu(&f, s)
		return f
	case PhaseGameOver:
		if s.Game == variantRogue.id {
			addBoard(&f, s)
			addHUD(&f, s)
		}
		addGameOver(&f, s)
		return f
	}

	addBoard(&f, s)
	addHUD(&f, s)
	if s.Paused {
		overlay(&f, s, 0, "Paused", core.ColorWhite)
		overlay(&f, s, 1, "Press P to continue", core.ColorWhite)
	}
	return f
}

func addBoard(f *core.Frame, s Snapshot) {
	for _, it := range s.Items {
		shape := core.ShapeEllipse
		if it.Kind == ItemShield {
			shape = core.ShapeRect
		}
		f.Add(cellPrimitive(s.Grid, it.Cell, shape, itemColors[it.Kind]))
	}
	for _, c := range s.Obstacles {
		f.Add(cellPrimitive(s.Grid, c, core.ShapeRect, core.ColorGray))
	}
	if s.HasEnemy {
		f.Add(cellPrimitive(s.Grid, s.Enemy, core.ShapeRect, core.ColorMagenta))
	}
	// Body first so the head stays on top after a wrap-around overlap.
	for i := len(s.Snake) - 1; i > 0; i-- {
		f.Add(cellPrimitive(s.Grid, s.Snake[i], core.ShapeRect, core.ColorDarkGreen))
	}
	if head, ok := s.Head(); ok {
		f.Add(cellPrimitive(s.Grid, head, core.ShapeRect, core.ColorGreen))
	}
}

func cellPrimitive(g core.Grid, c core.Cell, shape core.Shape, color core.Color) core.Primitive {
	return core.Primitive{
		Shape:  shape,
		Layer:  core.LayerBoard,
		Bounds: g.Bounds(c),
		Color:  color,
	}
}

func addHUD(f *core.Frame, s Snapshot) {
	pw, ph := s.Grid.PixelW(), s.Grid.PixelH()

	hud(f, 0, pw/2, core.AlignCenter, fmt.Sprintf("Score: %d", s.Score))
	if s.Game == variantRogue.id {
		hud(f, 0, 0, core.AlignLeft, fmt.Sprintf("Health: %d", s.Health))
		hud(f, 0, pw, core.AlignRight, fmt.Sprintf("High Score: %d", s.HighScore))
		return
	}

	hud(f, 0, 0, core.AlignLeft, fmt.Sprintf("High Score: %d", s.HighScore))
	hud(f, 0, pw, core.AlignRight, fmt.Sprintf("Time: %ds", s.ElapsedSeconds()))
	hud(f, ph, 0, core.AlignLeft, "Mode: "+s.ModeName)
	if s.Shield {
		hud(f, ph, pw, core.AlignRight, "Shield: ON")
	}
}

func hud(f *core.Frame, y, x int, align core.Align, text string) {
	f.Add(core.Primitive{
		Shape:  core.ShapeText,
		Layer:  core.LayerHUD,
		Bounds: core.NewRect(x, y, 0, 0),
		Color:  core.ColorWhite,
		Text:   text,
		Align:  align,
	})
}

func addMenu(f *core.Frame, s Snapshot) {
	line := 0
	next := func(text string, color core.Color) {
		overlay(f, s, line, text, color)
		line++
	}

	next("Multi-Mode Snake Game", core.ColorWhite)
	next("Select Game Mode:", core.ColorWhite)
	for _, m := range s.Menu {
		color := core.ColorWhite
		if m.Slot == s.Selected {
			color = core.ColorYellow
		}
		next(fmt.Sprintf("%d: %s", m.Slot, m.Name), color)
	}
	next("Press ENTER to Start", core.ColorWhite)
	next("Selected Mode: "+s.ModeName, core.ColorWhite)
}

func addGameOver(f *core.Frame, s Snapshot) {
	overlay(f, s, 0, "Game Over", core.ColorRed)
	if s.Game == variantRogue.id {
		overlay(f, s, 1, "Press R to Restart", core.ColorWhite)
		return
	}
	overlay(f, s, 1, fmt.Sprintf("Score: %d", s.Score), core.ColorWhite)
	overlay(f, s, 2, "Press R to Restart", core.ColorWhite)
}

// overlay adds the n-th centered line of an overlay, starting at the upper
// quarter of the board.
func overlay(f *core.Frame, s Snapshot, n int, text string, color core.Color) {
	unit := max(s.Grid.Unit, 1)
	f.Add(core.Primitive{
		Shape:  core.ShapeText,
		Layer:  core.LayerOverlay,
		Bounds: core.NewRect(s.Grid.PixelW()/2, s.Grid.PixelH()/4+n*2*unit, 0, 0),
		Color:  color,
		Text:   text,
		Align:  core.AlignCenter,
	})
}
