package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("#2DB400")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square.
const cellWidth = 2

// Glyph pairs per filled shape.
var shapeGlyphs = map[core.Shape][cellWidth]rune{
	core.ShapeRect:    {'█', '█'},
	core.ShapeEllipse: {'(', ')'},
}

// FrameSize returns the terminal size a frame of grid g needs: the bordered
// board plus one HUD line above and one below.
func FrameSize(g core.Grid) (w, h int) {
	return g.W*cellWidth + 2, g.H + 4
}

// Rasterize draws a frame into dst. dst is resized to FrameSize.
//
// Layout: row 0 is the top HUD line, rows 1 and H+2 hold the border, the
// board occupies rows 2..H+1 and the bottom HUD line is the last row.
// Overlay texts are boxed and centered on the board.
func Rasterize(f core.Frame, dst *core.Screen) {
	w, h := FrameSize(f.Grid)
	if dst.Width() != w || dst.Height() != h {
		dst.Resize(w, h)
	}
	dst.Clear()

	unit := max(f.Grid.Unit, 1)
	var overlay []core.Primitive

	for _, p := range f.Primitives {
		switch {
		case p.Layer == core.LayerOverlay:
			overlay = append(overlay, p)
		case p.Shape == core.ShapeOutline:
			dst.DrawBox(core.NewRect(0, 1, w, h-2), p.Color)
		case p.Shape == core.ShapeText:
			row := 0
			if p.Bounds.Y > 0 {
				row = h - 1
			}
			dst.DrawText(alignCol(p, w), row, p.Text, p.Color)
		default:
			glyphs, ok := shapeGlyphs[p.Shape]
			if !ok {
				continue
			}
			col := 1 + (p.Bounds.X/unit)*cellWidth
			row := 2 + p.Bounds.Y/unit
			for i, r := range glyphs {
				dst.SetColored(col+i, row, r, p.Color)
			}
		}
	}

	drawOverlay(dst, overlay)
}

// alignCol returns the start column of a HUD text, inset by one column.
func alignCol(p core.Primitive, w int) int {
	n := utf8.RuneCountInString(p.Text)
	switch p.Align {
	case core.AlignCenter:
		return (w - n) / 2
	case core.AlignRight:
		return w - 1 - n
	default:
		return 1
	}
}

// drawOverlay renders overlay lines inside a centered box.
func drawOverlay(dst *core.Screen, lines []core.Primitive) {
	if len(lines) == 0 {
		return
	}

	maxLen := 0
	for _, p := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(p.Text))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, p := range lines {
		n := utf8.RuneCountInString(p.Text)
		dst.DrawText(box.X+(boxW-n)/2, box.Y+1+i, p.Text, p.Color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
