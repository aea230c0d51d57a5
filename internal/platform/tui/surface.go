package tui

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// CellSurface draws play-field pixels onto a terminal cell grid. The whole
// screen shows the field, so one cell covers fieldW/cols by fieldH/rows
// pixels and the aspect ratio follows the terminal.
type CellSurface struct {
	screen         *core.Screen
	fieldW, fieldH float64
}

// NewCellSurface wraps screen for a field of the given pixel size.
func NewCellSurface(screen *core.Screen, fieldW, fieldH float64) *CellSurface {
	return &CellSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the underlying cell buffer.
func (s *CellSurface) Screen() *core.Screen {
	return s.screen
}

// Clear blanks every cell.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// FillRect fills every cell the rectangle touches. Anything smaller than a
// cell still gets one cell, so bullets and stars never vanish.
func (s *CellSurface) FillRect(r core.Rect, glyph rune, color core.Color) {
	x0, x1 := span(r.X, r.Right(), s.fieldW, s.screen.Width())
	y0, y1 := span(r.Y, r.Bottom(), s.fieldH, s.screen.Height())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetColored(x, y, glyph, color)
		}
	}
}

// DrawBox outlines the cells the rectangle touches.
func (s *CellSurface) DrawBox(r core.Rect, color core.Color) {
	x0, x1 := span(r.X, r.Right(), s.fieldW, s.screen.Width())
	y0, y1 := span(r.Y, r.Bottom(), s.fieldH, s.screen.Height())
	s.screen.DrawBox(x0, y0, x1-x0+1, y1-y0+1, color)
}

// DrawText writes text starting at the cell that holds the pixel at.
func (s *CellSurface) DrawText(at core.Point, text string, color core.Color) {
	x, y := s.Cell(at)
	s.screen.DrawTextColored(x, y, text, color)
}

// DrawTextCentered writes text centered on the row that holds pixel row y.
func (s *CellSurface) DrawTextCentered(y float64, text string, color core.Color) {
	_, row := s.Cell(core.Point{Y: y})
	x := (s.screen.Width() - len([]rune(text))) / 2
	s.screen.DrawTextColored(x, row, text, color)
}

// Cell maps a field pixel to the cell that contains it.
func (s *CellSurface) Cell(p core.Point) (int, int) {
	return toCell(p.X, s.fieldW, s.screen.Width()), toCell(p.Y, s.fieldH, s.screen.Height())
}

// Point maps a cell back to the field pixel at its center.
func (s *CellSurface) Point(x, y int) core.Point {
	return core.Point{
		X: (float64(x) + 0.5) * s.fieldW / float64(max(s.screen.Width(), 1)),
		Y: (float64(y) + 0.5) * s.fieldH / float64(max(s.screen.Height(), 1)),
	}
}

// Contains reports whether the cell is on screen.
func (s *CellSurface) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.screen.Width() && y < s.screen.Height()
}

func toCell(v, field float64, cells int) int {
	if field <= 0 {
		return 0
	}
	return int(math.Floor(v * float64(cells) / field))
}

// span returns the inclusive cell range covered by [lo, hi).
func span(lo, hi, field float64, cells int) (int, int) {
	first := toCell(lo, field, cells)
	if field <= 0 {
		return first, first
	}
	last := int(math.Ceil(hi*float64(cells)/field)) - 1
	if last < first {
		last = first
	}
	return first, last
}
