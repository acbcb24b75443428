package vmath

import "math"

// Grid maps a Cols x Rows cell area onto a pixel rectangle
type Grid struct {
	Cols, Rows int
	Bounds     Rect
}

func NewGrid(cols, rows int, bounds Rect) Grid {
	return Grid{Cols: max(cols, 1), Rows: max(rows, 1), Bounds: bounds}
}

func (g Grid) CellWidth() float64 {
	return g.Bounds.Width() / float64(g.Cols)
}

func (g Grid) CellHeight() float64 {
	return g.Bounds.Height() / float64(g.Rows)
}

// ToPixel returns the pixel center of a cell, cells outside the grid map outside the bounds
func (g Grid) ToPixel(col, row int) Vec2 {
	return Vec2{
		X: g.Bounds.MinX + (float64(col)+0.5)*g.CellWidth(),
		Y: g.Bounds.MinY + (float64(row)+0.5)*g.CellHeight(),
	}
}

// ToCell returns the cell containing p, clamped to the grid
func (g Grid) ToCell(p Vec2) (int, int) {
	col := int(math.Floor((p.X - g.Bounds.MinX) / g.CellWidth()))
	row := int(math.Floor((p.Y - g.Bounds.MinY) / g.CellHeight()))
	return min(max(col, 0), g.Cols-1), min(max(row, 0), g.Rows-1)
}

// Cells converts a pixel length to a cell count along x
func (g Grid) Cells(px float64) int {
	return int(math.Round(px / g.CellWidth()))
}
