package core

import "math"

// Viewport maps a fixed world rectangle onto a block of screen cells.
// Games simulate in world units and only convert when rendering.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            int // first screen row used by the playfield
}

// NewViewport fits a world of the given size into a screen, leaving hudRows
// rows at the top for the HUD.
func NewViewport(worldW, worldH float64, screenW, screenH, hudRows int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   max(screenW, 1),
		Rows:   max(screenH-hudRows, 1),
		Top:    hudRows,
	}
}

// ToCell converts a world position into a screen cell.
func (v Viewport) ToCell(p Vec2) (int, int) {
	col := int(math.Floor(p.X / v.WorldW * float64(v.Cols)))
	row := int(math.Floor(p.Y / v.WorldH * float64(v.Rows)))
	return col, row + v.Top
}

// RowOf converts a world y coordinate into a screen row.
func (v Viewport) RowOf(y float64) int {
	_, row := v.ToCell(Vec2{Y: y})
	return row
}

// ColumnX returns the world x coordinate at the center of a screen column.
func (v Viewport) ColumnX(col int) float64 {
	return (float64(col) + 0.5) * v.WorldW / float64(v.Cols)
}

// Bottom returns the last screen row of the playfield.
func (v Viewport) Bottom() int {
	return v.Top + v.Rows - 1
}
