package core

import "math"

// Glyphs used when pixel shapes are rasterized onto terminal cells.
const (
	GlyphBlock  = '█'
	GlyphCircle = '●'
)

// Surface is the drawing collaborator games render into once per tick.
// Coordinates are world pixels with the origin at the top-left corner.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}

// CellCanvas is a Surface that rasterizes pixel shapes onto a Screen of
// character cells, each cell covering cellW x cellH pixels.
type CellCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCellCanvas wraps a screen. Non-positive cell sizes fall back to 1 pixel per cell.
func NewCellCanvas(s *Screen, cellW, cellH float64) *CellCanvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &CellCanvas{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// CellSize returns the pixel size of one cell.
func (c *CellCanvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// Size returns the screen dimensions in pixels.
func (c *CellCanvas) Size() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// Clear erases the underlying screen.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// FillRect fills every cell the rectangle covers.
func (c *CellCanvas) FillRect(x, y, w, h float64, col Color) {
	r := NewBox(x, y, w, h).ToCells(c.cellW, c.cellH)
	c.screen.DrawRect(r, GlyphBlock, col)
}

// FillCircle marks every cell whose center lies inside the circle.
// The cell containing the center is always marked so small circles stay visible.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col Color) {
	bounds := NewBox(cx-r, cy-r, 2*r, 2*r).ToCells(c.cellW, c.cellH)
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			px := (float64(x) + 0.5) * c.cellW
			py := (float64(y) + 0.5) * c.cellH
			if math.Hypot(px-cx, py-cy) <= r {
				c.screen.SetColored(x, y, GlyphCircle, col)
			}
		}
	}
	c.screen.SetColored(int(math.Floor(cx/c.cellW)), int(math.Floor(cy/c.cellH)), GlyphCircle, col)
}

// DrawText writes text starting at the cell containing (x, y).
func (c *CellCanvas) DrawText(x, y float64, text string, col Color) {
	c.screen.DrawText(int(math.Floor(x/c.cellW)), int(math.Floor(y/c.cellH)), text, col)
}
