package tui

import (
	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/core"
)

// CellRenderer implements engine.Renderer on top of a character screen.
// The 600x600 virtual-pixel world is scaled onto the cell grid with
// nearest-neighbor sampling; pixmap spaces are transparent and leave the
// underlying cell untouched.
type CellRenderer struct {
	screen *core.Screen
}

// NewCellRenderer wraps a screen buffer.
func NewCellRenderer(screen *core.Screen) *CellRenderer {
	return &CellRenderer{screen: screen}
}

// cellX maps a world x-coordinate to a cell column, rounding down.
func (cr *CellRenderer) cellX(wx int) int {
	return wx * cr.screen.Width() / core.WorldWidth
}

// cellY maps a world y-coordinate to a cell row, rounding down.
func (cr *CellRenderer) cellY(wy int) int {
	return wy * cr.screen.Height() / core.WorldHeight
}

// worldX maps a cell column center back to a world x-coordinate.
func (cr *CellRenderer) worldX(cx int) float64 {
	return (float64(cx) + 0.5) * core.WorldWidth / float64(cr.screen.Width())
}

// worldY maps a cell row center back to a world y-coordinate.
func (cr *CellRenderer) worldY(cy int) float64 {
	return (float64(cy) + 0.5) * core.WorldHeight / float64(cr.screen.Height())
}

// Clear erases the cells covering a world-space region.
func (cr *CellRenderer) Clear(r core.Rect) {
	x0 := cr.cellX(r.X())
	y0 := cr.cellY(r.Y())
	x1 := cr.cellX(r.Right()-1) + 1
	y1 := cr.cellY(r.Bottom()-1) + 1
	cr.screen.ClearRect(x0, y0, x1-x0, y1-y0)
}

// DrawImage blits the frame region of the pixmap into the destination
// region. For every screen cell the destination covers, the cell center is
// mapped back into the frame and the pixmap sampled there.
func (cr *CellRenderer) DrawImage(pix *assets.Pixmap, frame, destination core.Rect) {
	if destination.W <= 0 || destination.H <= 0 {
		return
	}

	x0 := core.Max(cr.cellX(destination.X()), 0)
	y0 := core.Max(cr.cellY(destination.Y()), 0)
	x1 := core.Min(cr.cellX(destination.Right()-1)+1, cr.screen.Width())
	y1 := core.Min(cr.cellY(destination.Bottom()-1)+1, cr.screen.Height())

	color := pix.Color()
	for cy := y0; cy < y1; cy++ {
		v := (cr.worldY(cy) - float64(destination.Y())) / float64(destination.H)
		for cx := x0; cx < x1; cx++ {
			u := (cr.worldX(cx) - float64(destination.X())) / float64(destination.W)
			if u < 0 || u >= 1 || v < 0 || v >= 1 {
				continue
			}
			sx := frame.X() + int(u*float64(frame.W))
			sy := frame.Y() + int(v*float64(frame.H))
			r := pix.Sample(sx, sy)
			if r == ' ' {
				continue
			}
			cr.screen.Set(cx, cy, r, color)
		}
	}
}

// DrawEntireImage draws the whole pixmap at its natural size with its
// top-left corner at position.
func (cr *CellRenderer) DrawEntireImage(pix *assets.Pixmap, position core.Point) {
	bounds := core.NewRect(0, 0, pix.Width(), pix.Height())
	destination := core.Rect{Position: position, W: pix.Width(), H: pix.Height()}
	cr.DrawImage(pix, bounds, destination)
}
