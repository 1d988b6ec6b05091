package engine

import (
	"github.com/vovakirdan/rooftop-runner/internal/assets"
	"github.com/vovakirdan/rooftop-runner/internal/core"
)

// Renderer is the drawing surface games paint into once per frame.
// Coordinates are virtual-pixel world coordinates; the platform decides how
// they map onto the terminal.
type Renderer interface {
	// Clear erases a world-space region.
	Clear(r core.Rect)

	// DrawImage blits the frame region of the pixmap into the destination
	// region, scaling as needed.
	DrawImage(pix *assets.Pixmap, frame, destination core.Rect)

	// DrawEntireImage draws the whole pixmap at its natural size with its
	// top-left corner at position.
	DrawEntireImage(pix *assets.Pixmap, position core.Point)
}

// Image is a positioned pixmap with a bounding box matching its natural size.
// Used for the scrolling backgrounds and barrier obstacles.
type Image struct {
	pix         *assets.Pixmap
	boundingBox core.Rect
}

// NewImage places a pixmap at the given world position.
func NewImage(pix *assets.Pixmap, position core.Point) Image {
	return Image{
		pix:         pix,
		boundingBox: core.Rect{Position: position, W: pix.Width(), H: pix.Height()},
	}
}

// BoundingBox returns the image's world-space extent.
func (i *Image) BoundingBox() core.Rect {
	return i.boundingBox
}

// Draw paints the whole image at its current position.
func (i *Image) Draw(r Renderer) {
	r.DrawEntireImage(i.pix, i.boundingBox.Position)
}

// MoveHorizontally shifts the image by the given distance.
func (i *Image) MoveHorizontally(distance int) {
	i.SetX(i.boundingBox.X() + distance)
}

// Right returns the x-coordinate of the image's right edge.
func (i *Image) Right() int {
	return i.boundingBox.Right()
}

// SetX moves the image to the given left edge.
func (i *Image) SetX(x int) {
	i.boundingBox.SetX(x)
}

// SpriteSheet pairs a pixmap with its frame descriptor so callers can draw
// named cells out of it.
type SpriteSheet struct {
	pix   *assets.Pixmap
	sheet assets.Sheet
}

// NewSpriteSheet wraps a pixmap and its parsed descriptor.
func NewSpriteSheet(pix *assets.Pixmap, sheet assets.Sheet) *SpriteSheet {
	return &SpriteSheet{pix: pix, sheet: sheet}
}

// Cell looks up a frame by name.
func (s *SpriteSheet) Cell(name string) (assets.Cell, bool) {
	cell, ok := s.sheet.Frames[name]
	return cell, ok
}

// Draw blits a source region of the sheet into a destination region.
func (s *SpriteSheet) Draw(r Renderer, source, destination core.Rect) {
	r.DrawImage(s.pix, source, destination)
}

// Pixmap returns the backing pixmap.
func (s *SpriteSheet) Pixmap() *assets.Pixmap {
	return s.pix
}
