package obj

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual is anything with a native size. In the running game it is a shared
// *ebiten.Image; a Body never owns or disposes of it.
type Visual interface {
	Bounds() image.Rectangle
}

// Body is a positioned sprite.
type Body struct {
	Name string

	visual Visual
	x, y   float64
}

// NewBody creates a body at the origin.
func NewBody(visual Visual) *Body {
	return &Body{visual: visual}
}

// NewBodyAt creates a body at (x, y).
func NewBodyAt(visual Visual, x, y float64) *Body {
	return &Body{visual: visual, x: x, y: y}
}

// Move offsets the body's position.
func (b *Body) Move(dx, dy float64) {
	b.x += dx
	b.y += dy
}

// Position returns the body's top-left corner in world coordinates.
func (b *Body) Position() (float64, float64) {
	return b.x, b.y
}

// Bounds returns the visual's local bounding box translated to the body's
// current position.
func (b *Body) Bounds() Rect {
	local := b.visual.Bounds()
	return Rect{
		X:      b.x + float64(local.Min.X),
		Y:      b.y + float64(local.Min.Y),
		Width:  float64(local.Dx()),
		Height: float64(local.Dy()),
	}
}

// Draw draws the body at its position. Visuals that are not textures are
// skipped.
func (b *Body) Draw(screen *ebiten.Image) {
	img, ok := b.visual.(*ebiten.Image)
	if !ok || img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.x, b.y)
	screen.DrawImage(img, op)
}
