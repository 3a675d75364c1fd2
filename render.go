package retrospector

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Renderer draws onto a fixed-size canvas surface. All drawing is immediate
// mode: every call issues one underlying draw right away, with no display
// list and no batching.
//
// Draws whose bounding box lies entirely outside the canvas are quietly
// skipped before touching the surface. This is a cheap whole-box reject,
// not pixel clipping: partially visible draws are issued in full and the
// substrate clips them at the pixel level. Enable [SetDebugMode] to log
// each rejected draw.
type Renderer struct {
	target *ebiten.Image
	width  float64
	height float64
}

// NewRenderer wraps target as a width x height canvas surface. Use this
// only when driving the loop yourself through [ebiten.Game]; [Run] manages
// a Renderer for you.
func NewRenderer(target *ebiten.Image, width, height float64) *Renderer {
	return &Renderer{target: target, width: width, height: height}
}

// bind points the renderer at this frame's draw target.
func (r *Renderer) bind(target *ebiten.Image) {
	r.target = target
}

// Size returns the fixed canvas dimensions in pixels.
func (r *Renderer) Size() (width, height float64) {
	return r.width, r.height
}

// outside reports whether box lies entirely outside the canvas rectangle
// (0, 0)-(width, height) on any axis. A zero-size box reduces to the point
// test used for text anchors.
func (r *Renderer) outside(box Rect) bool {
	canvas := Rect{X: 0, Y: 0, Width: r.width, Height: r.height}
	return !canvas.Intersects(box)
}

// Clear clears the entire canvas rectangle.
func (r *Renderer) Clear() {
	r.target.Clear()
}

// DrawImage draws the sprite's tile at the given location. The draw is
// quietly skipped when the sprite's box at that location lies entirely
// outside the canvas on any axis, or when sprite is the zero value.
func (r *Renderer) DrawImage(sprite Sprite, at Location) {
	if sprite.tile == nil {
		debugf("draw of zero-value sprite at (%g, %g) skipped", at.DX, at.DY)
		return
	}
	box := Rect{X: at.DX, Y: at.DY, Width: float64(sprite.Width), Height: float64(sprite.Height)}
	if r.outside(box) {
		debugf("draw of %dx%d sprite at (%g, %g) rejected: outside %gx%g canvas",
			sprite.Width, sprite.Height, at.DX, at.DY, r.width, r.height)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.DX, at.DY)
	r.target.DrawImage(sprite.tile, op)
}

// DrawText draws text anchored at the given location using the built-in
// debug bitmap font. The draw is quietly skipped when the anchor lies
// outside the canvas (a zero-size box under the same reject test as
// DrawImage).
func (r *Renderer) DrawText(text string, at Location) {
	if r.outside(Rect{X: at.DX, Y: at.DY}) {
		debugf("draw of text %q at (%g, %g) rejected: outside %gx%g canvas",
			text, at.DX, at.DY, r.width, r.height)
		return
	}
	ebitenutil.DebugPrintAt(r.target, text, int(at.DX), int(at.DY))
}
