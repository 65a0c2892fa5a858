package ebiten

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"starforge/pkg/engine/console"
)

const softGradientSteps = 64

// softGradient is a 1xN white strip whose alpha rises smoothly from the
// edges to the middle. Stretched over a rect it gives a feathered fill.
var softGradient = func() *ebiten.Image {
	img := ebiten.NewImage(1, softGradientSteps)
	pix := make([]byte, 4*softGradientSteps)
	for i := 0; i < softGradientSteps; i++ {
		t := (float64(i) + 0.5) / softGradientSteps
		a := math.Sin(t * math.Pi)
		a *= a
		v := byte(a * 255)
		pix[4*i+0] = v
		pix[4*i+1] = v
		pix[4*i+2] = v
		pix[4*i+3] = v
	}
	img.WritePixels(pix)
	return img
}()

// FillRect queues a solid rect into the quad batch.
func (r *Renderer) FillRect(rect console.Rect, c console.Color) {
	y := r.flipY(rect.Y + rect.H)
	r.quads.push(rect.X, y, rect.W, rect.H, c.R, c.G, c.B, c.A)
}

// FillSoftRect draws a vertically feathered rect scissored to clip. Textured
// draws break the quad batch, so pending quads flush first.
func (r *Renderer) FillSoftRect(rect console.Rect, c console.Color, clip console.Rect) {
	r.quads.flush(r)

	cx := int(math.Floor(clip.X))
	cy := int(math.Floor(r.flipY(clip.Y + clip.H)))
	cw := int(math.Ceil(clip.W))
	ch := int(math.Ceil(clip.H))
	if cw <= 0 || ch <= 0 {
		return
	}
	bounds := r.screen.Bounds()
	region := image.Rect(cx, cy, cx+cw, cy+ch).Intersect(bounds)
	if region.Empty() {
		return
	}
	target := r.screen.SubImage(region).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W, rect.H/softGradientSteps)
	op.GeoM.Translate(rect.X, r.flipY(rect.Y+rect.H))
	op.ColorScale.Scale(c.R, c.G, c.B, c.A)
	target.DrawImage(softGradient, op)
}

// DrawText draws a shaped text mesh with its bottom-left corner at (x, y).
func (r *Renderer) DrawText(m console.TextMesh, x, y, scale float64, c console.Color) {
	tm, ok := m.(*textMesh)
	if !ok || tm.img == nil {
		return
	}
	r.quads.flush(r)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, r.flipY(y)-tm.Height()*scale)
	op.ColorScale.Scale(c.R, c.G, c.B, c.A)
	r.screen.DrawImage(tm.img, op)
}
