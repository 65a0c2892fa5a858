package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"starforge/pkg/engine/graphics"
)

// quadBatcher accumulates solid-colour quads into shared vertex and index
// buffers and submits them in a single DrawTriangles call. Any textured
// draw (text, gradient) must flush the batch first so z-order holds.
type quadBatcher struct {
	verts *graphics.MeshBuffer[ebiten.Vertex]
	index *graphics.MeshBuffer[uint16]

	white *ebiten.Image
}

func newQuadBatcher() *quadBatcher {
	// A 3x3 image with a 1x1 sub-region keeps bilinear sampling from
	// bleeding past the texel edge.
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	white := src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	return &quadBatcher{
		verts: graphics.NewMeshBuffer[ebiten.Vertex](256),
		index: graphics.NewMeshBuffer[uint16](384),
		white: white,
	}
}

// push adds one screen-space quad to the pending batch.
func (b *quadBatcher) push(x, y, w, h float64, cr, cg, cb, ca float32) {
	base := uint16(b.verts.Len())
	sx, sy := float32(x), float32(y)
	sw, sh := float32(w), float32(h)
	for i := 0; i < 4; i++ {
		// Vertex colors are straight alpha under the default
		// ColorScaleMode.
		v := ebiten.Vertex{
			DstX:   sx,
			DstY:   sy,
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
		if i == 1 || i == 3 {
			v.DstX += sw
		}
		if i == 2 || i == 3 {
			v.DstY += sh
		}
		b.verts.Append(v)
	}
	b.index.Append(base, base+1, base+2, base+1, base+3, base+2)
}

// flush submits all pending quads and resets the buffers.
func (b *quadBatcher) flush(r *Renderer) {
	if b.verts.Len() == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	r.screen.DrawTriangles(b.verts.Elems(), b.index.Elems(), b.white, op)
	b.verts.Reset()
	b.index.Reset()
}
