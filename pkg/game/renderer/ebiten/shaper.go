package ebiten

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"starforge/pkg/engine/console"
	"starforge/pkg/engine/scene"
)

const fontSize = 18.0

// textMesh is a shaped line of text rendered once into an offscreen image.
// Draws scale and tint the image; the glyph shaping cost is paid only here.
type textMesh struct {
	img  *ebiten.Image
	w, h float64
}

func (m *textMesh) Width() float64  { return m.w }
func (m *textMesh) Height() float64 { return m.h }

// Shaper shapes console text with a monospace face resolved from the asset
// library.
type Shaper struct {
	fontData *scene.Data
	source   *text.GoTextFaceSource
	face     *text.GoTextFace
}

// NewShaper loads the console font asset and prepares a face.
func NewShaper(sc *scene.Scene, lib *scene.Library) (*Shaper, error) {
	data, err := scene.NewData(AssetMonoFont, sc, lib)
	if err != nil {
		return nil, err
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data.Payload()))
	if err != nil {
		return nil, fmt.Errorf("console font: %w", err)
	}
	return &Shaper{
		fontData: data,
		source:   source,
		face:     &text.GoTextFace{Source: source, Size: fontSize},
	}, nil
}

// Close releases the shaper's font asset.
func (s *Shaper) Close() { s.fontData.MarkDead() }

// Shape renders one line of text into a mesh.
func (s *Shaper) Shape(str string) console.TextMesh {
	w, h := text.Measure(str, s.face, 0)
	if h <= 0 {
		h = s.face.Metrics().HAscent + s.face.Metrics().HDescent
	}
	m := &textMesh{w: w, h: h}
	if w <= 0 {
		return m
	}
	m.img = ebiten.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(m.img, str, s.face, op)
	return m
}

// StringWidth measures a single line in text units.
func (s *Shaper) StringWidth(str string) float64 {
	return text.Advance(str, s.face)
}

// Wrap splits at newlines and wherever a segment would exceed maxWidth.
func (s *Shaper) Wrap(str string, maxWidth float64) []string {
	var out []string
	for _, line := range strings.Split(str, "\n") {
		out = append(out, s.wrapLine(line, maxWidth)...)
	}
	return out
}

func (s *Shaper) wrapLine(line string, maxWidth float64) []string {
	if text.Advance(line, s.face) <= maxWidth {
		return []string{line}
	}
	var out []string
	var seg strings.Builder
	for _, r := range line {
		next := seg.String() + string(r)
		if seg.Len() > 0 && text.Advance(next, s.face) > maxWidth {
			out = append(out, seg.String())
			seg.Reset()
		}
		seg.WriteRune(r)
	}
	out = append(out, seg.String())
	return out
}
