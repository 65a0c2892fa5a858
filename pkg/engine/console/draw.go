package console

import "math"

// Draw colors.
var (
	colPanel  = Color{0, 0, 0.1, 0.9}
	colStripe = Color{1, 1, 1, 0.1}
	colBorder = Color{0.25, 0.2, 0.3, 1}
	colShadow = Color{0.03, 0, 0.09, 0.9}
	colFaint  = Color{0.5, 0.5, 0.7, 0.8}
	colWhite  = Color{1, 1, 1, 1}
	colCaret  = Color{1, 1, 1, 0.7}
)

// Caret blink pattern: visible for the first half of each period, and held
// visible briefly after any edit.
const (
	caretPeriodMS = 200
	caretHoldMS   = 100
)

// Draw emits one frame of the console overlay. A console that has never
// transitioned, or has fully transitioned out, draws nothing.
func (c *DevConsole) Draw() {
	c.svc.Loop.AssertCurrent()
	now := c.svc.Clock.DisplayTime()
	if !c.trans.started() || c.trans.hidden(now) {
		return
	}

	bs := c.baseScale()
	vw := c.svc.Metrics.VirtualWidth()
	vh := c.svc.Metrics.VirtualHeight()
	bottom := c.trans.bottom(now, vh, bs)
	r := c.svc.Render

	// Backing panel, command-tab accent stripe, border strip.
	const borderHeight = 3.0
	r.FillRect(Rect{X: 0, Y: bottom, W: vw, H: vh - bottom}, colPanel)
	if c.activeTab == commandTab {
		r.FillRect(Rect{X: 0, Y: bottom + 15*bs, W: vw, H: 15 * bs}, colStripe)
	}
	r.FillRect(Rect{X: 0, Y: bottom - borderHeight*bs, W: vw, H: borderHeight * bs}, colBorder)

	// Drop shadow below the border, clipped so it never bleeds back over
	// the panel.
	r.FillSoftRect(
		Rect{X: vw*0.5 - vw*0.6, Y: bottom + 160 - 300, W: vw * 1.2, H: 600},
		colShadow,
		Rect{X: 0, Y: 0, W: vw, H: math.Max(0, bottom-borderHeight*0.95*bs)},
	)

	if c.activeTab == commandTab {
		c.drawCommandTab(r, bs, vw, vh, bottom)
	}

	for _, w := range c.tabButtons {
		w.draw(&c.svc, bottom)
	}
	for _, w := range c.buttons {
		w.draw(&c.svc, bottom)
	}
}

func (c *DevConsole) drawCommandTab(r Renderer, bs, vw, vh, bottom float64) {
	if c.inputDirty || c.inputMesh == nil {
		c.inputMesh = c.svc.Shaper.Shape(c.input)
		c.inputDirty = false
	}

	r.DrawText(c.titleMesh, 10*bs, bottom+4, 0.35*bs, colFaint)
	r.DrawText(c.builtMesh, vw-115*bs, bottom+4, 0.35*bs, colFaint)
	r.DrawText(c.promptMesh, 5*bs, bottom+14.5*bs, 0.5*bs, colWhite)
	r.DrawText(c.inputMesh, 15*bs, bottom+14.5*bs, 0.5*bs, colWhite)

	// Caret.
	rt := c.svc.Clock.RealTime()
	if rt%caretPeriodMS < caretPeriodMS/2 || rt-c.lastInputChange < caretHoldMS {
		x := (19 + c.svc.Shaper.StringWidth(c.input)*0.5) * bs
		r.FillRect(Rect{
			X: x - 3*bs,
			Y: bottom + 22.5*bs - 6*bs,
			W: 6 * bs,
			H: 12 * bs,
		}, colCaret)
	}

	// Output lines, newest nearest the input line, walking upward until
	// off screen.
	const drawScale = 0.6
	const vInc = 18.0
	h := 0.5 * (vw - WrapUnits*drawScale)
	v := bottom + 32*bs
	if c.lines.InProgress() != "" {
		r.DrawText(c.lines.InProgressMesh(c.svc.Shaper), h, v+2, drawScale, colWhite)
		v += vInc
	}
	lines := c.lines.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		r.DrawText(lines[i].Mesh(c.svc.Shaper), h, v+2, drawScale, colWhite)
		v += vInc
		if v > vh+vInc {
			break
		}
	}
}
