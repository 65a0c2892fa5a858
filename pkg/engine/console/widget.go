package console

// attach selects which screen edge a widget's x offset is resolved against.
type attach int

const (
	attachLeft attach = iota
	attachCenter
	attachRight
)

// xOffs returns the screen-space offset for an attachment given the current
// virtual width.
func xOffs(a attach, vw float64) float64 {
	switch a {
	case attachLeft:
		return 0
	case attachRight:
		return vw
	case attachCenter:
		return vw * 0.5
	}
	return 0
}

// widgetKind tags the widget variants.
type widgetKind int

const (
	kindButton widgetKind = iota
	kindToggle
	kindTab
)

// widget is the shared geometry+state record for all console widgets.
// Kind-specific behavior comes from the behaviors dispatch table.
type widget struct {
	kind      widgetKind
	attach    attach
	x, y      float64
	w, h      float64
	textScale float64

	label string
	mesh  TextMesh // lazily shaped from label

	pressed  bool
	on       bool // toggle state
	selected bool // tab state

	act    action // button/tab action; toggle-on action
	offAct action // toggle-off action
}

// behavior holds the per-kind strategy functions.
type behavior struct {
	// arms reports whether a hit on pointer-down should arm the widget.
	arms func(w *widget) bool
	// fire runs when an armed widget is released inside its rect.
	fire func(w *widget, dispatch func(action))
	// palette picks fg/bg colors for the current state.
	palette func(w *widget) (fg, bg Color)
}

var (
	colIdleFg = Color{0.8, 0.7, 0.8, 1}
	colIdleBg = Color{0.25, 0.2, 0.3, 1}
	colLitFg  = Color{1, 1, 1, 1}
	colLitBg  = Color{0.5, 0.4, 0.6, 1}
	colHotBg  = Color{0.5, 0.2, 1, 1}
)

var behaviors = map[widgetKind]behavior{
	kindButton: {
		arms: func(w *widget) bool { return true },
		fire: func(w *widget, dispatch func(action)) { dispatch(w.act) },
		palette: func(w *widget) (Color, Color) {
			if w.pressed {
				return Color{0, 0, 0, 1}, colIdleFg
			}
			return colIdleFg, colIdleBg
		},
	},
	kindToggle: {
		arms: func(w *widget) bool { return true },
		fire: func(w *widget, dispatch func(action)) {
			w.on = !w.on
			if w.on {
				dispatch(w.act)
			} else {
				dispatch(w.offAct)
			}
		},
		palette: func(w *widget) (Color, Color) {
			switch {
			case w.pressed:
				return colLitFg, colHotBg
			case w.on:
				return colLitFg, colLitBg
			}
			return colIdleFg, colIdleBg
		},
	},
	kindTab: {
		// Re-selecting the active tab is a no-op; don't even arm.
		arms: func(w *widget) bool { return !w.selected },
		fire: func(w *widget, dispatch func(action)) { dispatch(w.act) },
		palette: func(w *widget) (Color, Color) {
			switch {
			case w.pressed:
				return colLitFg, colHotBg
			case w.selected:
				return colLitFg, colLitBg
			}
			return colIdleFg, colIdleBg
		},
	},
}

// rect resolves the widget's screen rectangle against the current virtual
// width.
func (w *widget) rect(vw float64) Rect {
	return Rect{X: w.x + xOffs(w.attach, vw), Y: w.y, W: w.w, H: w.h}
}

// hitTest checks the point against the widget rectangle in bottom-local
// space.
func (w *widget) hitTest(px, py, vw float64) bool {
	return w.rect(vw).Contains(px, py)
}

// onPointerDown arms the widget if the point hits it. Returns whether the
// event was consumed.
func (w *widget) onPointerDown(px, py, vw float64) bool {
	if w.hitTest(px, py, vw) && behaviors[w.kind].arms(w) {
		w.pressed = true
		return true
	}
	return false
}

// onPointerUp fires the widget's action if it was armed and the release hits
// the rectangle, then disarms.
func (w *widget) onPointerUp(px, py, vw float64, dispatch func(action)) {
	if !w.pressed {
		return
	}
	w.pressed = false
	if w.hitTest(px, py, vw) {
		behaviors[w.kind].fire(w, dispatch)
	}
}

// draw renders the widget: a colored backing quad with the label centered in
// a contrasting color. bottom is the console's current animated extent.
func (w *widget) draw(svc *Services, bottom float64) {
	vw := svc.Metrics.VirtualWidth()
	fg, bg := behaviors[w.kind].palette(w)
	r := w.rect(vw)
	r.Y += bottom
	svc.Render.FillRect(r, bg)

	if w.mesh == nil {
		w.mesh = svc.Shaper.Shape(w.label)
	}
	sc := 0.6 * w.textScale
	tx := r.X + (r.W-w.mesh.Width()*sc)*0.5
	ty := r.Y + (r.H-w.mesh.Height()*sc)*0.5
	svc.Render.DrawText(w.mesh, tx, ty, sc, fg)
}
