package console

import (
	"log"

	"github.com/leonelquinteros/gotext"
)

// The command tab carries the prompt, input line and output; other tabs only
// carry their action buttons.
const commandTab = "Console"

// ClearCommand is intercepted by the console itself instead of being
// dispatched to the evaluator.
const ClearCommand = "clear"

// DevConsole is the developer console facade. It owns the widget sets, line
// buffer, history and transition state, and turns host input events into
// state changes and a frame's worth of draw calls.
//
// All methods must be called from the logic loop's goroutine; the only
// asynchronous boundary is command evaluation, which is posted back onto
// that same loop.
type DevConsole struct {
	cfg Config
	svc Services

	lines *LineBuffer
	hist  *History
	trans transition

	input           string
	inputDirty      bool
	inputMesh       TextMesh
	lastInputChange int64 // real time ms of last edit, for caret blink
	inputEnabled    bool

	tabs       []string
	activeTab  string
	tabButtons []*widget
	buttons    []*widget

	// Last state fired by each cvar toggle, so rebuilding a tab's widgets
	// keeps them in sync with what was actually set.
	toggleStates map[string]bool

	// Armed when a press lands on the console body below all widgets.
	bodyPressed bool
	editSession EditSession

	titleMesh  TextMesh
	builtMesh  TextMesh
	promptMesh TextMesh
}

// New creates a console. The widget set is built immediately; the console
// stays invisible until the first ToggleState.
func New(cfg Config, svc Services) *DevConsole {
	svc.Loop.AssertCurrent()
	c := &DevConsole{
		cfg:          cfg,
		svc:          svc,
		lines:        NewLineBuffer(LineLimit, WrapUnits),
		hist:         NewHistory(HistoryLimit),
		tabs:         []string{commandTab, "Options"},
		activeTab:    commandTab,
		toggleStates: make(map[string]bool),
	}
	c.titleMesh = svc.Shaper.Shape(cfg.Title)
	c.builtMesh = svc.Shaper.Shape(cfg.Build)
	c.promptMesh = svc.Shaper.Shape(">")
	c.Refresh()
	return c
}

// Refresh rebuilds the tab buttons and the active tab's action buttons.
// Called on construction and whenever the active tab changes.
func (c *DevConsole) Refresh() {
	c.svc.Loop.AssertCurrent()
	c.buttons = nil
	c.tabButtons = nil
	c.refreshTabButtons()

	bs := c.baseScale()
	switch c.activeTab {
	case commandTab:
		c.buttons = append(c.buttons, &widget{
			kind:      kindButton,
			attach:    attachRight,
			x:         -33 * bs,
			y:         15.95 * bs,
			w:         32 * bs,
			h:         13 * bs,
			textScale: 0.75 * bs,
			label:     gotext.Get("Exec"),
			act:       action{kind: actionExec},
		})
	case "Options":
		toggles := []struct {
			label string
			cvar  string
		}{
			{gotext.Get("Echo"), "console.echo"},
			{gotext.Get("Color"), "console.echo_color"},
		}
		x := -95 * bs
		for _, tg := range toggles {
			c.buttons = append(c.buttons, &widget{
				kind:      kindToggle,
				attach:    attachCenter,
				x:         x,
				y:         45 * bs,
				w:         90 * bs,
				h:         26 * bs,
				textScale: 0.8 * bs,
				label:     tg.label,
				on:        c.toggleOn(tg.cvar),
				act: action{
					kind: actionCommand,
					cmd:  "set " + tg.cvar + " 1",
					cvar: tg.cvar,
					on:   true,
				},
				offAct: action{
					kind: actionCommand,
					cmd:  "set " + tg.cvar + " 0",
					cvar: tg.cvar,
					on:   false,
				},
			})
			x += 100 * bs
		}
	}
}

// tabLabel translates a tab name. gotext.Get takes a printf-style format,
// so tab names must not flow through it as the format argument.
func tabLabel(tab string) string {
	switch tab {
	case commandTab:
		return gotext.Get("Console")
	case "Options":
		return gotext.Get("Options")
	}
	return tab
}

// toggleOn returns the remembered state for a cvar toggle; untouched
// toggles start enabled, matching the client's cvar defaults.
func (c *DevConsole) toggleOn(cvar string) bool {
	if v, ok := c.toggleStates[cvar]; ok {
		return v
	}
	return true
}

func (c *DevConsole) refreshTabButtons() {
	bs := c.baseScale()
	bwidth := 90 * bs
	bheight := 26 * bs
	x := float64(len(c.tabs)) * bwidth * -0.5
	for _, tab := range c.tabs {
		c.tabButtons = append(c.tabButtons, &widget{
			kind:      kindTab,
			attach:    attachCenter,
			x:         x,
			y:         -bheight,
			w:         bwidth,
			h:         bheight,
			textScale: 0.8 * bs,
			label:     tabLabel(tab),
			selected:  c.activeTab == tab,
			act:       action{kind: actionSelectTab, tab: tab},
		})
		x += bwidth
	}
}

// State returns the current visual state.
func (c *DevConsole) State() State { return c.trans.state }

// Active reports whether the console should be capturing input.
func (c *DevConsole) Active() bool { return c.trans.state != StateInactive }

// ActiveTab returns the selected tab name.
func (c *DevConsole) ActiveTab() string { return c.activeTab }

// InputText returns the composed input buffer.
func (c *DevConsole) InputText() string { return c.input }

// Lines exposes the output buffer for tests and host inspection.
func (c *DevConsole) Lines() *LineBuffer { return c.lines }

// EnableInput marks command submission as allowed. Called once by the host
// when the evaluator is ready.
func (c *DevConsole) EnableInput() {
	c.svc.Loop.AssertCurrent()
	c.inputEnabled = true
}

// ToggleState cycles Inactive -> Mini -> Full -> Inactive with an audio cue.
func (c *DevConsole) ToggleState() {
	c.svc.Loop.AssertCurrent()
	c.trans.toggle(c.svc.Clock.DisplayTime())
	c.svc.Audio.PlayCue(CueToggle)
}

// Dismiss forces the console closed, silently. No-op when already inactive.
func (c *DevConsole) Dismiss() {
	c.svc.Loop.AssertCurrent()
	c.trans.dismiss(c.svc.Clock.DisplayTime())
}

// Print appends text to the output buffer, committing wrapped lines. Safe
// for partial lines; text accumulates until a wrap boundary.
func (c *DevConsole) Print(s string) {
	c.svc.Loop.AssertCurrent()
	c.lines.Append(s, c.svc.Shaper, c.svc.Clock.DisplayTime())
}

// SetInputText replaces the input buffer (string-editor write-back).
func (c *DevConsole) SetInputText(s string) {
	c.svc.Loop.AssertCurrent()
	c.input = s
	c.markInputDirty()
}

// EditFinished releases the active string-editor session.
func (c *DevConsole) EditFinished() {
	c.svc.Loop.AssertCurrent()
	c.editSession = nil
}

// Exec submits the input buffer: "clear" empties the output buffer locally,
// anything else is posted to the evaluator on the logic loop. The buffer is
// pushed onto history and cleared. Rejected with a warning until EnableInput
// has run.
func (c *DevConsole) Exec() {
	c.svc.Loop.AssertCurrent()
	if !c.inputEnabled {
		log.Printf("console: input is not allowed yet")
		return
	}
	c.hist.ResetCursor()
	if c.input == ClearCommand {
		c.lines.Clear()
	} else {
		c.submitCommand(c.input)
	}
	c.hist.Push(c.input)
	c.input = ""
	c.markInputDirty()
}

// submitCommand schedules cmd onto the serialized logic loop, so evaluator
// side effects are ordered with other queued work and never run reentrantly
// inside the UI event handler. Evaluator failures become output lines.
func (c *DevConsole) submitCommand(cmd string) {
	c.svc.Loop.PushCall(func() {
		ev := c.svc.Eval
		if ev.CanEval(cmd) {
			result, err := ev.Eval(cmd)
			if err != nil {
				c.Print("error: " + err.Error() + "\n")
				return
			}
			if result != "" {
				c.Print(result + "\n")
			}
			return
		}
		if err := ev.Exec(cmd); err != nil {
			c.Print("error: " + err.Error() + "\n")
		}
	})
}

// HandleKeyDown processes a key press. The toggle keys work from any state;
// everything else only while active. Returns whether the key was consumed.
func (c *DevConsole) HandleKeyDown(key Key) bool {
	c.svc.Loop.AssertCurrent()

	switch key {
	case ToggleKey1, ToggleKey2:
		if !c.cfg.DisableKeys {
			c.ToggleState()
		}
		return true
	}

	if c.trans.state == StateInactive {
		return false
	}

	switch key {
	case KeyEscape:
		c.Dismiss()
	case KeyBackspace, KeyDelete:
		// Trim one code point so multi-byte characters delete
		// atomically.
		if runes := []rune(c.input); len(runes) > 0 {
			c.input = string(runes[:len(runes)-1])
			c.markInputDirty()
		}
	case KeyUp:
		if s, ok := c.hist.Up(); ok {
			c.input = s
			c.markInputDirty()
		}
	case KeyDown:
		if s, ok := c.hist.Down(); ok {
			c.input = s
			c.markInputDirty()
		}
	case KeyReturn, KeyKPEnter:
		c.Exec()
	}
	return true
}

// HandleKeyUp absorbs releases of the toggle keys always, and every release
// while the console is active, so held keys don't leak into the game when
// the console closes over them.
func (c *DevConsole) HandleKeyUp(key Key) bool {
	c.svc.Loop.AssertCurrent()
	if key == ToggleKey1 || key == ToggleKey2 {
		return true
	}
	return c.trans.state != StateInactive
}

// HandleTextInput appends typed text to the input buffer while active. The
// backquote character is ignored since that key toggles the console.
func (c *DevConsole) HandleTextInput(s string) bool {
	c.svc.Loop.AssertCurrent()
	if c.trans.state == StateInactive {
		return false
	}
	if s == "`" {
		return false
	}
	c.input += s
	c.markInputDirty()
	return true
}

// HandleMouseDown routes a press to the widgets first (in bottom-local
// space); a press on the console body below all widgets arms a focus click.
// Returns whether the press was consumed.
func (c *DevConsole) HandleMouseDown(button int, x, y float64) bool {
	c.svc.Loop.AssertCurrent()
	if c.trans.state == StateInactive {
		return false
	}
	bottom := c.Bottom()
	vw := c.svc.Metrics.VirtualWidth()

	if button == MouseButtonPrimary {
		for _, w := range c.tabButtons {
			if w.onPointerDown(x, y-bottom, vw) {
				return true
			}
		}
		for _, w := range c.buttons {
			if w.onPointerDown(x, y-bottom, vw) {
				return true
			}
		}
	}

	if y < bottom {
		return false
	}
	if button == MouseButtonPrimary {
		c.bodyPressed = true
	}
	return true
}

// HandleMouseUp completes widget presses and, for an armed body click, asks
// the host for a string editor when it has no direct keyboard input.
func (c *DevConsole) HandleMouseUp(button int, x, y float64) {
	c.svc.Loop.AssertCurrent()
	bottom := c.Bottom()
	vw := c.svc.Metrics.VirtualWidth()

	if button == MouseButtonPrimary {
		for _, w := range c.tabButtons {
			w.onPointerUp(x, y-bottom, vw, c.dispatch)
		}
		for _, w := range c.buttons {
			w.onPointerUp(x, y-bottom, vw, c.dispatch)
		}
	}

	if button == MouseButtonPrimary && c.bodyPressed {
		c.bodyPressed = false
		if y > bottom {
			ed := c.svc.Editor
			if ed != nil && !ed.HasDirectKeyboardInput() && ed.HasStringEditor() {
				c.invokeStringEditor()
			}
		}
	}
}

// invokeStringEditor requests an external text editor for the input line.
// Idempotent: an active non-replaceable session blocks new invocations.
func (c *DevConsole) invokeStringEditor() {
	if c.editSession != nil && !c.editSession.Replaceable() {
		return
	}
	sess, err := c.svc.Editor.InvokeStringEditor(c)
	if err != nil {
		log.Printf("console: error invoking string editor: %v", err)
		return
	}
	// A session born replaceable failed to register as the active one.
	if sess.Replaceable() {
		return
	}
	c.editSession = sess
}

// Bottom returns the console's current animated bottom extent.
func (c *DevConsole) Bottom() float64 {
	return c.trans.bottom(
		c.svc.Clock.DisplayTime(),
		c.svc.Metrics.VirtualHeight(),
		c.baseScale(),
	)
}

// baseScale maps the host UI scale tier to the console's scale multiplier.
// An unknown tier means the build configuration is broken; abort.
func (c *DevConsole) baseScale() float64 {
	switch s := c.svc.Metrics.UIScale(); s {
	case ScaleLarge:
		return 1.5
	case ScaleMedium:
		return 1.75
	case ScaleSmall:
		return 2.0
	default:
		log.Fatalf("console: unhandled UI scale %d", s)
		return 1.0
	}
}

func (c *DevConsole) markInputDirty() {
	c.inputDirty = true
	c.lastInputChange = c.svc.Clock.RealTime()
}
