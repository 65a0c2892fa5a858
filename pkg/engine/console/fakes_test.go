package console

import "strings"

// Test doubles for the console's collaborator services. The fake shaper
// measures every rune as charUnits wide so layout math is easy to reason
// about in tests.

const charUnits = 10.0

type fakeMesh struct {
	text string
}

func (m fakeMesh) Width() float64  { return float64(len([]rune(m.text))) * charUnits }
func (m fakeMesh) Height() float64 { return 30 }

type fakeShaper struct{}

func (fakeShaper) Shape(s string) TextMesh { return fakeMesh{text: s} }

func (fakeShaper) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * charUnits
}

func (fakeShaper) Wrap(s string, maxWidth float64) []string {
	maxRunes := int(maxWidth / charUnits)
	if maxRunes < 1 {
		maxRunes = 1
	}
	var out []string
	for i, part := range strings.Split(s, "\n") {
		_ = i
		runes := []rune(part)
		for len(runes) > maxRunes {
			out = append(out, string(runes[:maxRunes]))
			runes = runes[maxRunes:]
		}
		out = append(out, string(runes))
	}
	return out
}

type drawCall struct {
	kind string // "rect", "soft", "text"
	rect Rect
	text string
	x, y float64
}

type fakeRenderer struct {
	calls []drawCall
}

func (r *fakeRenderer) FillRect(rc Rect, c Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", rect: rc})
}

func (r *fakeRenderer) FillSoftRect(rc Rect, c Color, clip Rect) {
	r.calls = append(r.calls, drawCall{kind: "soft", rect: rc})
}

func (r *fakeRenderer) DrawText(m TextMesh, x, y, scale float64, c Color) {
	r.calls = append(r.calls, drawCall{kind: "text", text: m.(fakeMesh).text, x: x, y: y})
}

type fakeAudio struct {
	cues []string
}

func (a *fakeAudio) PlayCue(name string) { a.cues = append(a.cues, name) }

type fakeClock struct {
	display float64
	real    int64
}

func (c *fakeClock) DisplayTime() float64 { return c.display }
func (c *fakeClock) RealTime() int64      { return c.real }

type fakeMetrics struct {
	w, h  float64
	scale Scale
}

func (m *fakeMetrics) VirtualWidth() float64  { return m.w }
func (m *fakeMetrics) VirtualHeight() float64 { return m.h }
func (m *fakeMetrics) UIScale() Scale         { return m.scale }

type fakeEval struct {
	evalable map[string]bool
	evals    []string
	execs    []string
	result   string
	err      error
}

func (e *fakeEval) CanEval(cmd string) bool { return e.evalable[cmd] }

func (e *fakeEval) Eval(cmd string) (string, error) {
	e.evals = append(e.evals, cmd)
	return e.result, e.err
}

func (e *fakeEval) Exec(cmd string) error {
	e.execs = append(e.execs, cmd)
	return e.err
}

// fakeLoop queues pushed calls until run, mirroring the real loop's
// drain-per-tick behavior.
type fakeLoop struct {
	calls []func()
}

func (l *fakeLoop) PushCall(fn func()) { l.calls = append(l.calls, fn) }
func (l *fakeLoop) AssertCurrent()     {}

func (l *fakeLoop) run() {
	for len(l.calls) > 0 {
		fn := l.calls[0]
		l.calls = l.calls[1:]
		fn()
	}
}

type fakeSession struct {
	replaceable bool
}

func (s *fakeSession) Replaceable() bool { return s.replaceable }

type fakeEditor struct {
	directKeyboard bool
	hasEditor      bool
	invoked        int
	session        *fakeSession
	err            error
}

func (e *fakeEditor) HasDirectKeyboardInput() bool { return e.directKeyboard }
func (e *fakeEditor) HasStringEditor() bool        { return e.hasEditor }

func (e *fakeEditor) InvokeStringEditor(target EditTarget) (EditSession, error) {
	e.invoked++
	if e.err != nil {
		return nil, e.err
	}
	return e.session, nil
}

type fixture struct {
	console *DevConsole
	render  *fakeRenderer
	audio   *fakeAudio
	clock   *fakeClock
	eval    *fakeEval
	loop    *fakeLoop
	editor  *fakeEditor
}

func newFixture() *fixture {
	f := &fixture{
		render: &fakeRenderer{},
		audio:  &fakeAudio{},
		clock:  &fakeClock{display: 1.0, real: 1000},
		eval:   &fakeEval{evalable: map[string]bool{}},
		loop:   &fakeLoop{},
		editor: &fakeEditor{directKeyboard: true},
	}
	f.console = New(
		Config{Title: "Starforge 1.0", Build: "Built: today"},
		Services{
			Shaper:  fakeShaper{},
			Render:  f.render,
			Audio:   f.audio,
			Clock:   f.clock,
			Metrics: &fakeMetrics{w: 1280, h: 800, scale: ScaleMedium},
			Eval:    f.eval,
			Loop:    f.loop,
			Editor:  f.editor,
		},
	)
	return f
}
