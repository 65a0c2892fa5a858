// Package console implements the in-game developer console overlay: a small
// self-contained widget set, output line buffer, open/close transition
// animation, and a command submission pipeline into a host-provided
// evaluator. It is backend-independent; rendering, text shaping, audio and
// input arrive through the Services interfaces.
//
// Coordinates are virtual screen units with the origin at the bottom-left
// and Y increasing upward. Backends with top-down coordinates flip on draw.
package console

// Color is a straight-alpha RGBA color in the 0..1 range.
type Color struct {
	R, G, B, A float32
}

// Rect is an axis-aligned rectangle (bottom-left origin).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle, edges
// inclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// TextMesh is a shaped, ready-to-draw text layout. Meshes are immutable;
// the console caches one per line of text and rebuilds only when the text
// changes.
type TextMesh interface {
	// Width and Height are in text units (units match virtual screen
	// units at draw scale 1.0).
	Width() float64
	Height() float64
}

// TextShaper shapes and measures text.
type TextShaper interface {
	Shape(s string) TextMesh
	// Wrap splits s into segments at newlines and wherever a segment
	// would exceed maxWidth text units. The result always has at least
	// one element ("" wraps to [""]).
	Wrap(s string, maxWidth float64) []string
	StringWidth(s string) float64
}

// Renderer accepts the console's draw calls for one frame. All draws are
// alpha-blended and submitted in call order.
type Renderer interface {
	FillRect(r Rect, c Color)
	// FillSoftRect draws a soft-edged (vertically feathered) rect,
	// scissored to clip.
	FillSoftRect(r Rect, c Color, clip Rect)
	// DrawText draws m with its bottom-left corner at (x, y), scaled by
	// scale.
	DrawText(m TextMesh, x, y, scale float64, c Color)
}

// AudioPlayer triggers fire-and-forget sound cues.
type AudioPlayer interface {
	PlayCue(name string)
}

// CueToggle is the cue played when the console changes state.
const CueToggle = "blip"

// Clock provides the two timelines the console animates against.
type Clock interface {
	// DisplayTime is the frame-pinned logical time in seconds; it drives
	// transitions and line timestamps.
	DisplayTime() float64
	// RealTime is wall time in milliseconds; it drives caret blinking.
	RealTime() int64
}

// Scale is the host UI scale tier.
type Scale int

const (
	ScaleLarge Scale = iota
	ScaleMedium
	ScaleSmall
)

// Metrics exposes the virtual screen dimensions and UI scale tier.
type Metrics interface {
	VirtualWidth() float64
	VirtualHeight() float64
	UIScale() Scale
}

// Evaluator runs submitted command strings. Eval is used for commands that
// produce a result representation; Exec for statements.
type Evaluator interface {
	CanEval(cmd string) bool
	Eval(cmd string) (string, error)
	Exec(cmd string) error
}

// Poster is the serialized logic-loop surface the console posts command
// evaluation onto. *logic.Loop satisfies it.
type Poster interface {
	PushCall(fn func())
	AssertCurrent()
}

// EditTarget is the console-side surface an external string editor writes
// back through.
type EditTarget interface {
	SetInputText(s string)
	EditFinished()
}

// EditSession is a live external text-editor session.
type EditSession interface {
	// Replaceable reports whether a new invocation may displace this
	// session.
	Replaceable() bool
}

// EditorHost abstracts the platform's on-screen text editor, for hosts
// without direct keyboard input.
type EditorHost interface {
	HasDirectKeyboardInput() bool
	HasStringEditor() bool
	InvokeStringEditor(target EditTarget) (EditSession, error)
}

// Services bundles every collaborator the console consumes. All fields are
// required except Editor, which may be nil when the host always has a
// keyboard.
type Services struct {
	Shaper  TextShaper
	Render  Renderer
	Audio   AudioPlayer
	Clock   Clock
	Metrics Metrics
	Eval    Evaluator
	Loop    Poster
	Editor  EditorHost
}

// Key identifies the keys the console reacts to. Hosts translate their
// native key codes before calling in.
type Key int

const (
	KeyNone Key = iota
	KeyBackquote
	KeyF2
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyReturn
	KeyKPEnter
	KeyUp
	KeyDown
	KeyOther
)

// The two key codes that toggle the console from any state.
const (
	ToggleKey1 = KeyBackquote
	ToggleKey2 = KeyF2
)

// MouseButtonPrimary is the button code hosts pass to HandleMouseDown and
// HandleMouseUp for the primary (left) pointer button. Other buttons only
// have their presses absorbed while the console is open.
const MouseButtonPrimary = 1

// Config carries build-time settings for the console.
type Config struct {
	// Title is drawn at the console's lower edge (client name/version).
	Title string
	// Build is the build stamp drawn opposite the title.
	Build string
	// DisableKeys disables the toggle keys entirely (demo/kiosk builds).
	DisableKeys bool
}
