// Package ebiten hosts the developer console overlay in an Ebiten window
// and implements the console's collaborator services on top of Ebiten's
// drawing, text and audio APIs.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"starforge/pkg/engine/console"
	"starforge/pkg/engine/logic"
	"starforge/pkg/engine/scene"
)

// Asset names the renderer resolves from the client's asset library.
const (
	AssetMonoFont = "font/mono"
	AssetBlipCue  = "audio/blip"
)

var colorBackdrop = color.RGBA{26, 26, 46, 255}

// Config carries the window and scale settings for the renderer.
type Config struct {
	Width   int
	Height  int
	Title   string
	UIScale console.Scale
}

// Renderer is the Ebiten game-loop host. It owns the frame clock, the quad
// batcher and the shaped-text pipeline, and forwards input events to the
// attached console.
type Renderer struct {
	cfg  Config
	loop *logic.Loop

	shaper *Shaper
	cues   *CuePlayer
	quads  *quadBatcher

	console *console.DevConsole

	start       time.Time
	displayTime float64

	// Current frame target; only valid inside Draw.
	screen *ebiten.Image

	keyBuf  []ebiten.Key
	charBuf []rune
}

// New creates a renderer, resolving its font and audio assets from lib.
func New(cfg Config, loop *logic.Loop, sc *scene.Scene, lib *scene.Library) (*Renderer, error) {
	shaper, err := NewShaper(sc, lib)
	if err != nil {
		return nil, err
	}
	cues, err := NewCuePlayer(sc, lib)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:    cfg,
		loop:   loop,
		shaper: shaper,
		cues:   cues,
		quads:  newQuadBatcher(),
		start:  time.Now(),
	}, nil
}

// AttachConsole binds the console the renderer drives.
func (r *Renderer) AttachConsole(c *console.DevConsole) { r.console = c }

// Shaper returns the text shaping service.
func (r *Renderer) Shaper() *Shaper { return r.shaper }

// Cues returns the audio cue service.
func (r *Renderer) Cues() *CuePlayer { return r.cues }

// DisplayTime is the frame-pinned logical time in seconds.
func (r *Renderer) DisplayTime() float64 { return r.displayTime }

// RealTime is milliseconds since the renderer started.
func (r *Renderer) RealTime() int64 {
	return time.Since(r.start).Milliseconds()
}

// VirtualWidth returns the logical screen width.
func (r *Renderer) VirtualWidth() float64 { return float64(r.cfg.Width) }

// VirtualHeight returns the logical screen height.
func (r *Renderer) VirtualHeight() float64 { return float64(r.cfg.Height) }

// UIScale returns the configured scale tier.
func (r *Renderer) UIScale() console.Scale { return r.cfg.UIScale }

// PlayCue triggers a fire-and-forget sound cue.
func (r *Renderer) PlayCue(name string) { r.cues.Play(name) }

// Update advances the logic loop and translates input (Ebiten interface).
func (r *Renderer) Update() error {
	if !r.loop.Bound() {
		r.loop.Bind()
	}
	r.displayTime = time.Since(r.start).Seconds()
	r.loop.Tick()
	r.handleInput()
	return nil
}

// Draw renders the frame (Ebiten interface).
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)

	r.screen = screen
	r.console.Draw()
	r.quads.flush(r)
	r.screen = nil
}

// Layout fixes the logical screen size (Ebiten interface).
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.cfg.Width, r.cfg.Height
}

// Run opens the window and starts the game loop.
func (r *Renderer) Run() error {
	ebiten.SetWindowSize(r.cfg.Width, r.cfg.Height)
	ebiten.SetWindowTitle(r.cfg.Title)
	return ebiten.RunGame(r)
}

// flipY converts between the console's bottom-up virtual coordinates and
// Ebiten's top-down screen coordinates.
func (r *Renderer) flipY(y float64) float64 {
	return r.VirtualHeight() - y
}
