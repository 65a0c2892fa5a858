package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"starforge/pkg/engine/console"
)

// Keys the console has dedicated handling for. Everything else just
// presses as KeyOther while the console is open.
var keyMap = map[ebiten.Key]console.Key{
	ebiten.KeyBackquote:   console.KeyBackquote,
	ebiten.KeyF2:          console.KeyF2,
	ebiten.KeyEscape:      console.KeyEscape,
	ebiten.KeyBackspace:   console.KeyBackspace,
	ebiten.KeyDelete:      console.KeyDelete,
	ebiten.KeyEnter:       console.KeyReturn,
	ebiten.KeyNumpadEnter: console.KeyKPEnter,
	ebiten.KeyArrowUp:     console.KeyUp,
	ebiten.KeyArrowDown:   console.KeyDown,
}

func translateKey(k ebiten.Key) console.Key {
	if ck, ok := keyMap[k]; ok {
		return ck
	}
	return console.KeyOther
}

// handleInput translates the frame's key, character and mouse events and
// forwards them to the console.
func (r *Renderer) handleInput() {
	r.keyBuf = inpututil.AppendJustPressedKeys(r.keyBuf[:0])
	for _, k := range r.keyBuf {
		r.console.HandleKeyDown(translateKey(k))
	}
	r.keyBuf = inpututil.AppendJustReleasedKeys(r.keyBuf[:0])
	for _, k := range r.keyBuf {
		r.console.HandleKeyUp(translateKey(k))
	}

	r.charBuf = ebiten.AppendInputChars(r.charBuf[:0])
	if len(r.charBuf) > 0 {
		r.console.HandleTextInput(string(r.charBuf))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.console.HandleMouseDown(console.MouseButtonPrimary, float64(x), r.flipY(float64(y)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.console.HandleMouseUp(console.MouseButtonPrimary, float64(x), r.flipY(float64(y)))
	}
}

// HasDirectKeyboardInput reports that desktop builds type straight into the
// console.
func (r *Renderer) HasDirectKeyboardInput() bool { return true }

// HasStringEditor reports whether an on-screen text editor is available.
func (r *Renderer) HasStringEditor() bool { return false }

// InvokeStringEditor is unavailable on desktop builds.
func (r *Renderer) InvokeStringEditor(target console.EditTarget) (console.EditSession, error) {
	return nil, errors.New("no string editor on this platform")
}
