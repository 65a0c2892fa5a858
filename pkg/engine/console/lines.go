package console

import "strings"

// Output line limits. The console keeps at most LineLimit committed lines
// and wraps the in-progress line at WrapUnits text units.
const (
	LineLimit = 80
	WrapUnits = 1950.0
)

// Line is one committed line of console output. Its shaped mesh is built on
// first draw and cached; committed lines never change.
type Line struct {
	Text         string
	CreationTime float64

	mesh TextMesh
}

// Mesh returns the line's shaped text, building it on first use.
func (l *Line) Mesh(sh TextShaper) TextMesh {
	if l.mesh == nil {
		l.mesh = sh.Shape(l.Text)
	}
	return l.mesh
}

// LineBuffer is the console's output model: a capacity-capped FIFO of
// committed lines plus one mutable in-progress line that accumulates partial
// output until a wrap boundary.
type LineBuffer struct {
	cap       int
	wrapWidth float64

	lines []*Line // oldest first

	inProgress      string
	inProgressMesh  TextMesh
	inProgressDirty bool
}

// NewLineBuffer returns a buffer capped at capacity lines, wrapping at
// wrapWidth text units.
func NewLineBuffer(capacity int, wrapWidth float64) *LineBuffer {
	return &LineBuffer{cap: capacity, wrapWidth: wrapWidth}
}

// Append normalizes s to valid UTF-8, concatenates it onto the in-progress
// line, and re-wraps. Every segment but the last is committed (evicting the
// oldest past the cap); the last segment becomes the new in-progress line.
func (b *LineBuffer) Append(s string, sh TextShaper, now float64) {
	s = strings.ToValidUTF8(s, "")
	b.inProgress += s

	segs := sh.Wrap(b.inProgress, b.wrapWidth)
	for _, seg := range segs[:len(segs)-1] {
		b.lines = append(b.lines, &Line{Text: seg, CreationTime: now})
		if len(b.lines) > b.cap {
			b.lines = b.lines[1:]
		}
	}
	b.inProgress = segs[len(segs)-1]
	b.inProgressDirty = true
}

// Clear empties both the committed lines and the in-progress line.
func (b *LineBuffer) Clear() {
	b.lines = nil
	b.inProgress = ""
	b.inProgressMesh = nil
	b.inProgressDirty = false
}

// Lines returns the committed lines, oldest first.
func (b *LineBuffer) Lines() []*Line { return b.lines }

// InProgress returns the trailing not-yet-wrapped text.
func (b *LineBuffer) InProgress() string { return b.inProgress }

// InProgressMesh returns the shaped in-progress line, rebuilding it if the
// text changed since the last call.
func (b *LineBuffer) InProgressMesh(sh TextShaper) TextMesh {
	if b.inProgressMesh == nil || b.inProgressDirty {
		b.inProgressMesh = sh.Shape(b.inProgress)
		b.inProgressDirty = false
	}
	return b.inProgressMesh
}
