package commands

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"starforge/pkg/engine/terminal"
)

// Cvars controlling the terminal echo sink.
const (
	CvarEcho      = "console.echo"
	CvarEchoColor = "console.echo_color"
)

var echoStyle = color.Style{color.FgCyan}

// Echo mirrors console output onto the controlling terminal, wrapped to the
// terminal width. It accumulates partial prints and emits whole lines.
type Echo struct {
	out     io.Writer
	width   func() int
	enabled bool
	colored bool
	pending string
}

// NewEcho returns an echo sink writing to stderr. Styling defaults to on
// only when stderr is a terminal.
func NewEcho() *Echo {
	return &Echo{
		out:     os.Stderr,
		width:   terminal.GetWidth,
		enabled: true,
		colored: terminal.IsInteractive(),
	}
}

// Bind wires the sink's enable/color switches to their cvars.
func (e *Echo) Bind(cvars *Registry) {
	cvars.Watch(CvarEcho, func(v string) { e.enabled = v != "0" })
	cvars.Watch(CvarEchoColor, func(v string) { e.colored = v != "0" })
}

// SetEnabled turns the sink on or off.
func (e *Echo) SetEnabled(on bool) { e.enabled = on }

// Print accumulates s and writes any completed lines.
func (e *Echo) Print(s string) {
	if !e.enabled {
		return
	}
	e.pending += s
	for {
		idx := strings.IndexByte(e.pending, '\n')
		if idx < 0 {
			return
		}
		line := e.pending[:idx]
		e.pending = e.pending[idx+1:]
		e.emit(line)
	}
}

func (e *Echo) emit(line string) {
	for _, seg := range wrapLine(line, e.width()) {
		if e.colored {
			seg = echoStyle.Sprint(seg)
		}
		io.WriteString(e.out, seg+"\n")
	}
}

// wrapLine splits line into rune segments no wider than width columns.
func wrapLine(line string, width int) []string {
	if width < 1 {
		width = terminal.DefaultWidth
	}
	runes := []rune(line)
	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	return append(out, string(runes))
}
