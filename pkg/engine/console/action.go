package console

import "log"

// actionKind enumerates everything a console widget can ask the facade to
// do. Widgets carry plain action values instead of closures so their
// lifetime never outlives captured state.
type actionKind int

const (
	actionNone actionKind = iota
	// actionExec submits the current input buffer.
	actionExec
	// actionSelectTab switches the active tab (payload: tab).
	actionSelectTab
	// actionCommand feeds a command string straight into the submission
	// pipeline (payload: cmd; cvar/on when fired by a cvar toggle).
	actionCommand
)

// action is an actionKind plus its payload.
type action struct {
	kind actionKind
	tab  string
	cmd  string

	// Set on toggle actions so the facade can remember the widget state
	// across tab rebuilds.
	cvar string
	on   bool
}

// dispatch routes a widget action through the facade. Command actions honor
// the same enable-input gate as Exec.
func (c *DevConsole) dispatch(a action) {
	switch a.kind {
	case actionNone:
	case actionExec:
		c.Exec()
	case actionSelectTab:
		c.activeTab = a.tab
		c.Refresh()
	case actionCommand:
		if !c.inputEnabled {
			log.Printf("console: input is not allowed yet")
			return
		}
		if a.cvar != "" {
			c.toggleStates[a.cvar] = a.on
		}
		c.submitCommand(a.cmd)
	}
}
