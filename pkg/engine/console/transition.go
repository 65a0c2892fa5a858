package console

// State is the console's visual state.
type State int

const (
	StateInactive State = iota
	StateMini
	StateFull
)

// Transition timing and geometry.
const (
	// TransitionSeconds is how long the slide animation runs.
	TransitionSeconds = 0.1
	// fullCoverage is the fraction of the screen the Full state covers.
	fullCoverage = 0.9
	// miniStripUnits is the Mini strip height before UI scaling.
	miniStripUnits = 90.0
)

// transition tracks the open/closed/mini state machine and interpolates the
// console's bottom extent while a state change is in flight.
type transition struct {
	state State
	prev  State
	// start is the display time the last transition began; zero means no
	// transition has ever run (the console draws nothing).
	start float64
}

// toggle cycles Inactive -> Mini -> Full -> Inactive and restarts the
// transition clock.
func (t *transition) toggle(now float64) {
	t.prev = t.state
	switch t.state {
	case StateInactive:
		t.state = StateMini
	case StateMini:
		t.state = StateFull
	case StateFull:
		t.state = StateInactive
	}
	t.start = now
}

// dismiss forces the console closed. Returns false (no-op) when already
// inactive.
func (t *transition) dismiss(now float64) bool {
	if t.state == StateInactive {
		return false
	}
	t.prev = t.state
	t.state = StateInactive
	t.start = now
	return true
}

// started reports whether any transition has ever begun.
func (t *transition) started() bool { return t.start > 0 }

// hidden reports whether the console has fully transitioned out.
func (t *transition) hidden(now float64) bool {
	return t.state == StateInactive && now-t.start >= TransitionSeconds
}

// restingExtent is the bottom coordinate a state settles at: Inactive parks
// the console entirely above the visible area.
func restingExtent(s State, vh, baseScale float64) float64 {
	switch s {
	case StateMini:
		return vh - miniStripUnits*baseScale
	case StateFull:
		return vh - vh*fullCoverage
	}
	return vh
}

// bottom returns the current animated bottom extent: the target resting
// extent once the transition has elapsed, otherwise a linear blend from the
// previous state's extent.
func (t *transition) bottom(now, vh, baseScale float64) float64 {
	to := restingExtent(t.state, vh, baseScale)
	elapsed := now - t.start
	if elapsed >= TransitionSeconds {
		return to
	}
	from := restingExtent(t.prev, vh, baseScale)
	ratio := elapsed / TransitionSeconds
	return to*ratio + from*(1-ratio)
}
