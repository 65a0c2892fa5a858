package console

import "testing"

const testVW = 1280.0

func newTestButton(act action) *widget {
	return &widget{
		kind:   kindButton,
		attach: attachLeft,
		x:      10, y: 10, w: 100, h: 20,
		textScale: 1,
		label:     "test",
		act:       act,
	}
}

func TestButtonClickFiresOnce(t *testing.T) {
	fired := 0
	w := newTestButton(action{kind: actionExec})
	dispatch := func(a action) { fired++ }

	if !w.onPointerDown(50, 20, testVW) {
		t.Fatal("down inside rect not consumed")
	}
	w.onPointerUp(50, 20, testVW, dispatch)
	if fired != 1 {
		t.Errorf("action fired %d times, want 1", fired)
	}

	// A second up without a down does nothing.
	w.onPointerUp(50, 20, testVW, dispatch)
	if fired != 1 {
		t.Errorf("unarmed up fired the action (count %d)", fired)
	}
}

func TestButtonUpOutsideFiresNothing(t *testing.T) {
	fired := 0
	w := newTestButton(action{kind: actionExec})

	if !w.onPointerDown(50, 20, testVW) {
		t.Fatal("down inside rect not consumed")
	}
	w.onPointerUp(500, 500, testVW, func(action) { fired++ })
	if fired != 0 {
		t.Errorf("up outside rect fired %d actions, want 0", fired)
	}
	if w.pressed {
		t.Error("widget still armed after up")
	}
}

func TestButtonDownOutsideNotConsumed(t *testing.T) {
	w := newTestButton(action{})
	if w.onPointerDown(500, 500, testVW) {
		t.Error("down outside rect was consumed")
	}
	if w.pressed {
		t.Error("widget armed by a miss")
	}
}

func TestHitTestAlignmentOffsets(t *testing.T) {
	cases := []struct {
		name   string
		attach attach
		x      float64
		px     float64
		hit    bool
	}{
		{"left", attachLeft, 10, 50, true},
		{"center", attachCenter, -50, testVW/2 - 10, true},
		{"center miss", attachCenter, -50, 60, false},
		{"right", attachRight, -110, testVW - 60, true},
		{"right miss", attachRight, -110, 60, false},
	}
	for _, tc := range cases {
		w := &widget{kind: kindButton, attach: tc.attach, x: tc.x, y: 10, w: 100, h: 20}
		if got := w.hitTest(tc.px, 20, testVW); got != tc.hit {
			t.Errorf("%s: hitTest = %v, want %v", tc.name, got, tc.hit)
		}
	}
}

func TestToggleFlipsAndFiresMatchingAction(t *testing.T) {
	var got []string
	w := &widget{
		kind:   kindToggle,
		attach: attachLeft,
		x:      0, y: 0, w: 50, h: 50,
		act:    action{kind: actionCommand, cmd: "on"},
		offAct: action{kind: actionCommand, cmd: "off"},
	}
	dispatch := func(a action) { got = append(got, a.cmd) }

	w.onPointerDown(10, 10, testVW)
	w.onPointerUp(10, 10, testVW, dispatch)
	if !w.on {
		t.Error("toggle not on after first click")
	}
	w.onPointerDown(10, 10, testVW)
	w.onPointerUp(10, 10, testVW, dispatch)
	if w.on {
		t.Error("toggle still on after second click")
	}
	if len(got) != 2 || got[0] != "on" || got[1] != "off" {
		t.Errorf("dispatched %v, want [on off]", got)
	}
}

func TestTabReselectDoesNotArm(t *testing.T) {
	w := &widget{
		kind:     kindTab,
		attach:   attachLeft,
		x:        0, y: 0, w: 50, h: 50,
		selected: true,
		act:      action{kind: actionSelectTab, tab: "Options"},
	}
	if w.onPointerDown(10, 10, testVW) {
		t.Error("selected tab consumed a press")
	}

	w.selected = false
	if !w.onPointerDown(10, 10, testVW) {
		t.Error("unselected tab did not arm")
	}
}

func TestWidgetPalettePriority(t *testing.T) {
	w := &widget{kind: kindToggle, on: true}
	_, bgOn := behaviors[kindToggle].palette(w)
	w.pressed = true
	_, bgPressed := behaviors[kindToggle].palette(w)
	if bgOn == bgPressed {
		t.Error("pressed state does not take priority over on state")
	}
}
