package ebiten

import (
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"

	"starforge/pkg/engine/console"
)

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		in   eb.Key
		want console.Key
	}{
		{eb.KeyBackquote, console.KeyBackquote},
		{eb.KeyF2, console.KeyF2},
		{eb.KeyEscape, console.KeyEscape},
		{eb.KeyEnter, console.KeyReturn},
		{eb.KeyNumpadEnter, console.KeyKPEnter},
		{eb.KeyA, console.KeyOther},
		{eb.KeySpace, console.KeyOther},
	}
	for _, c := range cases {
		if got := translateKey(c.in); got != c.want {
			t.Errorf("translateKey(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
