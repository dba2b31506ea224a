package control

import "testing"

func TestDPadAngles(t *testing.T) {
	// 200x200 pad at the origin, center (100, 100). Angles follow math
	// convention with screen y flipped: 0 east, 90 north, 180 west, -90 south.
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"east", 200, 100, 0},
		{"north", 100, 0, 90},
		{"west", 0, 100, 180},
		{"south", 100, 200, -90},
		{"northeast", 200, 0, 45},
		{"northwest", 0, 0, 135},
		{"southwest", 0, 200, -135},
		{"southeast", 200, 200, -45},
		{"center", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got int
			cb := Callbacks{OnDPad: func(angle int, pressed bool) { got = angle }}
			d := NewDPad(1, Rect{0, 0, 200, 200}, cb)

			Dispatch(d, TouchEvent{Type: Touch, Contact: 0, X: tt.x, Y: tt.y})

			// Truncation of the float angle may land one degree short.
			if diff := got - tt.want; diff < -1 || diff > 1 {
				t.Errorf("angle at (%d, %d) = %d; want %d±1", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDPadEmitsWhilePressed(t *testing.T) {
	type emission struct {
		angle   int
		pressed bool
	}
	var got []emission
	cb := Callbacks{OnDPad: func(angle int, pressed bool) {
		got = append(got, emission{angle, pressed})
	}}
	d := NewDPad(1, Rect{0, 0, 200, 200}, cb)

	Dispatch(d, TouchEvent{Type: Touch, Contact: 0, X: 200, Y: 100})
	Dispatch(d, TouchEvent{Type: Move, Contact: 0, X: 100, Y: 0})
	Dispatch(d, TouchEvent{Type: Release, Contact: 0, X: 100, Y: 0})

	if len(got) != 3 {
		t.Fatalf("got %d emissions; want 3 (down, move, up)", len(got))
	}
	if !got[0].pressed || !got[1].pressed {
		t.Error("down and move emissions should report pressed")
	}
	if got[2].pressed {
		t.Error("release emission should report not pressed")
	}
}

func TestDPadOutOfBoundsReportsRelease(t *testing.T) {
	var pressedStates []bool
	cb := Callbacks{OnDPad: func(angle int, pressed bool) {
		pressedStates = append(pressedStates, pressed)
	}}
	d := NewDPad(1, Rect{0, 0, 200, 200}, cb)

	Dispatch(d, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100})
	Dispatch(d, TouchEvent{Type: Move, Contact: 0, X: 500, Y: 100})

	if len(pressedStates) != 2 || pressedStates[1] {
		t.Fatalf("pressed states = %v; want [true false]", pressedStates)
	}
	if d.Owner() != NoContact {
		t.Errorf("owner = %d after drift; want NoContact", d.Owner())
	}
}
