package control

var _ Control = (*TouchScreen)(nil)

// TouchScreen proxies a full touch-to-mouse zone. Each ownership is
// classified into exactly one of tap, move or hold:
//
//   - tap:  released within TapThreshold having moved less than
//     JitterThreshold (Manhattan) from the start point;
//   - move: a move event once the contact has left the jitter radius;
//     move-mode is sticky and keeps emitting for every move;
//   - hold: a move event while still inside the jitter radius after
//     HoldThreshold; emitted once, then classification stops until release.
type TouchScreen struct {
	base

	startX, startY int
	startTime      int64
	inMove, inHold bool

	onTouchScreen func(x, y int, tap, hold bool)
}

// NewTouchScreen creates a touch-screen widget emitting on cb.OnTouchScreen.
func NewTouchScreen(id int, r Rect, cb Callbacks) *TouchScreen {
	return &TouchScreen{base: newBase(id, KindTouchScreen, r), onTouchScreen: cb.OnTouchScreen}
}

func (t *TouchScreen) press(ev TouchEvent) {
	t.startX, t.startY = ev.X, ev.Y
	t.startTime = ev.Timestamp
	t.inMove = false
	t.inHold = false
}

func (t *TouchScreen) drag(ev TouchEvent) {
	if !t.inHold {
		distance := abs(ev.X-t.startX) + abs(ev.Y-t.startY)
		elapsed := ev.Timestamp - t.startTime
		switch {
		case ev.Type == Release && elapsed < TapThreshold && distance < JitterThreshold:
			t.emit(ev, true, false)
		case ev.Type == Move && (t.inMove || distance > JitterThreshold):
			t.inMove = true
			t.emit(ev, false, false)
		case ev.Type == Move && !t.inMove && elapsed > HoldThreshold:
			t.inHold = true
			t.emit(ev, false, true)
		}
	}
	if ev.Type == Release {
		t.inMove = false
		t.inHold = false
	}
}

func (t *TouchScreen) lift(TouchEvent) {
	t.inMove = false
	t.inHold = false
}

func (t *TouchScreen) emit(ev TouchEvent, tap, hold bool) {
	if t.onTouchScreen != nil {
		t.onTouchScreen(ev.X, ev.Y, tap, hold)
	}
}
