package control

var _ Control = (*TouchArea)(nil)

// TouchArea turns contact motion into relative-motion callbacks, typically
// backing a virtual trackpad. A release within TapThreshold of the contact
// down is reported as a tap instead.
type TouchArea struct {
	base

	// TapSensitive is a persisted layout property; it travels with the
	// control through save/load but does not gate classification.
	TapSensitive int

	lastX, lastY int
	downTime     int64

	onTouch func(dx, dy int)
	onTap   func()
}

// NewTouchArea creates a touch-area widget emitting on cb.OnTouch and cb.OnTap.
func NewTouchArea(id int, r Rect, tapSensitive int, cb Callbacks) *TouchArea {
	return &TouchArea{
		base:         newBase(id, KindTouchArea, r),
		TapSensitive: tapSensitive,
		onTouch:      cb.OnTouch,
		onTap:        cb.OnTap,
	}
}

func (t *TouchArea) press(ev TouchEvent) {
	t.downTime = ev.Timestamp
	t.lastX, t.lastY = ev.X, ev.Y
}

func (t *TouchArea) drag(ev TouchEvent) {
	if ev.Type == Release && ev.Timestamp-t.downTime < TapThreshold {
		if t.onTap != nil {
			t.onTap()
		}
		return
	}
	if ev.Type == Touch {
		// A fresh down from the owning contact re-arms the tap timer.
		t.downTime = ev.Timestamp
	}
	t.emitDelta(ev.X, ev.Y)
}

func (t *TouchArea) lift(ev TouchEvent) {
	// Flush the remaining motion before the synthesized release.
	t.emitDelta(ev.X, ev.Y)
}

func (t *TouchArea) emitDelta(x, y int) {
	dx := x - t.lastX
	dy := y - t.lastY
	if dx == 0 && dy == 0 {
		return
	}
	t.lastX, t.lastY = x, y
	if t.onTouch != nil {
		t.onTouch(dx, dy)
	}
}
