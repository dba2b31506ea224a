package control

import "github.com/chewxy/math32"

var _ Control = (*DPad)(nil)

// DPad reports the angle from the control center to the contact point,
// in degrees: 0 east, 90 north, 180/-180 west, -90 south. It emits on
// acquisition and on every in-bounds event so the host can track direction
// changes, with pressed=false on release or out-of-bounds drift.
type DPad struct {
	base

	onDPad func(angle int, pressed bool)
}

// NewDPad creates a d-pad widget emitting on cb.OnDPad.
func NewDPad(id int, r Rect, cb Callbacks) *DPad {
	return &DPad{base: newBase(id, KindDPad, r), onDPad: cb.OnDPad}
}

func (d *DPad) press(ev TouchEvent) { d.emit(ev, true) }

func (d *DPad) drag(ev TouchEvent) { d.emit(ev, ev.Type != Release) }

func (d *DPad) lift(ev TouchEvent) { d.emit(ev, false) }

func (d *DPad) emit(ev TouchEvent, pressed bool) {
	if d.onDPad != nil {
		d.onDPad(d.angle(ev.X, ev.Y), pressed)
	}
}

// angle measures from the control center. Screen y grows downward, so y is
// negated to keep 90 pointing north.
func (d *DPad) angle(x, y int) int {
	cx := float32(d.rect.X) + float32(d.rect.Width)/2
	cy := float32(d.rect.Y) + float32(d.rect.Height)/2
	return int(math32.Atan2(cy-float32(y), float32(x)-cx) * 180 / math32.Pi)
}
