package control

var _ Control = (*MouseButton)(nil)

// MouseButton is a virtual mouse button: button-down on acquisition,
// button-up on release or out-of-bounds drift.
type MouseButton struct {
	base

	Button int
	Mask   int

	onMouseButton func(button, mask int, pressed bool)
}

// NewMouseButton creates a mouse-button widget emitting on cb.OnMouseButton.
func NewMouseButton(id int, r Rect, button, mask int, cb Callbacks) *MouseButton {
	return &MouseButton{
		base:          newBase(id, KindMouseButton, r),
		Button:        button,
		Mask:          mask,
		onMouseButton: cb.OnMouseButton,
	}
}

func (m *MouseButton) press(TouchEvent) { m.emit(true) }

func (m *MouseButton) drag(ev TouchEvent) {
	if ev.Type == Release {
		m.emit(false)
	}
}

func (m *MouseButton) lift(TouchEvent) { m.emit(false) }

func (m *MouseButton) emit(pressed bool) {
	if m.onMouseButton != nil {
		m.onMouseButton(m.Button, m.Mask, pressed)
	}
}
