// Package control implements the virtual input widgets of the overlay:
// bounds hit-testing, per-contact ownership and the gesture classification
// that turns raw touch events into semantic input callbacks.
package control

// Gesture classification thresholds. These gate tap-vs-drag-vs-hold
// disambiguation and are part of the overlay's feel; changing them changes
// behavior for every existing layout.
const (
	// TapThreshold is the maximum time in nanoseconds between contact down
	// and release for the gesture to count as a tap.
	TapThreshold = 150_000_000

	// HoldThreshold is the minimum time in nanoseconds a stationary contact
	// must persist before a touch-screen widget reports a hold.
	HoldThreshold = 2 * TapThreshold

	// JitterThreshold is the Manhattan distance a contact may wander while
	// still counting as stationary.
	JitterThreshold = 10
)

// EventType is the kind of a raw contact event.
type EventType int

const (
	Touch EventType = iota
	Move
	Release
)

// ContactID identifies one continuous physical touch from initial contact
// to lift-off. IDs are assigned by the event source.
type ContactID int

// NoContact marks a control as unowned.
const NoContact ContactID = -1

// TouchEvent is a single raw contact event as delivered by an event source.
type TouchEvent struct {
	Type      EventType
	Contact   ContactID
	X, Y      int
	Timestamp int64 // nanoseconds, carried by the event source
}

// Callbacks holds the semantic input handlers invoked by the widgets.
// Every slot is optional; a nil handler drops the corresponding events.
type Callbacks struct {
	OnKey         func(symbol, modifier, scancode, unicode int, pressed bool)
	OnDPad        func(angle int, pressed bool)
	OnTouch       func(dx, dy int)
	OnMouseButton func(button, mask int, pressed bool)
	OnTap         func()
	OnTouchScreen func(x, y int, tap, hold bool)
}

// Kind tags the five widget variants.
type Kind int

const (
	KindKey Kind = iota
	KindDPad
	KindTouchArea
	KindMouseButton
	KindTouchScreen
)

// String returns the persisted name of the kind.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindDPad:
		return "dpad"
	case KindTouchArea:
		return "toucharea"
	case KindMouseButton:
		return "mousebutton"
	case KindTouchScreen:
		return "touchscreen"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in overlay-surface coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle. Both the
// right and bottom edges are inclusive, so the boundary pixel of two
// abutting controls belongs to both; existing layouts depend on this.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Control is a positioned, typed, stateful input widget. The five concrete
// implementations live in this package; the unexported methods keep the set
// closed so the dispatch protocol can rely on shared ownership state.
type Control interface {
	ID() int
	Kind() Kind
	Rect() Rect
	SetRect(Rect)
	Owner() ContactID
	Label() *Label
	SetLabel(*Label)

	// Move shifts the control by (dx, dy), clamped so it stays fully
	// inside a maxX by maxY surface, and carries its label along.
	Move(dx, dy, maxX, maxY int)

	// Gesture hooks driven by Dispatch.
	press(ev TouchEvent)
	drag(ev TouchEvent)
	lift(ev TouchEvent)
	shared() *base
}

// base carries the state common to all widget kinds.
type base struct {
	id    int
	kind  Kind
	rect  Rect
	owner ContactID
	label *Label
}

func newBase(id int, kind Kind, r Rect) base {
	return base{id: id, kind: kind, rect: r, owner: NoContact}
}

func (b *base) ID() int           { return b.id }
func (b *base) Kind() Kind        { return b.kind }
func (b *base) Rect() Rect        { return b.rect }
func (b *base) SetRect(r Rect)    { b.rect = r }
func (b *base) Owner() ContactID  { return b.owner }
func (b *base) Label() *Label     { return b.label }
func (b *base) SetLabel(l *Label) { b.label = l }
func (b *base) shared() *base     { return b }

func (b *base) Move(dx, dy, maxX, maxY int) {
	if dx == 0 && dy == 0 {
		return
	}
	r := b.rect
	r.X += dx
	r.Y += dy
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.Width > maxX {
		r.X = maxX - r.Width
	}
	if r.Y+r.Height > maxY {
		r.Y = maxY - r.Height
	}
	b.rect = r
	if b.label != nil {
		b.label.Move(r.X, r.Y)
	}
}

// Dispatch runs the ownership protocol for one raw event against one
// control and reports whether the control is (still) consuming the contact.
//
// A control is owned by at most one contact for the contact's lifetime.
// A contact that drifts out of bounds while owned gets a synthesized
// release; Dispatch then returns false so the caller evicts the ownership
// entry and the contact is free to be claimed again on a later touch.
func Dispatch(c Control, ev TouchEvent) bool {
	b := c.shared()
	if b.owner != NoContact && b.owner != ev.Contact {
		// Another contact already drives this control.
		return false
	}

	if b.owner == NoContact {
		// An orphaned release is never a fresh acquisition.
		if ev.Type == Release {
			return false
		}
		if !b.rect.Contains(ev.X, ev.Y) {
			return false
		}
		b.owner = ev.Contact
		c.press(ev)
		return true
	}

	if !b.rect.Contains(ev.X, ev.Y) {
		// Act as if the contact was released at the drifted position.
		c.lift(ev)
		b.owner = NoContact
		return false
	}

	c.drag(ev)
	if ev.Type == Release {
		b.owner = NoContact
		return false
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
