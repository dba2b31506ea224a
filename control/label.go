package control

import "github.com/okvist/touchdeck/skin"

// Label is an optional visual decoration attached to a control. It is pure
// presentation: it forwards move and show requests to its backing surface
// and carries no interaction state.
type Label struct {
	OffsetX, OffsetY int
	Width, Height    int
	Alpha            int
	Image            string // artwork path; empty means no image was given

	surface *skin.Surface
}

// NewLabel creates a label backed by the given surface. The surface may be
// nil when the label has no presentation (e.g. in headless use).
func NewLabel(offsetX, offsetY, width, height, alpha int, image string, surface *skin.Surface) *Label {
	return &Label{
		OffsetX: offsetX,
		OffsetY: offsetY,
		Width:   width,
		Height:  height,
		Alpha:   alpha,
		Image:   image,
		surface: surface,
	}
}

// Surface returns the label's backing surface, if any.
func (l *Label) Surface() *skin.Surface { return l.surface }

// Move repositions the label relative to its control's position.
func (l *Label) Move(x, y int) {
	if l.surface != nil {
		l.surface.MoveTo(l.OffsetX+x, l.OffsetY+y)
	}
}

// Show positions the label at its control's position and makes it visible.
func (l *Label) Show(x, y int) {
	if l.surface != nil {
		l.surface.MoveTo(l.OffsetX+x, l.OffsetY+y)
		l.surface.SetVisible(true)
	}
}
