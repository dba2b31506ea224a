package touchdeck

import (
	"image"

	"github.com/okvist/touchdeck/control"
	"github.com/okvist/touchdeck/skin"
)

// editor is the interactive layout-editing state machine: one drag session
// at a time, gated to contact id 0, moving the selected control with its
// position clamped to the overlay bounds.
type editor struct {
	width, height int

	selected       control.Control
	startX, startY int
	endX, endY     int

	sheet *skin.Surface
}

func (c *Context) enterEdit() {
	w, h := c.stage.Size()

	backdrop := image.NewRGBA(image.Rect(0, 0, w, h))
	skin.Checkerboard(backdrop, skin.EditorAlpha)
	sheet := skin.NewSurface(editorZ, 255)
	sheet.SetImage(backdrop)
	sheet.SetVisible(true)
	c.stage.Add(sheet)

	// Labels render fully opaque while editing so every control is visible.
	for _, ctl := range c.controls {
		if lb := ctl.Label(); lb != nil && lb.Surface() != nil {
			lb.Surface().SetAlpha(255)
		}
	}

	c.editor = &editor{width: w, height: h, sheet: sheet}
}

// exitEdit closes the editor and commits the layout to the remembered user
// path.
func (c *Context) exitEdit() error {
	c.stage.Remove(c.editor.sheet)
	for _, ctl := range c.controls {
		if lb := ctl.Label(); lb != nil && lb.Surface() != nil {
			lb.Surface().SetAlpha(lb.Alpha)
		}
	}
	c.editor = nil
	return c.SaveControls("")
}

// handle processes one contact event; a nil event is the per-frame tick
// that applies any residual drag delta. Contacts other than id 0 never
// change the drag state but are still consumed while the editor is open.
func (e *editor) handle(c *Context, ev *control.TouchEvent) Outcome {
	released := false
	if ev != nil && ev.Contact == 0 {
		switch ev.Type {
		case control.Touch:
			if e.selected == nil {
				e.selected = c.controlAt(ev.X, ev.Y)
				if e.selected != nil {
					e.startX, e.startY = ev.X, ev.Y
					e.endX, e.endY = ev.X, ev.Y
				} else {
					e.startX, e.startY = 0, 0
					e.endX, e.endY = 0, 0
				}
			}
		case control.Move:
			if e.selected != nil {
				e.endX, e.endY = ev.X, ev.Y
			}
		case control.Release:
			if e.selected != nil {
				released = true
				e.endX, e.endY = ev.X, ev.Y
			}
		}
	}

	if released {
		e.selected = nil
		e.startX, e.startY = 0, 0
		e.endX, e.endY = 0, 0
	} else if e.selected != nil {
		dx := e.endX - e.startX
		dy := e.endY - e.startY
		if dx != 0 || dy != 0 {
			e.startX, e.startY = e.endX, e.endY
			e.selected.Move(dx, dy, e.width, e.height)
		}
	}

	return Handled
}
