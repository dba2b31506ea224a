package touchdeck

import "github.com/okvist/touchdeck/control"

// HandleEvent routes one event through the overlay. Contact events go to the
// layout editor while it is open, otherwise to the gesture dispatcher.
// An Unhandled outcome means the host should process the event itself.
func (c *Context) HandleEvent(ev Event) (Outcome, error) {
	switch ev.Kind {
	case EventEditEnter:
		if c.editor != nil {
			return Unhandled, nil
		}
		c.enterEdit()
		return Handled, nil
	case EventEditExit:
		if c.editor == nil {
			return Unhandled, nil
		}
		return Handled, c.exitEdit()
	case EventContact:
		if c.editor != nil {
			return c.editor.handle(c, &ev.Touch), nil
		}
		return c.dispatchTouch(ev.Touch), nil
	}
	return Unhandled, nil
}

// Tick drives deferred work once per frame when no fresh event arrived:
// while the editor is open it applies any residual drag delta.
func (c *Context) Tick() {
	if c.editor != nil {
		c.editor.handle(c, nil)
	}
}

// dispatchTouch resolves the contact's owner and lets it classify the
// event. The two-phase lookup matters: ownership must survive the contact
// drifting outside the control's bounds just long enough to synthesize the
// up-event, after which the contact is free for another control to claim on
// a later touch.
func (c *Context) dispatchTouch(ev control.TouchEvent) Outcome {
	owner, owned := c.owners[ev.Contact]
	handled := false
	if owned {
		handled = control.Dispatch(owner, ev)
		if !handled {
			delete(c.owners, ev.Contact)
		}
	}

	if !handled {
		for _, ctl := range c.controls {
			if ctl == owner {
				continue // already checked
			}
			if control.Dispatch(ctl, ev) {
				// First match wins; no other control sees this contact.
				c.owners[ev.Contact] = ctl
				handled = true
				break
			}
		}
	}

	if handled {
		return Handled
	}
	return Unhandled
}

// controlAt returns the first control in registration order whose bounds
// contain the point, or nil.
func (c *Context) controlAt(x, y int) control.Control {
	for _, ctl := range c.controls {
		if ctl.Rect().Contains(x, y) {
			return ctl
		}
	}
	return nil
}
