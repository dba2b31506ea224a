// Package touchdeck renders a configurable overlay of virtual game-input
// widgets (keys, d-pads, touch areas, mouse buttons, touch-to-mouse zones)
// over a host display surface and translates raw multi-touch contact events
// into semantic input callbacks.
//
// All event handling is single-threaded: the host delivers events serially
// and each is processed to completion before the next.
package touchdeck

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okvist/touchdeck/control"
	"github.com/okvist/touchdeck/layout"
	"github.com/okvist/touchdeck/skin"
)

// Surface z-orders: labels sit above the host scene, the editor sheet above
// the labels.
const (
	labelZ  = 6
	editorZ = 10
)

// Outcome distinguishes events consumed by the overlay from events the host
// should process itself. Hard service failures are reported separately as
// errors.
type Outcome int

const (
	// Unhandled means the event did not match anything the overlay manages
	// and should be passed through to the host application.
	Unhandled Outcome = iota

	// Handled means the overlay consumed the event.
	Handled
)

// EventKind is the kind of an overlay event.
type EventKind int

const (
	// EventContact is a raw touch/move/release event; see Event.Touch.
	EventContact EventKind = iota

	// EventEditEnter opens the interactive layout editor.
	EventEditEnter

	// EventEditExit closes the layout editor and commits the layout to the
	// remembered user path.
	EventEditExit
)

// Event is a single input delivered to the overlay.
type Event struct {
	Kind  EventKind
	Touch control.TouchEvent // valid when Kind == EventContact
}

// Context is an overlay instance: the loaded controls, the per-contact
// ownership table and, while active, the layout editor. It is an explicit
// caller-owned value; callers must not share one Context across goroutines.
type Context struct {
	callbacks control.Callbacks
	stage     *skin.Stage

	controls []control.Control
	owners   map[control.ContactID]control.Control

	editor   *editor
	userPath string
}

// New creates an overlay context for a surface of the given size. The
// callbacks are wired into every control loaded afterwards.
func New(width, height int, cb control.Callbacks) *Context {
	return &Context{
		callbacks: cb,
		stage:     skin.NewStage(width, height),
		owners:    make(map[control.ContactID]control.Control),
	}
}

// Controls returns the loaded controls in registration (dispatch) order.
func (c *Context) Controls() []control.Control { return c.controls }

// EditActive reports whether the layout editor is open.
func (c *Context) EditActive() bool { return c.editor != nil }

// LoadControls replaces the current controls with the layout read from
// userPath, falling back to defaultPath. userPath is remembered as the
// commit target for later saves.
func (c *Context) LoadControls(defaultPath, userPath string) error {
	if c.editor != nil {
		return errors.New("touchdeck: cannot reload controls while the layout editor is active")
	}
	l, err := layout.Load(defaultPath, userPath)
	if err != nil {
		return err
	}
	c.userPath = userPath
	c.removeControls()

	for _, d := range l.Controls {
		ctl, err := c.buildControl(d)
		if err != nil {
			c.removeControls()
			return err
		}
		c.controls = append(c.controls, ctl)
	}
	for _, ctl := range c.controls {
		if lb := ctl.Label(); lb != nil {
			r := ctl.Rect()
			lb.Show(r.X, r.Y)
		}
	}
	return nil
}

// SaveControls writes the current layout. An empty path saves to the
// remembered user path; if there is none either, there is nothing to save
// and the call succeeds.
func (c *Context) SaveControls(path string) error {
	if path == "" {
		path = c.userPath
	}
	if path == "" {
		return nil
	}
	l := layout.Layout{Version: layout.FormatVersion}
	for _, ctl := range c.controls {
		l.Controls = append(l.Controls, describe(ctl))
	}
	return layout.Write(path, l)
}

// Draw composites the overlay (control labels and, while editing, the
// editor sheet) onto the screen.
func (c *Context) Draw(screen *ebiten.Image) error {
	c.stage.Draw(screen)
	return nil
}

// Close tears the overlay down. The context must not be used afterwards.
func (c *Context) Close() {
	if c.editor != nil {
		c.stage.Remove(c.editor.sheet)
		c.editor = nil
	}
	c.removeControls()
	c.stage.Clear()
}

func (c *Context) removeControls() {
	for _, ctl := range c.controls {
		if lb := ctl.Label(); lb != nil && lb.Surface() != nil {
			c.stage.Remove(lb.Surface())
		}
	}
	c.controls = nil
	clear(c.owners)
}

func (c *Context) buildControl(d layout.Descriptor) (control.Control, error) {
	r := control.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
	var ctl control.Control
	switch d.Type {
	case "key":
		ctl = control.NewKey(d.ID, r, d.Symbol, d.Modifier, d.Scancode, d.Unicode, c.callbacks)
	case "dpad":
		ctl = control.NewDPad(d.ID, r, c.callbacks)
	case "toucharea":
		ctl = control.NewTouchArea(d.ID, r, d.TapSensitive, c.callbacks)
	case "mousebutton":
		ctl = control.NewMouseButton(d.ID, r, d.Button, d.Mask, c.callbacks)
	case "touchscreen":
		ctl = control.NewTouchScreen(d.ID, r, c.callbacks)
	default:
		return nil, fmt.Errorf("touchdeck: control %d: unknown type %q", d.ID, d.Type)
	}

	if d.Label != nil {
		surf := skin.NewSurface(labelZ, d.Label.Alpha)
		if d.Label.Image != "" {
			img, err := skin.DecodeImage(d.Label.Image)
			if err != nil {
				// The control still works for input; only the artwork is
				// missing.
				log.Printf("touchdeck: control %d: %v", d.ID, err)
			} else {
				surf.SetImage(img)
			}
		}
		c.stage.Add(surf)
		ctl.SetLabel(control.NewLabel(d.Label.X, d.Label.Y, d.Label.Width, d.Label.Height,
			d.Label.Alpha, d.Label.Image, surf))
	}
	return ctl, nil
}

func describe(ctl control.Control) layout.Descriptor {
	r := ctl.Rect()
	d := layout.Descriptor{
		Type:   ctl.Kind().String(),
		ID:     ctl.ID(),
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
	switch v := ctl.(type) {
	case *control.Key:
		d.Symbol = v.Symbol
		d.Modifier = v.Modifier
		d.Scancode = v.Scancode
		d.Unicode = v.Unicode
	case *control.MouseButton:
		d.Button = v.Button
		d.Mask = v.Mask
	case *control.TouchArea:
		d.TapSensitive = v.TapSensitive
	}
	if lb := ctl.Label(); lb != nil {
		d.Label = &layout.LabelDescriptor{
			X:      lb.OffsetX,
			Y:      lb.OffsetY,
			Width:  lb.Width,
			Height: lb.Height,
			Alpha:  lb.Alpha,
			Image:  lb.Image,
		}
	}
	return d
}
