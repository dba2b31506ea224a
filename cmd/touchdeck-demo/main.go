// Command touchdeck-demo runs a touchdeck overlay over a simple host scene
// and prints the semantic callbacks it produces. Tab toggles the layout
// editor, F1 toggles the debug readout.
package main

import (
	"fmt"
	"image/color"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/okvist/touchdeck"
	"github.com/okvist/touchdeck/control"
	"github.com/okvist/touchdeck/layout"
	"github.com/okvist/touchdeck/remote"
)

const eventLogLines = 8

// Demo implements ebiten.Game, pumping polled and remote contact events
// into the overlay context.
type Demo struct {
	conf settings
	ctx  *touchdeck.Context

	poller  *touchdeck.Poller
	scratch []control.TouchEvent

	remoteEvents chan control.TouchEvent
	editSignals  chan bool

	watcher *layout.Watcher

	// Mouse state, exposed to the overlay as contact id 0 so the editor
	// can be driven with a mouse on desktop.
	mouseDown       bool
	mouseX, mouseY  int
	debugMode       bool
	recentCallbacks []string
}

func (d *Demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.debugMode = !d.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		d.toggleEdit(!d.ctx.EditActive())
	}

	d.drainRemote()
	d.reloadIfChanged()

	d.scratch = d.poller.Poll(d.scratch[:0])
	for _, ev := range d.scratch {
		d.deliver(ev)
	}
	d.pumpMouse()

	if d.ctx.EditActive() {
		d.ctx.Tick()
	}
	return nil
}

func (d *Demo) toggleEdit(enable bool) {
	kind := touchdeck.EventEditExit
	if enable {
		kind = touchdeck.EventEditEnter
	}
	if _, err := d.ctx.HandleEvent(touchdeck.Event{Kind: kind}); err != nil {
		log.Printf("edit mode: %v", err)
	}
}

func (d *Demo) drainRemote() {
	for {
		select {
		case ev := <-d.remoteEvents:
			d.deliver(ev)
		case enabled := <-d.editSignals:
			d.toggleEdit(enabled)
		default:
			return
		}
	}
}

func (d *Demo) reloadIfChanged() {
	if d.watcher == nil || d.ctx.EditActive() {
		return
	}
	select {
	case <-d.watcher.C:
		if err := d.ctx.LoadControls(d.conf.DefaultLayout, d.conf.UserLayout); err != nil {
			log.Printf("reload controls: %v", err)
		} else {
			log.Printf("controls reloaded")
		}
	default:
	}
}

func (d *Demo) pumpMouse() {
	x, y := ebiten.CursorPosition()
	ts := time.Now().UnixNano()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.mouseDown = true
		d.mouseX, d.mouseY = x, y
		d.deliver(control.TouchEvent{Type: control.Touch, Contact: 0, X: x, Y: y, Timestamp: ts})
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && d.mouseDown {
		d.mouseDown = false
		d.deliver(control.TouchEvent{Type: control.Release, Contact: 0, X: x, Y: y, Timestamp: ts})
		return
	}
	if d.mouseDown && (x != d.mouseX || y != d.mouseY) {
		d.mouseX, d.mouseY = x, y
		d.deliver(control.TouchEvent{Type: control.Move, Contact: 0, X: x, Y: y, Timestamp: ts})
	}
}

func (d *Demo) deliver(ev control.TouchEvent) {
	if _, err := d.ctx.HandleEvent(touchdeck.Event{Kind: touchdeck.EventContact, Touch: ev}); err != nil {
		log.Printf("handle event: %v", err)
	}
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 28, 34, 255})

	// Outline the controls so layouts without artwork are still visible.
	for _, ctl := range d.ctx.Controls() {
		r := ctl.Rect()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y),
			float32(r.Width), float32(r.Height), 1, color.RGBA{90, 120, 160, 255}, false)
	}

	if err := d.ctx.Draw(screen); err != nil {
		log.Printf("draw overlay: %v", err)
	}

	if d.debugMode {
		text := fmt.Sprintf("FPS: %.1f  edit: %v\n", ebiten.ActualFPS(), d.ctx.EditActive())
		for _, line := range d.recentCallbacks {
			text += line + "\n"
		}
		ebitenutil.DebugPrint(screen, text)
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.conf.WindowWidth, d.conf.WindowHeight
}

func (d *Demo) record(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	d.recentCallbacks = append(d.recentCallbacks, line)
	if len(d.recentCallbacks) > eventLogLines {
		d.recentCallbacks = d.recentCallbacks[1:]
	}
}

func (d *Demo) callbacks() control.Callbacks {
	return control.Callbacks{
		OnKey: func(symbol, modifier, scancode, unicode int, pressed bool) {
			d.record("key sym=%d mod=%d pressed=%v", symbol, modifier, pressed)
		},
		OnDPad: func(angle int, pressed bool) {
			d.record("dpad angle=%d pressed=%v", angle, pressed)
		},
		OnTouch: func(dx, dy int) {
			d.record("touch dx=%d dy=%d", dx, dy)
		},
		OnMouseButton: func(button, mask int, pressed bool) {
			d.record("mouse button=%d pressed=%v", button, pressed)
		},
		OnTap: func() {
			d.record("tap")
		},
		OnTouchScreen: func(x, y int, tap, hold bool) {
			d.record("screen x=%d y=%d tap=%v hold=%v", x, y, tap, hold)
		},
	}
}

// defaultLayout is written to the default path when no layout exists yet:
// a d-pad, two keys, a mouse button and a trackpad area.
func defaultLayout() layout.Layout {
	return layout.Layout{
		Version: layout.FormatVersion,
		Controls: []layout.Descriptor{
			{Type: "dpad", ID: 1, X: 40, Y: 320, Width: 200, Height: 200},
			{Type: "key", ID: 2, X: 780, Y: 360, Width: 96, Height: 96, Symbol: 32, Scancode: 57, Unicode: 32},
			{Type: "key", ID: 3, X: 890, Y: 360, Width: 96, Height: 96, Symbol: 13, Scancode: 28, Unicode: 13},
			{Type: "mousebutton", ID: 4, X: 890, Y: 470, Width: 96, Height: 96, Button: 1, Mask: 1},
			{Type: "toucharea", ID: 5, X: 300, Y: 120, Width: 420, Height: 300, TapSensitive: 1},
		},
	}
}

func main() {
	conf := loadSettings()

	demo := &Demo{
		conf:         conf,
		poller:       touchdeck.NewPoller(),
		remoteEvents: make(chan control.TouchEvent, 64),
		editSignals:  make(chan bool, 4),
	}
	demo.ctx = touchdeck.New(conf.WindowWidth, conf.WindowHeight, demo.callbacks())

	if err := demo.ctx.LoadControls(conf.DefaultLayout, conf.UserLayout); err != nil {
		log.Printf("load controls: %v; writing built-in defaults", err)
		if err := layout.Write(conf.DefaultLayout, defaultLayout()); err != nil {
			log.Fatalf("write default layout: %v", err)
		}
		if err := demo.ctx.LoadControls(conf.DefaultLayout, conf.UserLayout); err != nil {
			log.Fatalf("load controls: %v", err)
		}
	}

	if conf.WatchLayout {
		w, err := layout.Watch(conf.UserLayout)
		if err != nil {
			log.Printf("watch layout: %v", err)
		} else {
			demo.watcher = w
			defer w.Close()
		}
	}

	if conf.RemoteAddr != "" {
		srv := remote.NewServer(
			func(ev control.TouchEvent) {
				select {
				case demo.remoteEvents <- ev:
				default: // drop rather than stall the reader
				}
			},
			func(enabled bool) {
				select {
				case demo.editSignals <- enabled:
				default:
				}
			},
		)
		mux := http.NewServeMux()
		mux.Handle("/input", srv)
		go func() {
			log.Printf("remote input listening on %s", conf.RemoteAddr)
			if err := http.ListenAndServe(conf.RemoteAddr, mux); err != nil {
				log.Printf("remote input server: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(conf.WindowWidth, conf.WindowHeight)
	ebiten.SetWindowTitle("touchdeck demo")
	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
