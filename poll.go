package touchdeck

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okvist/touchdeck/control"
)

// Poller converts ebiten's polled touch state into the discrete contact
// events consumed by Context.HandleEvent: a touch event when a contact
// appears, a move event when its position changes, and a release event
// (at the last known position) when it disappears.
type Poller struct {
	active  map[control.ContactID][2]int
	scratch []ebiten.TouchID
	now     func() time.Time
}

// NewPoller returns a ready-to-use touch poller.
func NewPoller() *Poller {
	return &Poller{
		active:  make(map[control.ContactID][2]int),
		scratch: make([]ebiten.TouchID, 0, 8),
		now:     time.Now,
	}
}

// SetNowFunc overrides the clock used for event timestamps.
func (p *Poller) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// Poll appends the contact events since the previous call to dst and
// returns the extended slice. Call once per frame.
func (p *Poller) Poll(dst []control.TouchEvent) []control.TouchEvent {
	ts := p.now().UnixNano()
	p.scratch = ebiten.AppendTouchIDs(p.scratch[:0])

	for _, id := range p.scratch {
		x, y := ebiten.TouchPosition(id)
		cid := control.ContactID(id)
		last, ok := p.active[cid]
		switch {
		case !ok:
			p.active[cid] = [2]int{x, y}
			dst = append(dst, control.TouchEvent{Type: control.Touch, Contact: cid, X: x, Y: y, Timestamp: ts})
		case last[0] != x || last[1] != y:
			p.active[cid] = [2]int{x, y}
			dst = append(dst, control.TouchEvent{Type: control.Move, Contact: cid, X: x, Y: y, Timestamp: ts})
		}
	}

	for cid, last := range p.active {
		if !containsTouchID(p.scratch, ebiten.TouchID(cid)) {
			delete(p.active, cid)
			dst = append(dst, control.TouchEvent{Type: control.Release, Contact: cid, X: last[0], Y: last[1], Timestamp: ts})
		}
	}

	return dst
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
