package control

import "testing"

type screenRecorder struct {
	events []screenEvent
}

type screenEvent struct {
	x, y      int
	tap, hold bool
}

func (s *screenRecorder) callbacks() Callbacks {
	return Callbacks{
		OnTouchScreen: func(x, y int, tap, hold bool) {
			s.events = append(s.events, screenEvent{x, y, tap, hold})
		},
	}
}

func newTestScreen(rec *screenRecorder) *TouchScreen {
	return NewTouchScreen(1, Rect{0, 0, 500, 500}, rec.callbacks())
}

func TestTouchScreenTapThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		releaseAt int64
		wantTaps  int
	}{
		{"just inside threshold", TapThreshold - 1, 1},
		{"just past threshold", TapThreshold + 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec screenRecorder
			ts := newTestScreen(&rec)

			Dispatch(ts, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100, Timestamp: 0})
			Dispatch(ts, TouchEvent{Type: Release, Contact: 0, X: 102, Y: 103, Timestamp: tt.releaseAt})

			taps := 0
			for _, ev := range rec.events {
				if ev.tap {
					taps++
				}
			}
			if taps != tt.wantTaps {
				t.Errorf("taps = %d; want %d", taps, tt.wantTaps)
			}
			// A stationary non-tap release classifies as nothing at all.
			if tt.wantTaps == 0 && len(rec.events) != 0 {
				t.Errorf("events = %v; want none", rec.events)
			}
		})
	}
}

func TestTouchScreenJitterSuppressesMove(t *testing.T) {
	var rec screenRecorder
	ts := newTestScreen(&rec)

	Dispatch(ts, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100, Timestamp: 0})
	// Manhattan distance 9, still within the jitter radius.
	Dispatch(ts, TouchEvent{Type: Move, Contact: 0, X: 104, Y: 105, Timestamp: 1000})

	if len(rec.events) != 0 {
		t.Errorf("events = %v; want none while inside the jitter radius", rec.events)
	}
}

func TestTouchScreenMoveIsSticky(t *testing.T) {
	var rec screenRecorder
	ts := newTestScreen(&rec)

	Dispatch(ts, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100, Timestamp: 0})
	// Escape the jitter radius: move mode engages.
	Dispatch(ts, TouchEvent{Type: Move, Contact: 0, X: 120, Y: 100, Timestamp: 1000})
	// Back within the radius of the start point: still a move.
	Dispatch(ts, TouchEvent{Type: Move, Contact: 0, X: 101, Y: 100, Timestamp: 2000})

	if len(rec.events) != 2 {
		t.Fatalf("got %d events; want 2", len(rec.events))
	}
	for i, ev := range rec.events {
		if ev.tap || ev.hold {
			t.Errorf("event %d = %+v; want plain move", i, ev)
		}
	}
	if rec.events[1].x != 101 {
		t.Errorf("second move at x=%d; want 101", rec.events[1].x)
	}

	// A release away from the start point is not a tap.
	Dispatch(ts, TouchEvent{Type: Release, Contact: 0, X: 120, Y: 100, Timestamp: 3000})
	for _, ev := range rec.events {
		if ev.tap {
			t.Error("release away from the start point must not classify as tap")
		}
	}
}

func TestTouchScreenHoldEmittedOnce(t *testing.T) {
	var rec screenRecorder
	ts := newTestScreen(&rec)

	Dispatch(ts, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100, Timestamp: 0})
	Dispatch(ts, TouchEvent{Type: Move, Contact: 0, X: 101, Y: 100, Timestamp: HoldThreshold + 1})

	if len(rec.events) != 1 || !rec.events[0].hold {
		t.Fatalf("events = %v; want exactly one hold", rec.events)
	}

	// Once holding, further motion classifies as nothing until release.
	Dispatch(ts, TouchEvent{Type: Move, Contact: 0, X: 200, Y: 200, Timestamp: HoldThreshold + 2000})
	if len(rec.events) != 1 {
		t.Fatalf("events = %v; want classification to stop after the hold", rec.events)
	}

	// Release resets the state for the next ownership.
	Dispatch(ts, TouchEvent{Type: Release, Contact: 0, X: 200, Y: 200, Timestamp: HoldThreshold + 3000})
	Dispatch(ts, TouchEvent{Type: Touch, Contact: 0, X: 100, Y: 100, Timestamp: 0})
	Dispatch(ts, TouchEvent{Type: Release, Contact: 0, X: 100, Y: 100, Timestamp: 1000})
	if len(rec.events) != 2 || !rec.events[1].tap {
		t.Fatalf("events = %v; want a tap from the fresh ownership", rec.events)
	}
}
