package timeline

import (
	"math"
)

// TrackGeometry captures the pixel layout of a day's timeline track at drag
// start, including the visible sub-range when the view is zoomed or panned.
type TrackGeometry struct {
	Left     float64 // page-x of the track's left edge
	Width    float64 // track width in pixels
	RangeMin int     // first visible second of the day
	RangeMax int     // last visible second of the day
}

// dragSession lives only while a pointer is held on a resize handle.
type dragSession struct {
	day  string
	slot int
	geom TrackGeometry

	// widthPx is the pixel width a full 24h would occupy at the current
	// zoom; offset is the second of day under the track's left edge.
	widthPx float64
	offset  float64

	tMin, tMax int

	// relEnd is set when the slot's end boundary is anchored to an
	// astronomical event; the dragged time is then expressed as an offset
	// from that anchor instead of an absolute snap.
	relEnd *RelativeTime
}

// BeginDrag opens a drag session for the active slot. The allowed window is
// [previous.start + step, nextEnd − step], with the day's bounds and one
// step of minimum width reserved at the outer edges.
func (e *Editor) BeginDrag(geom TrackGeometry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.activeSlot < 0 || e.activeDay == "" {
		return ErrNoSelection
	}
	if geom.RangeMax <= geom.RangeMin {
		geom.RangeMin, geom.RangeMax = 0, SecPerDay
	}
	day := e.working.Day(e.activeDay)
	i := e.activeSlot
	stepSec := e.step * SecPerMinute

	tMin := 0
	if i > 0 {
		prev, err := ParseClock(day.Slots[i-1].Time)
		if err != nil {
			return err
		}
		tMin = prev + stepSec
	}
	tMax := SecPerDay - stepSec
	if i < len(day.Slots)-1 {
		end := EffectiveEnd(day, i)
		var next int
		var err error
		if rel, ok := ParseRelative(end); ok {
			next, err = rel.Resolve(e.activeDay, e.suntimes)
		} else {
			next, err = ParseClock(end)
		}
		if err != nil {
			return err
		}
		if next == 0 {
			next = SecPerDay
		}
		tMax = next - stepSec
	}

	visible := float64(geom.RangeMax - geom.RangeMin)
	widthPx := float64(SecPerDay) / visible * geom.Width
	leftPx := -float64(geom.RangeMin) / visible * geom.Width

	session := &dragSession{
		day:     e.activeDay,
		slot:    i,
		geom:    geom,
		widthPx: widthPx,
		offset:  -leftPx / widthPx * float64(SecPerDay),
		tMin:    tMin,
		tMax:    tMax,
	}
	if rel, ok := ParseRelative(EffectiveEnd(day, i)); ok {
		session.relEnd = &rel
	}
	e.drag = session
	return nil
}

// Dragging reports whether a drag session is open.
func (e *Editor) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag != nil
}

// Drag maps the pointer's horizontal page position to a candidate boundary
// time, clamps it to the allowed window, snaps it to the step size (or
// re-expresses it relative to the anchor) and applies it to the dragged
// slot. Returns true when the slot actually moved; a no-op move issues no
// update.
func (e *Editor) Drag(pageX float64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag == nil {
		return false, ErrNotDragging
	}
	d := e.drag

	x := pageX - d.geom.Left
	if x > d.geom.Width-1 {
		x = d.geom.Width - 1
	}
	if x < -18 {
		x = -18
	}
	t := int(math.Round(x/d.widthPx*float64(SecPerDay) + d.offset))
	if t < d.tMin {
		t = d.tMin
	}
	if t > d.tMax {
		t = d.tMax
	}

	var timeString string
	if d.relEnd != nil {
		rel, err := AbsToRel(t, d.relEnd.Event, d.day, e.suntimes, e.step)
		if err != nil {
			return false, err
		}
		timeString = rel.String()
	} else {
		if t >= SecPerDay {
			t = SecPerDay
		} else {
			t = Snap(t, e.step, SnapOptions{WrapAround: true})
		}
		timeString = FormatClockShort(t)
	}

	day := e.working.Day(d.day)
	if timeString == EffectiveEnd(day, d.slot) || timeString == day.Slots[d.slot].Time {
		return false, nil
	}
	// Moving an anchored boundary converts it to a fixed time.
	day.Slots[d.slot].Time = timeString
	day.Slots[d.slot].SpecialTime = ""
	e.working.SetDay(d.day, day.Slots)
	return true, nil
}

// EndDrag closes the session and emits a single change notification. Window
// blur is treated as an implicit release, so this is also the blur handler;
// the cooldown keeps the trailing click from toggling the selection.
func (e *Editor) EndDrag() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag == nil {
		return nil
	}
	e.drag = nil
	e.lastDragEnd = e.now()
	e.emitChanged()
	return nil
}

// DragWindow exposes the current session's clamp window for rendering.
func (e *Editor) DragWindow() (min, max int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag == nil {
		return 0, 0, false
	}
	return e.drag.tMin, e.drag.tMax, true
}
