package timeline

import (
	"errors"
	"testing"

	"wiser_schedule"
)

// fullDayTrack maps the whole day onto a 480px track, so one pixel is
// exactly three minutes.
var fullDayTrack = TrackGeometry{Left: 0, Width: 480, RangeMin: 0, RangeMax: SecPerDay}

func pageXFor(seconds int) float64 {
	return float64(seconds) / float64(SecPerDay) * fullDayTrack.Width
}

func TestDrag_ClampsToNeighbourWindow(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeHeating, "Monday",
		slot("06:00", "19"), slot("12:00", "21"), slot("18:00", "17"))
	mustSelect(t, h.editor, "Monday", 1)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	lo, hi, ok := h.editor.DragWindow()
	if !ok || lo != 6*SecPerHour+5*SecPerMinute || hi != 18*SecPerHour-5*SecPerMinute {
		t.Fatalf("drag window = (%d,%d,%v), want (06:05,17:55)", lo, hi, ok)
	}

	// Far left of the track lands below the window and clamps to exactly
	// previous.start plus one step.
	changed, err := h.editor.Drag(0)
	if err != nil {
		t.Fatalf("Drag: %v", err)
	}
	if !changed {
		t.Fatalf("clamped drag should still move the slot")
	}
	if got := h.daySlots(t, "Monday")[1].Time; got != "06:05" {
		t.Fatalf("time = %q, want 06:05", got)
	}

	// Far right clamps to the next boundary minus one step.
	if _, err := h.editor.Drag(fullDayTrack.Width + 100); err != nil {
		t.Fatalf("Drag: %v", err)
	}
	if got := h.daySlots(t, "Monday")[1].Time; got != "17:55" {
		t.Fatalf("time = %q, want 17:55", got)
	}
}

func TestDrag_SnapsToStep(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeHeating, "Monday",
		slot("06:00", "19"), slot("12:00", "21"), slot("18:00", "17"))
	mustSelect(t, h.editor, "Monday", 1)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	// 10:02 on the track rounds down to the 10:00 step boundary.
	if _, err := h.editor.Drag(pageXFor(10*SecPerHour + 2*SecPerMinute)); err != nil {
		t.Fatalf("Drag: %v", err)
	}
	if got := h.daySlots(t, "Monday")[1].Time; got != "10:00" {
		t.Fatalf("time = %q, want 10:00", got)
	}
}

func TestDrag_NoopMoveReportsUnchanged(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeHeating, "Monday",
		slot("06:00", "19"), slot("12:00", "21"), slot("18:00", "17"))
	mustSelect(t, h.editor, "Monday", 1)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	changed, err := h.editor.Drag(pageXFor(12 * SecPerHour))
	if err != nil {
		t.Fatalf("Drag: %v", err)
	}
	if changed {
		t.Fatalf("dragging onto the current time should be a no-op")
	}
}

func TestDrag_ClearsSpecialMarker(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeShutters, "Monday",
		wiser_schedule.ScheduleSlot{Time: "07:12", Setpoint: "100", SpecialTime: wiser_schedule.SpecialSunrise},
		slot("21:00", "0"))
	mustSelect(t, h.editor, "Monday", 0)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if _, err := h.editor.Drag(pageXFor(8 * SecPerHour)); err != nil {
		t.Fatalf("Drag: %v", err)
	}
	got := h.daySlots(t, "Monday")[0]
	if got.Time != "08:00" || got.SpecialTime != "" {
		t.Fatalf("expected marker cleared at 08:00, got %+v", got)
	}
}

func TestDrag_RelativeAnchorNextBoundary(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeLighting, "Monday",
		slot("12:00", "100"),
		slot("Sunset-00:30", "0"))
	mustSelect(t, h.editor, "Monday", 0)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	// Sunset is 19:30; dragging to 18:00 re-expresses the boundary as an
	// offset from the anchor rather than a fixed clock time.
	changed, err := h.editor.Drag(pageXFor(18 * SecPerHour))
	if err != nil {
		t.Fatalf("Drag: %v", err)
	}
	if !changed {
		t.Fatalf("expected the boundary to move")
	}
	if got := h.daySlots(t, "Monday")[0].Time; got != "Sunset-01:30" {
		t.Fatalf("time = %q, want Sunset-01:30", got)
	}
}

func TestDrag_SingleChangeEventOnRelease(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeHeating, "Monday",
		slot("06:00", "19"), slot("12:00", "21"), slot("18:00", "17"))
	mustSelect(t, h.editor, "Monday", 1)
	if err := h.editor.BeginDrag(fullDayTrack); err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	for _, sec := range []int{10 * SecPerHour, 11 * SecPerHour, 14 * SecPerHour} {
		if _, err := h.editor.Drag(pageXFor(sec)); err != nil {
			t.Fatalf("Drag: %v", err)
		}
	}
	if h.changed != 0 {
		t.Fatalf("intermediate drags must not emit change events, got %d", h.changed)
	}
	if err := h.editor.EndDrag(); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if h.changed != 1 {
		t.Fatalf("expected exactly one change event on release, got %d", h.changed)
	}
	if h.editor.Dragging() {
		t.Fatalf("session should be closed after EndDrag")
	}
}

func TestDrag_RequiresSessionAndSelection(t *testing.T) {
	h := newHarness(t, wiser_schedule.TypeHeating, "Monday", slot("06:00", "19"))
	if _, err := h.editor.Drag(100); !errors.Is(err, ErrNotDragging) {
		t.Fatalf("expected ErrNotDragging, got %v", err)
	}
	if err := h.editor.BeginDrag(fullDayTrack); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if err := h.editor.EndDrag(); err != nil {
		t.Fatalf("EndDrag without session should be a no-op, got %v", err)
	}
}
