package timeline

import (
	"reflect"
	"testing"

	"wiser_schedule"
)

func testSunTimes() wiser_schedule.SunTimes {
	st := wiser_schedule.SunTimes{}
	for range wiser_schedule.Days {
		st.Sunrises = append(st.Sunrises, "07:12")
		st.Sunsets = append(st.Sunsets, "19:30")
	}
	return st
}

func TestCanonicalizeDay_SortsChronologically(t *testing.T) {
	st := testSunTimes()
	slots := []wiser_schedule.ScheduleSlot{
		slot("18:00", "17"), slot("06:00", "19"), slot("12:00", "21"),
	}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		in := wiser_schedule.ScheduleDay{Day: "Monday"}
		for _, i := range p {
			in.Slots = append(in.Slots, slots[i])
		}
		out := CanonicalizeDay(in, ForLoad, st)
		prev := -1
		for _, s := range out.Slots {
			sec, err := ParseClock(s.Time)
			if err != nil {
				t.Fatalf("unparseable time %q: %v", s.Time, err)
			}
			if sec < prev {
				t.Fatalf("permutation %v: output not sorted: %v", p, out.Slots)
			}
			prev = sec
		}
	}
}

func TestCanonicalizeDay_DedupesStructurally(t *testing.T) {
	st := testSunTimes()
	in := wiser_schedule.ScheduleDay{Day: "Monday", Slots: []wiser_schedule.ScheduleSlot{
		slot("06:00", "19"), slot("12:00", "21"), slot("06:00", "19"),
	}}
	out := CanonicalizeDay(in, ForLoad, st)
	if len(out.Slots) != 2 {
		t.Fatalf("expected 2 slots after dedupe, got %d: %v", len(out.Slots), out.Slots)
	}
}

func TestCanonicalizeDay_ResolvesSpecialOnLoad(t *testing.T) {
	st := testSunTimes()
	in := wiser_schedule.ScheduleDay{Day: "Monday", Slots: []wiser_schedule.ScheduleSlot{
		{Time: wiser_schedule.SpecialSunrise, Setpoint: "50"},
		slot("12:00", "0"),
	}}
	out := CanonicalizeDay(in, ForLoad, st)
	if out.Slots[0].Time != "07:12" {
		t.Fatalf("sunrise slot resolved to %q, want 07:12", out.Slots[0].Time)
	}
	if out.Slots[0].SpecialTime != wiser_schedule.SpecialSunrise {
		t.Fatalf("marker lost on load: %+v", out.Slots[0])
	}
	if out.Slots[1].SpecialTime != "" {
		t.Fatalf("ordinary slot gained marker: %+v", out.Slots[1])
	}
}

func TestCanonicalizeDay_CollapsesSpecialOnSave(t *testing.T) {
	st := testSunTimes()
	loaded := wiser_schedule.ScheduleDay{Day: "Monday", Slots: []wiser_schedule.ScheduleSlot{
		{Time: "07:12", Setpoint: "50", SpecialTime: wiser_schedule.SpecialSunrise},
		slot("12:00", "0"),
	}}
	out := CanonicalizeDay(loaded, ForSave, st)
	if out.Slots[0].Time != wiser_schedule.SpecialSunrise {
		t.Fatalf("saved time = %q, want the marker", out.Slots[0].Time)
	}
}

func TestCanonicalizeDay_SaveKeepsChronologicalOrder(t *testing.T) {
	st := testSunTimes()
	// Sunset resolves to 19:30; it must sort between 12:00 and 22:00 even
	// though its stored form is the word "Sunset".
	loaded := wiser_schedule.ScheduleDay{Day: "Friday", Slots: []wiser_schedule.ScheduleSlot{
		slot("22:00", "0"),
		{Time: "19:30", Setpoint: "80", SpecialTime: wiser_schedule.SpecialSunset},
		slot("12:00", "100"),
	}}
	out := CanonicalizeDay(loaded, ForSave, st)
	want := []string{"12:00", wiser_schedule.SpecialSunset, "22:00"}
	for i, w := range want {
		if out.Slots[i].Time != w {
			t.Fatalf("slot %d time = %q, want %q (all: %v)", i, out.Slots[i].Time, w, out.Slots)
		}
	}
}

func TestCanonicalize_RoundTrip(t *testing.T) {
	st := testSunTimes()
	stored := wiser_schedule.ScheduleDay{Day: "Monday", Slots: []wiser_schedule.ScheduleSlot{
		slot("06:00", "0"),
		{Time: wiser_schedule.SpecialSunrise, Setpoint: "50"},
		slot("21:00", "0"),
	}}
	loaded := CanonicalizeDay(stored, ForLoad, st)
	saved := CanonicalizeDay(loaded, ForSave, st)
	// The saved form carries the marker in both fields; compare times and
	// setpoints against the canonical stored input.
	canonicalStored := CanonicalizeDay(stored, ForSave, st)
	if len(saved.Slots) != len(canonicalStored.Slots) {
		t.Fatalf("round trip changed slot count: %v vs %v", saved.Slots, canonicalStored.Slots)
	}
	for i := range saved.Slots {
		if saved.Slots[i].Time != canonicalStored.Slots[i].Time ||
			saved.Slots[i].Setpoint != canonicalStored.Slots[i].Setpoint {
			t.Fatalf("round trip mismatch at %d: %+v vs %+v", i, saved.Slots[i], canonicalStored.Slots[i])
		}
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	st := testSunTimes()
	in := wiser_schedule.ScheduleDay{Day: "Monday", Slots: []wiser_schedule.ScheduleSlot{
		{Time: wiser_schedule.SpecialSunset, Setpoint: "80"},
		slot("12:00", "100"),
		slot("06:00", "0"),
		slot("06:00", "0"),
	}}
	for _, dir := range []Direction{ForLoad, ForSave} {
		once := CanonicalizeDay(in, dir, st)
		twice := CanonicalizeDay(once, dir, st)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("direction %v not idempotent:\nonce:  %v\ntwice: %v", dir, once, twice)
		}
	}
}

func TestResolveSpecial(t *testing.T) {
	st := testSunTimes()
	got, err := ResolveSpecial(wiser_schedule.SpecialSunset, "Wednesday", st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "19:30" {
		t.Fatalf("got %q, want 19:30", got)
	}
	if _, err := ResolveSpecial("HighNoon", "Monday", st); err == nil {
		t.Fatalf("expected error for unknown marker")
	}
	if _, err := ResolveSpecial(wiser_schedule.SpecialSunrise, "Humpday", st); err == nil {
		t.Fatalf("expected error for unknown weekday")
	}
}

func TestParseRelative(t *testing.T) {
	rel, ok := ParseRelative("Sunset-00:30")
	if !ok {
		t.Fatalf("expected a relative time")
	}
	if rel.Event != wiser_schedule.SpecialSunset || rel.Sign != -1 || rel.Offset != 1800 {
		t.Fatalf("unexpected parse: %+v", rel)
	}
	sec, err := rel.Resolve("Monday", testSunTimes())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if want := 19*3600 + 30*60 - 1800; sec != want {
		t.Fatalf("resolved to %d, want %d", sec, want)
	}
	if _, ok := ParseRelative("19:30"); ok {
		t.Fatalf("plain clock string parsed as relative")
	}
}

func TestAbsToRel_SnapsAndCaps(t *testing.T) {
	st := testSunTimes()
	// 07:12 sunrise + 33 minutes, step 10 -> +00:30.
	rel, err := AbsToRel(7*3600+45*60, wiser_schedule.SpecialSunrise, "Monday", st, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rel.String(); got != "Sunrise+00:30" {
		t.Fatalf("got %q, want Sunrise+00:30", got)
	}
	// Ten hours past sunrise is capped at the four hour ceiling.
	rel, err = AbsToRel(17*3600+12*60, wiser_schedule.SpecialSunrise, "Monday", st, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rel.String(); got != "Sunrise+04:00" {
		t.Fatalf("got %q, want Sunrise+04:00", got)
	}
}
