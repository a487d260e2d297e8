package timeline

import (
	"testing"

	"wiser_schedule"
)

func slot(t, sp string) wiser_schedule.ScheduleSlot {
	return wiser_schedule.ScheduleSlot{Time: t, Setpoint: sp}
}

func weekWith(t *testing.T, day string, slots ...wiser_schedule.ScheduleSlot) *wiser_schedule.Schedule {
	t.Helper()
	s := &wiser_schedule.Schedule{Type: wiser_schedule.TypeHeating, Days: wiser_schedule.EmptyWeek()}
	s.SetDay(day, slots)
	return s
}

func TestEffectiveEnd(t *testing.T) {
	day := wiser_schedule.ScheduleDay{
		Day:   "Monday",
		Slots: []wiser_schedule.ScheduleSlot{slot("06:00", "19"), slot("12:00", "21"), slot("18:00", "17")},
	}
	if got := EffectiveEnd(day, 0); got != "12:00" {
		t.Fatalf("EffectiveEnd(0) = %q, want 12:00", got)
	}
	if got := EffectiveEnd(day, 2); got != "24:00" {
		t.Fatalf("EffectiveEnd(2) = %q, want 24:00", got)
	}
	empty := wiser_schedule.ScheduleDay{Day: "Monday"}
	if got := EffectiveEnd(empty, 0); got != "24:00" {
		t.Fatalf("EffectiveEnd(empty) = %q, want 24:00", got)
	}
}

func TestCarriedValue_WrapsAcrossWeek(t *testing.T) {
	s := weekWith(t, "Friday", slot("06:00", "19"), slot("22:00", "16"))
	if got := CarriedValue(s.Day("Monday"), s); got != "16" {
		t.Fatalf("CarriedValue(Monday) = %q, want Friday's last setpoint 16", got)
	}
}

func TestCarriedValue_PreviousDay(t *testing.T) {
	s := weekWith(t, "Tuesday", slot("07:00", "20"))
	if got := CarriedValue(s.Day("Wednesday"), s); got != "20" {
		t.Fatalf("CarriedValue(Wednesday) = %q, want 20", got)
	}
}

func TestCarriedValue_EmptySchedule(t *testing.T) {
	s := &wiser_schedule.Schedule{Days: wiser_schedule.EmptyWeek()}
	if got := CarriedValue(s.Day("Monday"), s); got != "" {
		t.Fatalf("CarriedValue on empty schedule = %q, want empty", got)
	}
}

func TestSetpointAt_LeadInUsesCarriedValue(t *testing.T) {
	s := weekWith(t, "Sunday", slot("09:00", "On"))
	if got := SetpointAt(s.Day("Monday"), -1, s); got != "On" {
		t.Fatalf("SetpointAt(-1) = %q, want On", got)
	}
	if got := SetpointAt(s.Day("Sunday"), 0, s); got != "On" {
		t.Fatalf("SetpointAt(0) = %q, want On", got)
	}
}
