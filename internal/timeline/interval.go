package timeline

import (
	"wiser_schedule"
)

// EffectiveEnd returns a slot's end boundary: the next slot's start time, or
// "24:00" for the last slot (and for an empty day).
func EffectiveEnd(day wiser_schedule.ScheduleDay, index int) string {
	if len(day.Slots) == 0 || index >= len(day.Slots)-1 {
		return EndOfDay
	}
	return day.Slots[index+1].Time
}

// StartTime returns a slot's start boundary, or "00:00" for an empty day.
func StartTime(day wiser_schedule.ScheduleDay, index int) string {
	if len(day.Slots) == 0 {
		return "00:00"
	}
	return day.Slots[index].Time
}

// CarriedValue is the setpoint in effect before a day's first boundary. It
// walks weekdays backward from the day before, wrapping Monday to Sunday,
// and returns the last setpoint of the first non-empty day found. Empty
// string means the whole schedule has no slots.
func CarriedValue(day wiser_schedule.ScheduleDay, schedule *wiser_schedule.Schedule) string {
	idx := wiser_schedule.DayIndex(day.Day)
	if idx < 0 {
		return ""
	}
	n := len(wiser_schedule.Days)
	for step := 1; step < n; step++ {
		prev := wiser_schedule.Days[(idx-step+n)%n]
		d := schedule.Day(prev)
		if len(d.Slots) > 0 {
			return d.Slots[len(d.Slots)-1].Setpoint
		}
	}
	return ""
}

// SetpointAt returns the setpoint of the indexed slot, or the carried-over
// value for the lead-in segment (index -1).
func SetpointAt(day wiser_schedule.ScheduleDay, index int, schedule *wiser_schedule.Schedule) string {
	if index == -1 {
		return CarriedValue(day, schedule)
	}
	return day.Slots[index].Setpoint
}
