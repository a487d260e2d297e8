package timeline

import (
	"sort"

	"wiser_schedule"
)

// Direction selects which way CanonicalizeDay rewrites special boundaries.
type Direction int

const (
	// ForLoad resolves special markers to clock times for display.
	ForLoad Direction = iota
	// ForSave collapses resolved times back to their markers for storage.
	ForSave
)

// CanonicalizeDay produces a day's canonical form: special boundaries
// rewritten per direction, slots sorted ascending by resolved time of day,
// exact duplicates removed (first occurrence wins).
//
// Slots are compared by true seconds-of-day of their resolved time, never by
// a string proxy; in the save direction sorting happens before markers are
// re-collapsed so order stays chronological and deterministic.
func CanonicalizeDay(day wiser_schedule.ScheduleDay, dir Direction, st wiser_schedule.SunTimes) wiser_schedule.ScheduleDay {
	slots := make([]wiser_schedule.ScheduleSlot, 0, len(day.Slots))
	for _, slot := range day.Slots {
		if IsSpecialTime(slot.Time) {
			// Raw storage form: the marker sits in the time field.
			resolved, err := ResolveSpecial(slot.Time, day.Day, st)
			if err == nil {
				slots = append(slots, wiser_schedule.ScheduleSlot{
					Time:        resolved,
					Setpoint:    slot.Setpoint,
					SpecialTime: slot.Time,
				})
				continue
			}
		}
		if slot.SpecialTime != "" && IsSpecialTime(slot.SpecialTime) {
			// Display form: keep the marker, refresh the resolved time.
			if resolved, err := ResolveSpecial(slot.SpecialTime, day.Day, st); err == nil {
				slots = append(slots, wiser_schedule.ScheduleSlot{
					Time:        resolved,
					Setpoint:    slot.Setpoint,
					SpecialTime: slot.SpecialTime,
				})
				continue
			}
		}
		slots = append(slots, wiser_schedule.ScheduleSlot{Time: slot.Time, Setpoint: slot.Setpoint})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slotSeconds(slots[i], day.Day, st) < slotSeconds(slots[j], day.Day, st)
	})

	if dir == ForSave {
		for i, slot := range slots {
			if slot.SpecialTime != "" {
				slots[i].Time = slot.SpecialTime
			}
		}
	}

	return wiser_schedule.ScheduleDay{Day: day.Day, Slots: dedupeSlots(slots)}
}

// CanonicalizeSchedule canonicalizes every day of the schedule in place.
func CanonicalizeSchedule(s *wiser_schedule.Schedule, dir Direction, st wiser_schedule.SunTimes) *wiser_schedule.Schedule {
	for i, day := range s.Days {
		s.Days[i] = CanonicalizeDay(day, dir, st)
	}
	return s
}

// slotSeconds is the chronological sort key for a slot within its day.
func slotSeconds(slot wiser_schedule.ScheduleSlot, day string, st wiser_schedule.SunTimes) int {
	if sec, err := ParseClock(slot.Time); err == nil {
		return sec
	}
	if IsSpecialTime(slot.Time) {
		if resolved, err := ResolveSpecial(slot.Time, day, st); err == nil {
			if sec, err := ParseClock(resolved); err == nil {
				return sec
			}
		}
	}
	if rel, ok := ParseRelative(slot.Time); ok {
		if sec, err := rel.Resolve(day, st); err == nil {
			return sec
		}
	}
	return SecPerDay // unparseable boundaries sort last
}

// dedupeSlots removes slots whose (time, setpoint, marker) triple repeats,
// keeping the first occurrence. Structural equality, not identity.
func dedupeSlots(slots []wiser_schedule.ScheduleSlot) []wiser_schedule.ScheduleSlot {
	seen := make(map[wiser_schedule.ScheduleSlot]struct{}, len(slots))
	out := slots[:0]
	for _, slot := range slots {
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	return out
}
