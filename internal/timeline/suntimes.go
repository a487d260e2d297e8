package timeline

import (
	"fmt"
	"regexp"

	"wiser_schedule"
)

// IsSpecialTime reports whether s is a recognised special time marker.
func IsSpecialTime(s string) bool {
	return s == wiser_schedule.SpecialSunrise || s == wiser_schedule.SpecialSunset
}

// ResolveSpecial maps a special time marker to the clock time of that event
// on the given weekday. An unknown marker or weekday is a caller error.
func ResolveSpecial(marker, day string, st wiser_schedule.SunTimes) (string, error) {
	idx := wiser_schedule.DayIndex(day)
	if idx < 0 {
		return "", fmt.Errorf("unknown weekday %q", day)
	}
	switch marker {
	case wiser_schedule.SpecialSunrise:
		if idx >= len(st.Sunrises) {
			return "", fmt.Errorf("no sunrise entry for %s", day)
		}
		return st.Sunrises[idx], nil
	case wiser_schedule.SpecialSunset:
		if idx >= len(st.Sunsets) {
			return "", fmt.Errorf("no sunset entry for %s", day)
		}
		return st.Sunsets[idx], nil
	default:
		return "", fmt.Errorf("unknown special time %q", marker)
	}
}

var relShape = regexp.MustCompile(`^(Sunrise|Sunset)([+-])([0-9:]+)$`)

// RelativeTime is a boundary expressed as an offset from an astronomical
// event, e.g. "Sunset-00:30".
type RelativeTime struct {
	Event  string
	Sign   int // +1 or -1
	Offset int // seconds, always >= 0
}

// ParseRelative recognises "Sunrise+HH:MM" style strings.
func ParseRelative(s string) (RelativeTime, bool) {
	m := relShape.FindStringSubmatch(s)
	if m == nil {
		return RelativeTime{}, false
	}
	offset, err := ParseClock(m[3])
	if err != nil {
		return RelativeTime{}, false
	}
	sign := 1
	if m[2] == "-" {
		sign = -1
	}
	return RelativeTime{Event: m[1], Sign: sign, Offset: offset}, true
}

func (r RelativeTime) String() string {
	sign := "+"
	if r.Sign < 0 {
		sign = "-"
	}
	return r.Event + sign + FormatClockShort(r.Offset)
}

// Resolve turns the relative time into seconds since midnight on the given
// weekday.
func (r RelativeTime) Resolve(day string, st wiser_schedule.SunTimes) (int, error) {
	anchor, err := ResolveSpecial(r.Event, day, st)
	if err != nil {
		return 0, err
	}
	base, err := ParseClock(anchor)
	if err != nil {
		return 0, err
	}
	return base + r.Sign*r.Offset, nil
}

// relative offsets are capped at four hours either side of the anchor.
const maxRelativeHours = 4

// AbsToRel re-expresses an absolute time of day as an offset from the given
// event on that weekday, snapped to the step size and capped at ±4h.
func AbsToRel(seconds int, event, day string, st wiser_schedule.SunTimes, stepMinutes int) (RelativeTime, error) {
	anchor, err := ResolveSpecial(event, day, st)
	if err != nil {
		return RelativeTime{}, err
	}
	base, err := ParseClock(anchor)
	if err != nil {
		return RelativeTime{}, err
	}
	offset := Snap(seconds-base, stepMinutes, SnapOptions{MaxHours: maxRelativeHours})
	rel := RelativeTime{Event: event, Sign: 1, Offset: offset}
	if offset < 0 {
		rel.Sign = -1
		rel.Offset = -offset
	}
	return rel, nil
}
