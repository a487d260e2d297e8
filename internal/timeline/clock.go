package timeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	SecPerDay    = 86400
	SecPerHour   = 3600
	SecPerMinute = 60
)

// EndOfDay is the effective end boundary of a day's last slot.
const EndOfDay = "24:00"

var clockShape = regexp.MustCompile(`^[0-9:]+$`)

// fallback layouts for values that are not plain clock strings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseClock converts "H:MM", "HH:MM" or "HH:MM:SS" to seconds since
// midnight. Anything else goes through a generic date parse and yields that
// timestamp's time of day.
func ParseClock(s string) (int, error) {
	if clockShape.MatchString(s) {
		parts := strings.Split(s, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return 0, fmt.Errorf("malformed clock string %q", s)
		}
		nums := make([]int, 3)
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return 0, fmt.Errorf("malformed clock string %q: %w", s, err)
			}
			nums[i] = n
		}
		return nums[0]*SecPerHour + nums[1]*SecPerMinute + nums[2], nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Hour()*SecPerHour + ts.Minute()*SecPerMinute + ts.Second(), nil
		}
	}
	return 0, fmt.Errorf("cannot parse %q as a time of day", s)
}

// FormatClock renders seconds since midnight as "HH:MM:SS". Hours are taken
// modulo 24 so arithmetic that wrapped past midnight still displays
// correctly.
func FormatClock(seconds int) string {
	hours := floorDiv(seconds, SecPerHour)
	seconds -= hours * SecPerHour
	minutes := floorDiv(seconds, SecPerMinute)
	seconds -= minutes * SecPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", mod(hours, 24), minutes, seconds)
}

// FormatClockShort renders seconds since midnight as "HH:MM".
func FormatClockShort(seconds int) string {
	hours := floorDiv(seconds, SecPerHour)
	minutes := floorDiv(seconds-hours*SecPerHour, SecPerMinute)
	return fmt.Sprintf("%02d:%02d", mod(hours, 24), minutes)
}

// SnapOptions control Snap's wrapping and clamping behaviour.
type SnapOptions struct {
	// WrapAround normalizes the hour into [0,24).
	WrapAround bool
	// MaxHours, when non-zero, clamps the pre-wrap result to ±MaxHours.
	// Intended for relative-time offsets, not clock display.
	MaxHours int
}

// Snap rounds the minutes component of a seconds value to the nearest
// multiple of stepMinutes (ties round up), carrying minute overflow into the
// hour.
func Snap(value, stepMinutes int, opts SnapOptions) int {
	hours := value / SecPerHour // truncates toward zero for either sign
	minutes := floorDiv(value-hours*SecPerHour, SecPerMinute)

	if minutes%stepMinutes != 0 {
		minutes = roundHalfUp(minutes, stepMinutes) * stepMinutes
	}

	if minutes >= 60 {
		hours++
		minutes -= 60
	} else if minutes < 0 {
		hours--
		minutes += 60
	}
	if opts.WrapAround {
		if hours >= 24 {
			hours -= 24
		} else if hours < 0 {
			hours += 24
		}
	}
	snapped := hours*SecPerHour + minutes*SecPerMinute
	if opts.MaxHours != 0 {
		if snapped > opts.MaxHours*SecPerHour {
			return opts.MaxHours * SecPerHour
		}
		if snapped < -opts.MaxHours*SecPerHour {
			return -opts.MaxHours * SecPerHour
		}
	}
	return snapped
}

// roundHalfUp rounds value/step to the nearest integer with ties going
// toward positive infinity, e.g. -5/2 -> -2.
func roundHalfUp(value, step int) int {
	return floorDiv(2*value+step, 2*step)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
