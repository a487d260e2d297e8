package wiser_schedule

// Schedule types supported by the hub.
const (
	TypeHeating  = "Heating"
	TypeOnOff    = "OnOff"
	TypeLighting = "Lighting"
	TypeShutters = "Shutters"
)

// ScheduleTypes lists every schedule type in display order.
var ScheduleTypes = []string{TypeHeating, TypeOnOff, TypeLighting, TypeShutters}

// Special time markers a slot boundary may track instead of a clock time.
const (
	SpecialSunrise = "Sunrise"
	SpecialSunset  = "Sunset"
)

// SpecialTimes lists the recognised markers.
var SpecialTimes = []string{SpecialSunrise, SpecialSunset}

// Pseudo-days accepted by the copy-day operation.
const (
	CopyWeekdays = "Weekdays"
	CopyWeekend  = "Weekend"
)

// Weekdays and Weekends partition the week; Days is the canonical order
// used everywhere a weekday index is needed.
var (
	Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	Weekends = []string{"Saturday", "Sunday"}
	Days     = append(append([]string{}, Weekdays...), Weekends...)
)

// DayIndex returns the position of a weekday name within Days, or -1.
func DayIndex(day string) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return -1
}

// ScheduleSlot marks the boundary where the controlled value changes:
// starting at Time the value becomes Setpoint. The slot's end is implicit
// (the next slot's start, or end of day). If SpecialTime is set, Time holds
// the currently resolved clock time for that marker on the slot's weekday.
type ScheduleSlot struct {
	Time        string `json:"Time"`
	Setpoint    string `json:"Setpoint"`
	SpecialTime string `json:"SpecialTime,omitempty"`
}

// ScheduleDay is one weekday's ordered slot list. An empty list means the
// value carried over from a prior day applies all day.
type ScheduleDay struct {
	Day   string         `json:"day"`
	Slots []ScheduleSlot `json:"slots"`
}

// ScheduleAssignment links a schedule to a room or device.
type ScheduleAssignment struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

// Schedule is a named, typed collection of per-day slot lists.
type Schedule struct {
	ID          int                  `json:"Id"`
	Name        string               `json:"Name"`
	Type        string               `json:"Type"`
	SubType     string               `json:"SubType"`
	Assignments []ScheduleAssignment `json:"Assignments"`
	Days        []ScheduleDay        `json:"ScheduleData"`
}

// ScheduleListItem is the overview row for a schedule.
type ScheduleListItem struct {
	ID          int    `json:"Id"`
	Type        string `json:"Type"`
	Name        string `json:"Name"`
	Assignments int    `json:"Assignments"`
}

// SunTimes carries per-weekday sunrise and sunset clock times, indexed in
// Days order. Read-only for the editor core.
type SunTimes struct {
	Sunrises []string `json:"Sunrises"`
	Sunsets  []string `json:"Sunsets"`
}

// DefaultSunTimes seeds a hub that has never reported astronomical data.
func DefaultSunTimes() SunTimes {
	st := SunTimes{}
	for range Days {
		st.Sunrises = append(st.Sunrises, "06:30")
		st.Sunsets = append(st.Sunsets, "19:30")
	}
	return st
}

// Entity is a room or device a schedule can be assigned to.
type Entity struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}

// EmptyWeek builds seven empty day lists in canonical order.
func EmptyWeek() []ScheduleDay {
	week := make([]ScheduleDay, len(Days))
	for i, d := range Days {
		week[i] = ScheduleDay{Day: d, Slots: []ScheduleSlot{}}
	}
	return week
}

// Day returns the schedule's day entry by name, or an empty day so callers
// never have to special-case a missing weekday.
func (s *Schedule) Day(name string) ScheduleDay {
	for _, d := range s.Days {
		if d.Day == name {
			return d
		}
	}
	return ScheduleDay{Day: name, Slots: []ScheduleSlot{}}
}

// SetDay replaces the named day's slot list.
func (s *Schedule) SetDay(name string, slots []ScheduleSlot) {
	for i := range s.Days {
		if s.Days[i].Day == name {
			s.Days[i].Slots = slots
			return
		}
	}
	s.Days = append(s.Days, ScheduleDay{Day: name, Slots: slots})
}

// HasSlots reports whether any day of the schedule holds at least one slot.
func (s *Schedule) HasSlots() bool {
	for _, d := range s.Days {
		if len(d.Slots) > 0 {
			return true
		}
	}
	return false
}

// Clone deep-copies the schedule. Edit mode must never alias the display
// copy, so entering an edit session always starts from a Clone.
func (s *Schedule) Clone() *Schedule {
	out := &Schedule{
		ID:      s.ID,
		Name:    s.Name,
		Type:    s.Type,
		SubType: s.SubType,
	}
	if s.Assignments != nil {
		out.Assignments = append([]ScheduleAssignment{}, s.Assignments...)
	}
	out.Days = make([]ScheduleDay, len(s.Days))
	for i, d := range s.Days {
		out.Days[i] = ScheduleDay{Day: d.Day, Slots: append([]ScheduleSlot{}, d.Slots...)}
	}
	return out
}

// DefaultSetpoint is the value a freshly added slot receives.
func DefaultSetpoint(scheduleType string) string {
	switch scheduleType {
	case TypeOnOff:
		return "Off"
	case TypeLighting:
		return "0"
	case TypeShutters:
		return "100"
	default:
		return "19"
	}
}

// SetpointUnit is the display suffix for a schedule type's values.
func SetpointUnit(scheduleType string) string {
	switch scheduleType {
	case TypeHeating:
		return "°C"
	case TypeLighting, TypeShutters:
		return "%"
	default:
		return ""
	}
}

// SupportsSpecialTimes reports whether slots of this schedule type may be
// pinned to sunrise/sunset.
func SupportsSpecialTimes(scheduleType string) bool {
	return scheduleType == TypeLighting || scheduleType == TypeShutters
}
