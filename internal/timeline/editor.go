package timeline

import (
	"errors"
	"sync"
	"time"

	"wiser_schedule"
)

// Selection sentinels. LeadIn is the striped carry-over segment rendered
// before a day's first boundary; it is selectable only when the day is empty.
const (
	NoSelection = -99
	LeadIn      = -1
)

// MaxSlotsPerDay is the practical ceiling enforced by the add operation.
const MaxSlotsPerDay = 24

// DefaultStepMinutes is the boundary snapping granularity.
const DefaultStepMinutes = 5

// clickCooldown suppresses the click that trails a pointer release so it is
// not misread as a new selection toggle.
const clickCooldown = 100 * time.Millisecond

// AddPosition says where AddSlot inserts relative to the active slot.
type AddPosition int

const (
	AddBefore AddPosition = iota
	AddAfter
)

var (
	ErrNotEditing         = errors.New("editor is not in edit mode")
	ErrNoSelection        = errors.New("no slot is selected")
	ErrDayFull            = errors.New("day already holds the maximum number of slots")
	ErrSpecialUnsupported = errors.New("schedule type does not support special times")
	ErrSaveInProgress     = errors.New("a save is already in progress")
	ErrNoTimeSlots        = errors.New("the schedule has no time slots")
	ErrNotDragging        = errors.New("no drag in progress")
)

// ChangeFunc receives the mutated working copy after every edit operation.
type ChangeFunc func(*wiser_schedule.Schedule)

// SelectFunc receives the selection after every selection change.
type SelectFunc func(day string, slot int)

// Options tune a new editor. Zero values fall back to defaults.
type Options struct {
	StepMinutes int
	MaxSlots    int
	OnChanged   ChangeFunc
	OnSelected  SelectFunc
	Now         func() time.Time // injectable for testing
}

// Editor owns one schedule's timeline state: the display copy, the edit-mode
// working copy, the global selection and the drag session. All mutation runs
// through its mutex, the server-side stand-in for the single UI event queue.
type Editor struct {
	mu sync.Mutex

	display  *wiser_schedule.Schedule
	working  *wiser_schedule.Schedule
	suntimes wiser_schedule.SunTimes

	step     int
	maxSlots int

	editing     bool
	activeDay   string
	activeSlot  int
	drag        *dragSession
	saving      bool
	lastDragEnd time.Time

	now        func() time.Time
	onChanged  ChangeFunc
	onSelected SelectFunc
}

// NewEditor wraps a loaded (ForLoad-canonicalized) schedule. The editor
// starts in viewing mode.
func NewEditor(schedule *wiser_schedule.Schedule, st wiser_schedule.SunTimes, opts Options) *Editor {
	e := &Editor{
		display:    schedule,
		suntimes:   st,
		step:       opts.StepMinutes,
		maxSlots:   opts.MaxSlots,
		activeSlot: NoSelection,
		now:        opts.Now,
		onChanged:  opts.OnChanged,
		onSelected: opts.OnSelected,
	}
	if e.step <= 0 {
		e.step = DefaultStepMinutes
	}
	if e.maxSlots <= 0 {
		e.maxSlots = MaxSlotsPerDay
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Schedule returns the copy the caller should render: the working copy in
// edit mode, the display copy otherwise.
func (e *Editor) Schedule() *wiser_schedule.Schedule {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing {
		return e.working
	}
	return e.display
}

// Snapshot returns a deep copy of the rendered schedule, taken under the
// editor's lock. Safe to marshal or hand to another goroutine while edits
// continue.
func (e *Editor) Snapshot() *wiser_schedule.Schedule {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing {
		return e.working.Clone()
	}
	return e.display.Clone()
}

// Editing reports whether an edit session is open.
func (e *Editor) Editing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing
}

// Selection returns the active (day, slot) pair; slot is NoSelection when
// nothing is selected.
func (e *Editor) Selection() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeDay, e.activeSlot
}

// BeginEdit snapshots the schedule into a working copy. The display copy is
// never mutated while editing.
func (e *Editor) BeginEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing {
		return
	}
	e.working = e.display.Clone()
	e.editing = true
}

// Cancel discards the working copy and clears the selection.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.working = nil
	e.editing = false
	e.drag = nil
	e.clearSelection()
}

// SelectSlot toggles the selection: selecting the already-active (day, slot)
// clears it. A click arriving within the post-drag cooldown is ignored.
func (e *Editor) SelectSlot(day string, slot int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.now().Sub(e.lastDragEnd) < clickCooldown {
		return nil
	}
	if day == e.activeDay && slot == e.activeSlot {
		e.clearSelection()
	} else {
		e.activeDay = day
		e.activeSlot = slot
	}
	if e.onSelected != nil {
		e.onSelected(e.activeDay, e.activeSlot)
	}
	return nil
}

func (e *Editor) clearSelection() {
	e.activeDay = ""
	e.activeSlot = NoSelection
}

// AddSlot inserts a slot relative to the active one:
//
//   - empty day: a single default slot at 06:00 (snapped to the step size);
//   - before an ordinary slot: the interval splits, the new default slot
//     takes over the old start and the old slot moves to the snapped midpoint;
//   - before a special-time slot: the new slot lands one hour before the
//     resolved time, the anchored slot is left untouched;
//   - after: a default slot at the snapped midpoint of the active interval,
//     with the selection following the original slot.
func (e *Editor) AddSlot(pos AddPosition) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.activeSlot < LeadIn || e.activeDay == "" {
		return ErrNoSelection
	}
	day := e.working.Day(e.activeDay)
	if len(day.Slots) >= e.maxSlots {
		return ErrDayFull
	}

	if len(day.Slots) == 0 {
		first := Snap(6*SecPerHour, e.step, SnapOptions{WrapAround: true})
		e.working.SetDay(e.activeDay, []wiser_schedule.ScheduleSlot{{
			Time:     FormatClockShort(first),
			Setpoint: wiser_schedule.DefaultSetpoint(e.working.Type),
		}})
		e.activeSlot = 0
		e.emitChanged()
		return nil
	}
	if e.activeSlot < 0 {
		// Only the first slot of an empty day may be created without a
		// real selection.
		return ErrNoSelection
	}

	active := day.Slots[e.activeSlot]
	start, err := ParseClock(active.Time)
	if err != nil {
		return err
	}
	end, err := ParseClock(EffectiveEnd(day, e.activeSlot))
	if err != nil {
		return err
	}
	if end < start {
		end += SecPerDay
	}
	midpoint := Snap(start+(end-start)/2, e.step, SnapOptions{WrapAround: true})
	fresh := wiser_schedule.ScheduleSlot{
		Setpoint: wiser_schedule.DefaultSetpoint(e.working.Type),
	}

	slots := day.Slots
	switch {
	case pos == AddBefore && active.SpecialTime == "":
		// Split: the new slot takes the old start, the old slot moves to
		// the midpoint of its original interval.
		fresh.Time = FormatClockShort(start)
		moved := active
		moved.Time = FormatClockShort(midpoint)
		replaced := append([]wiser_schedule.ScheduleSlot{}, slots[:e.activeSlot]...)
		replaced = append(replaced, fresh, moved)
		slots = append(replaced, slots[e.activeSlot+1:]...)
	case pos == AddBefore:
		// Anchored boundary: place the new slot exactly one hour earlier,
		// leaving the special slot's marker and resolved time alone.
		fresh.Time = FormatClockShort(Snap(start-SecPerHour, e.step, SnapOptions{WrapAround: true}))
		slots = insertSlots(slots, e.activeSlot, fresh)
	default:
		fresh.Time = FormatClockShort(midpoint)
		slots = insertSlots(slots, e.activeSlot+1, fresh)
		e.activeSlot++
	}
	e.working.SetDay(e.activeDay, slots)
	e.emitChanged()
	return nil
}

// insertSlots returns a new slice with extra slots spliced in at index.
func insertSlots(slots []wiser_schedule.ScheduleSlot, index int, extra ...wiser_schedule.ScheduleSlot) []wiser_schedule.ScheduleSlot {
	out := make([]wiser_schedule.ScheduleSlot, 0, len(slots)+len(extra))
	out = append(out, slots[:index]...)
	out = append(out, extra...)
	out = append(out, slots[index:]...)
	return out
}

// RemoveSlot deletes the active slot. Removing the last slot moves the
// selection to the new last index. A missing selection is a silent no-op.
func (e *Editor) RemoveSlot() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.activeSlot < 0 || e.activeDay == "" {
		return nil
	}
	day := e.working.Day(e.activeDay)
	if e.activeSlot >= len(day.Slots) {
		return nil
	}
	slots := append(append([]wiser_schedule.ScheduleSlot{}, day.Slots[:e.activeSlot]...), day.Slots[e.activeSlot+1:]...)
	e.working.SetDay(e.activeDay, slots)
	if e.activeSlot == len(slots) {
		e.activeSlot--
	}
	e.emitChanged()
	return nil
}

// SetSetpoint replaces the active slot's value in place. No selection, no-op.
func (e *Editor) SetSetpoint(setpoint string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.activeSlot < 0 || e.activeDay == "" {
		return nil
	}
	day := e.working.Day(e.activeDay)
	if e.activeSlot >= len(day.Slots) {
		return nil
	}
	day.Slots[e.activeSlot].Setpoint = setpoint
	e.working.SetDay(e.activeDay, day.Slots)
	e.emitChanged()
	return nil
}

// SetSpecialTime pins the active slot to a sunrise/sunset marker, resolves
// its clock time, re-canonicalizes the day and moves the selection to
// wherever the marker slot landed after sorting.
func (e *Editor) SetSpecialTime(marker string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if !wiser_schedule.SupportsSpecialTimes(e.working.Type) {
		return ErrSpecialUnsupported
	}
	if e.activeSlot < 0 || e.activeDay == "" {
		return nil
	}
	day := e.working.Day(e.activeDay)
	if e.activeSlot >= len(day.Slots) {
		return nil
	}
	if day.Slots[e.activeSlot].SpecialTime != marker {
		resolved, err := ResolveSpecial(marker, e.activeDay, e.suntimes)
		if err != nil {
			return err
		}
		day.Slots[e.activeSlot].SpecialTime = marker
		day.Slots[e.activeSlot].Time = resolved
	}
	canon := CanonicalizeDay(day, ForLoad, e.suntimes)
	e.working.SetDay(e.activeDay, canon.Slots)
	for i, slot := range canon.Slots {
		if slot.SpecialTime == marker {
			e.activeSlot = i
		}
	}
	e.emitChanged()
	return nil
}

// CopyDay duplicates the active day's slots onto the target: a weekday name,
// or the Weekdays/Weekend pseudo-days. The source is assumed canonical and
// copied verbatim.
func (e *Editor) CopyDay(target string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return ErrNotEditing
	}
	if e.activeDay == "" {
		return ErrNoSelection
	}
	var targets []string
	switch target {
	case wiser_schedule.CopyWeekdays:
		targets = wiser_schedule.Weekdays
	case wiser_schedule.CopyWeekend:
		targets = wiser_schedule.Weekends
	default:
		if wiser_schedule.DayIndex(target) < 0 {
			return errors.New("unknown copy target " + target)
		}
		targets = []string{target}
	}
	source := e.working.Day(e.activeDay).Slots
	for _, t := range targets {
		if t == e.activeDay {
			continue
		}
		e.working.SetDay(t, append([]wiser_schedule.ScheduleSlot{}, source...))
	}
	e.emitChanged()
	return nil
}

// Save validates the working copy, re-collapses special markers and hands
// the result to persist. A second save while one is outstanding is refused;
// the flag otherwise only drives the caller's progress indicator.
func (e *Editor) Save(persist func(*wiser_schedule.Schedule) error) error {
	e.mu.Lock()
	if !e.editing {
		e.mu.Unlock()
		return ErrNotEditing
	}
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInProgress
	}
	if !e.working.HasSlots() {
		e.mu.Unlock()
		return ErrNoTimeSlots
	}
	e.saving = true
	out := CanonicalizeSchedule(e.working.Clone(), ForSave, e.suntimes)
	e.mu.Unlock()

	err := persist(out)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		return err
	}
	e.display = CanonicalizeSchedule(out.Clone(), ForLoad, e.suntimes)
	e.working = nil
	e.editing = false
	e.clearSelection()
	return nil
}

func (e *Editor) emitChanged() {
	if e.onChanged != nil {
		e.onChanged(e.working)
	}
}
