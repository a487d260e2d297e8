package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wiser_schedule"
	"wiser_schedule/internal/repository"
	"wiser_schedule/internal/timeline"
)

// Domain errors for schedule store flows.
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrUnknownType      = errors.New("unknown schedule type")
	ErrEmptyName        = errors.New("schedule name is empty")
	ErrNoTimeSlots      = errors.New("the schedule has no time slots")
)

// ScheduleService implements the store operations on top of the repository,
// canonicalizing day lists on the way in and out.
type ScheduleService struct {
	schedules repository.ScheduleRepo
	suntimes  repository.SunTimesRepo
	updates   *Broadcaster
}

func NewScheduleService(schedules repository.ScheduleRepo, suntimes repository.SunTimesRepo, updates *Broadcaster) *ScheduleService {
	return &ScheduleService{schedules: schedules, suntimes: suntimes, updates: updates}
}

var _ Schedules = (*ScheduleService)(nil)

func validType(scheduleType string) error {
	for _, t := range wiser_schedule.ScheduleTypes {
		if t == scheduleType {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, scheduleType)
}

func (s *ScheduleService) List(ctx context.Context, hub, scheduleType string) ([]wiser_schedule.ScheduleListItem, error) {
	if scheduleType != "" {
		if err := validType(scheduleType); err != nil {
			return nil, err
		}
	}
	return s.schedules.List(ctx, hub, scheduleType)
}

// Get loads a schedule with special markers resolved against the hub's
// current sun times, ready for display.
func (s *ScheduleService) Get(ctx context.Context, hub, scheduleType string, id int) (*wiser_schedule.Schedule, error) {
	if err := validType(scheduleType); err != nil {
		return nil, err
	}
	sched, err := s.schedules.Get(ctx, hub, scheduleType, id)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, ErrScheduleNotFound
	}
	st, err := s.suntimes.Get(ctx, hub)
	if err != nil {
		return nil, err
	}
	return timeline.CanonicalizeSchedule(sched, timeline.ForLoad, st), nil
}

// Create stores a named, typed schedule with an empty week.
func (s *ScheduleService) Create(ctx context.Context, hub, scheduleType, name string) (int, error) {
	if err := validType(scheduleType); err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyName
	}
	id, err := s.schedules.Create(ctx, hub, &wiser_schedule.Schedule{
		Name: name,
		Type: scheduleType,
		Days: wiser_schedule.EmptyWeek(),
	})
	if err != nil {
		return 0, err
	}
	s.notify(hub)
	return id, nil
}

func (s *ScheduleService) Delete(ctx context.Context, hub, scheduleType string, id int) error {
	if err := validType(scheduleType); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, hub, scheduleType, id); err != nil {
		return mapNotFound(err)
	}
	s.notify(hub)
	return nil
}

func (s *ScheduleService) Rename(ctx context.Context, hub, scheduleType string, id int, name string) error {
	if err := validType(scheduleType); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if err := s.schedules.Rename(ctx, hub, scheduleType, id, name); err != nil {
		return mapNotFound(err)
	}
	s.notify(hub)
	return nil
}

// Copy overwrites the target schedule's day lists with the source's. Name,
// type and assignments of the target are preserved.
func (s *ScheduleService) Copy(ctx context.Context, hub, scheduleType string, fromID, toID int) error {
	if err := validType(scheduleType); err != nil {
		return err
	}
	src, err := s.schedules.Get(ctx, hub, scheduleType, fromID)
	if err != nil {
		return err
	}
	dst, err := s.schedules.Get(ctx, hub, scheduleType, toID)
	if err != nil {
		return err
	}
	if src == nil || dst == nil {
		return ErrScheduleNotFound
	}
	dst.Days = src.Clone().Days
	if err := s.schedules.Save(ctx, hub, dst); err != nil {
		return mapNotFound(err)
	}
	s.notify(hub)
	return nil
}

func (s *ScheduleService) Assign(ctx context.Context, hub, scheduleType string, id int, assignments []wiser_schedule.ScheduleAssignment) error {
	if err := validType(scheduleType); err != nil {
		return err
	}
	if err := s.schedules.SetAssignments(ctx, hub, scheduleType, id, assignments); err != nil {
		return mapNotFound(err)
	}
	s.notify(hub)
	return nil
}

// Save validates the schedule, collapses special markers back to storage
// form and persists it.
func (s *ScheduleService) Save(ctx context.Context, hub string, sched *wiser_schedule.Schedule) error {
	if err := validType(sched.Type); err != nil {
		return err
	}
	if !sched.HasSlots() {
		return ErrNoTimeSlots
	}
	st, err := s.suntimes.Get(ctx, hub)
	if err != nil {
		return err
	}
	out := timeline.CanonicalizeSchedule(sched.Clone(), timeline.ForSave, st)
	if err := s.schedules.Save(ctx, hub, out); err != nil {
		return mapNotFound(err)
	}
	s.notify(hub)
	return nil
}

func (s *ScheduleService) notify(hub string) {
	s.updates.Publish(Update{Event: EventWiserUpdated, Hub: hub})
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrScheduleNotFound
	}
	return err
}
