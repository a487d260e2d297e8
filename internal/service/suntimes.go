package service

import (
	"context"
	"errors"
	"fmt"

	"wiser_schedule"
	"wiser_schedule/internal/repository"
	"wiser_schedule/internal/timeline"
)

// ErrBadSunTimes reports an update that does not cover the whole week with
// parseable clock times.
var ErrBadSunTimes = errors.New("sun times must list seven parseable clock times per event")

// SunTimesService stores per-hub sunrise/sunset tables. Schedules with
// special slots pick up new times on their next load.
type SunTimesService struct {
	suntimes repository.SunTimesRepo
	updates  *Broadcaster
}

func NewSunTimesService(suntimes repository.SunTimesRepo, updates *Broadcaster) *SunTimesService {
	return &SunTimesService{suntimes: suntimes, updates: updates}
}

var _ SunTimes = (*SunTimesService)(nil)

func (s *SunTimesService) Get(ctx context.Context, hub string) (wiser_schedule.SunTimes, error) {
	return s.suntimes.Get(ctx, hub)
}

func (s *SunTimesService) Set(ctx context.Context, hub string, st wiser_schedule.SunTimes) error {
	for _, list := range [][]string{st.Sunrises, st.Sunsets} {
		if len(list) != len(wiser_schedule.Days) {
			return ErrBadSunTimes
		}
		for _, clock := range list {
			if _, err := timeline.ParseClock(clock); err != nil {
				return fmt.Errorf("%w: %v", ErrBadSunTimes, err)
			}
		}
	}
	if err := s.suntimes.Set(ctx, hub, st); err != nil {
		return err
	}
	s.updates.Publish(Update{Event: EventWiserUpdated, Hub: hub})
	return nil
}

func (s *SunTimesService) Hubs(ctx context.Context) ([]string, error) {
	return s.suntimes.Hubs(ctx)
}
