package service

import (
	"context"
	"errors"
	"testing"

	"wiser_schedule"
)

func TestSunTimesService_Set_ValidatesWeekCoverage(t *testing.T) {
	svc := NewSunTimesService(&fakeSunTimesRepo{}, NewBroadcaster())

	short := wiser_schedule.SunTimes{Sunrises: []string{"06:00"}, Sunsets: []string{"20:00"}}
	if err := svc.Set(context.Background(), "hub1", short); !errors.Is(err, ErrBadSunTimes) {
		t.Fatalf("expected ErrBadSunTimes, got %v", err)
	}

	bad := wiser_schedule.DefaultSunTimes()
	bad.Sunsets[3] = "Sunset"
	if err := svc.Set(context.Background(), "hub1", bad); !errors.Is(err, ErrBadSunTimes) {
		t.Fatalf("expected ErrBadSunTimes for unparseable clock, got %v", err)
	}
}

func TestSunTimesService_Set_StoresAndNotifies(t *testing.T) {
	repo := &fakeSunTimesRepo{}
	updates := NewBroadcaster()
	sub := updates.Subscribe()
	svc := NewSunTimesService(repo, updates)

	st := wiser_schedule.DefaultSunTimes()
	st.Sunrises[0] = "05:45"
	if err := svc.Set(context.Background(), "hub1", st); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if len(repo.sets) != 1 || repo.sets[0] != "hub1" {
		t.Fatalf("store not called: %v", repo.sets)
	}
	got, err := svc.Get(context.Background(), "hub1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Sunrises[0] != "05:45" {
		t.Fatalf("updated sunrise lost: %+v", got)
	}
	select {
	case u := <-sub:
		if u.Event != EventWiserUpdated {
			t.Fatalf("unexpected update: %+v", u)
		}
	default:
		t.Fatalf("expected an update broadcast")
	}
}
