package repository

import (
	"context"
	"database/sql"

	"wiser_schedule"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*wiser_schedule.User, error)
}

type ScheduleRepo interface {
	List(ctx context.Context, hub, scheduleType string) ([]wiser_schedule.ScheduleListItem, error)
	Get(ctx context.Context, hub, scheduleType string, id int) (*wiser_schedule.Schedule, error)
	Create(ctx context.Context, hub string, s *wiser_schedule.Schedule) (int, error)
	Save(ctx context.Context, hub string, s *wiser_schedule.Schedule) error
	Rename(ctx context.Context, hub, scheduleType string, id int, name string) error
	Delete(ctx context.Context, hub, scheduleType string, id int) error
	SetAssignments(ctx context.Context, hub, scheduleType string, id int, assignments []wiser_schedule.ScheduleAssignment) error
}

type SunTimesRepo interface {
	Get(ctx context.Context, hub string) (wiser_schedule.SunTimes, error)
	Set(ctx context.Context, hub string, st wiser_schedule.SunTimes) error
	Hubs(ctx context.Context) ([]string, error)
}

type EntityRepo interface {
	Rooms(ctx context.Context, hub string) ([]wiser_schedule.Entity, error)
	Devices(ctx context.Context, hub, subType string) ([]wiser_schedule.Entity, error)
}

type Repository struct {
	Schedules ScheduleRepo
	SunTimes  SunTimesRepo
	Entities  EntityRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Schedules: NewScheduleSQLite(db),
		SunTimes:  NewSunTimesSQLite(db),
		Entities:  NewEntitySQLite(db),
		Auth:      NewUserRepository(db),
	}
}
