package service

import (
	"context"

	"wiser_schedule"
	"wiser_schedule/internal/repository"
	"wiser_schedule/internal/timeline"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Schedules exposes the hub's schedule store. Reads hand out load-canonical
// schedules; Save re-collapses special markers before persisting.
type Schedules interface {
	List(ctx context.Context, hub, scheduleType string) ([]wiser_schedule.ScheduleListItem, error)
	Get(ctx context.Context, hub, scheduleType string, id int) (*wiser_schedule.Schedule, error)
	Create(ctx context.Context, hub, scheduleType, name string) (int, error)
	Delete(ctx context.Context, hub, scheduleType string, id int) error
	Rename(ctx context.Context, hub, scheduleType string, id int, name string) error
	Copy(ctx context.Context, hub, scheduleType string, fromID, toID int) error
	Assign(ctx context.Context, hub, scheduleType string, id int, assignments []wiser_schedule.ScheduleAssignment) error
	Save(ctx context.Context, hub string, s *wiser_schedule.Schedule) error
}

// SunTimes exposes per-hub sunrise/sunset tables.
type SunTimes interface {
	Get(ctx context.Context, hub string) (wiser_schedule.SunTimes, error)
	Set(ctx context.Context, hub string, st wiser_schedule.SunTimes) error
	Hubs(ctx context.Context) ([]string, error)
}

// Entities exposes assignment targets: rooms for heating, devices otherwise.
type Entities interface {
	Rooms(ctx context.Context, hub string) ([]wiser_schedule.Entity, error)
	Devices(ctx context.Context, hub, subType string) ([]wiser_schedule.Entity, error)
}

// Editors manages interactive editing sessions, one timeline editor per
// session id.
type Editors interface {
	Open(ctx context.Context, hub, scheduleType string, id int) (*EditorView, error)
	Snapshot(session string) (*EditorView, error)
	Select(session, day string, slot int) (*EditorView, error)
	AddSlot(session string, pos timeline.AddPosition) (*EditorView, error)
	RemoveSlot(session string) (*EditorView, error)
	SetSetpoint(session, setpoint string) (*EditorView, error)
	SetSpecialTime(session, marker string) (*EditorView, error)
	CopyDay(session, target string) (*EditorView, error)
	BeginDrag(session string, geom timeline.TrackGeometry) error
	Drag(session string, pageX float64) (*EditorView, error)
	EndDrag(session string) (*EditorView, error)
	Save(ctx context.Context, session string) error
	Cancel(session string) error
}

type Service struct {
	Schedules
	SunTimes
	Entities
	Editors
	Authorization
	Updates *Broadcaster
}

// NewService wires the repository layer into concrete services sharing one
// update broadcaster.
func NewService(repos *repository.Repository, signingKey string, stepMinutes int) *Service {
	updates := NewBroadcaster()
	schedules := NewScheduleService(repos.Schedules, repos.SunTimes, updates)
	return &Service{
		Schedules:     schedules,
		SunTimes:      NewSunTimesService(repos.SunTimes, updates),
		Entities:      NewEntityService(repos.Entities),
		Editors:       NewEditorService(schedules, repos.SunTimes, updates, stepMinutes),
		Authorization: NewAuthService(repos.Auth, signingKey),
		Updates:       updates,
	}
}
