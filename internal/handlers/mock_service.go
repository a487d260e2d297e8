package handlers

import (
	"context"
	"net/http"

	"wiser_schedule"
	"wiser_schedule/internal/service"
	"wiser_schedule/internal/timeline"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockSchedules struct {
	items   []wiser_schedule.ScheduleListItem
	getResp *wiser_schedule.Schedule
	err     error

	createdType string
	createdName string
	createID    int
	savedCalls  []*wiser_schedule.Schedule
	deletedIDs  []int
	renamedTo   string
	copiedTo    int
	assigned    []wiser_schedule.ScheduleAssignment
}

func (m *mockSchedules) List(ctx context.Context, hub, scheduleType string) ([]wiser_schedule.ScheduleListItem, error) {
	return m.items, m.err
}
func (m *mockSchedules) Get(ctx context.Context, hub, scheduleType string, id int) (*wiser_schedule.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.getResp, nil
}
func (m *mockSchedules) Create(ctx context.Context, hub, scheduleType, name string) (int, error) {
	m.createdType = scheduleType
	m.createdName = name
	return m.createID, m.err
}
func (m *mockSchedules) Delete(ctx context.Context, hub, scheduleType string, id int) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.err
}
func (m *mockSchedules) Rename(ctx context.Context, hub, scheduleType string, id int, name string) error {
	m.renamedTo = name
	return m.err
}
func (m *mockSchedules) Copy(ctx context.Context, hub, scheduleType string, fromID, toID int) error {
	m.copiedTo = toID
	return m.err
}
func (m *mockSchedules) Assign(ctx context.Context, hub, scheduleType string, id int, as []wiser_schedule.ScheduleAssignment) error {
	m.assigned = as
	return m.err
}
func (m *mockSchedules) Save(ctx context.Context, hub string, s *wiser_schedule.Schedule) error {
	m.savedCalls = append(m.savedCalls, s)
	return m.err
}

type mockSunTimes struct {
	st      wiser_schedule.SunTimes
	hubs    []string
	err     error
	lastSet wiser_schedule.SunTimes
}

func (m *mockSunTimes) Get(ctx context.Context, hub string) (wiser_schedule.SunTimes, error) {
	return m.st, m.err
}
func (m *mockSunTimes) Set(ctx context.Context, hub string, st wiser_schedule.SunTimes) error {
	m.lastSet = st
	return m.err
}
func (m *mockSunTimes) Hubs(ctx context.Context) ([]string, error) {
	return m.hubs, m.err
}

type mockEntities struct {
	rooms   []wiser_schedule.Entity
	devices []wiser_schedule.Entity
	err     error
	subType string
}

func (m *mockEntities) Rooms(ctx context.Context, hub string) ([]wiser_schedule.Entity, error) {
	return m.rooms, m.err
}
func (m *mockEntities) Devices(ctx context.Context, hub, subType string) ([]wiser_schedule.Entity, error) {
	m.subType = subType
	return m.devices, m.err
}

type mockEditors struct {
	view *service.EditorView
	err  error

	lastPos      timeline.AddPosition
	lastSetpoint string
	lastMarker   string
	lastTarget   string
	lastGeom     timeline.TrackGeometry
	lastPageX    float64
	saved        []string
	cancelled    []string
}

func (m *mockEditors) Open(ctx context.Context, hub, scheduleType string, id int) (*service.EditorView, error) {
	return m.view, m.err
}
func (m *mockEditors) Snapshot(session string) (*service.EditorView, error) { return m.view, m.err }
func (m *mockEditors) Select(session, day string, slot int) (*service.EditorView, error) {
	return m.view, m.err
}
func (m *mockEditors) AddSlot(session string, pos timeline.AddPosition) (*service.EditorView, error) {
	m.lastPos = pos
	return m.view, m.err
}
func (m *mockEditors) RemoveSlot(session string) (*service.EditorView, error) { return m.view, m.err }
func (m *mockEditors) SetSetpoint(session, setpoint string) (*service.EditorView, error) {
	m.lastSetpoint = setpoint
	return m.view, m.err
}
func (m *mockEditors) SetSpecialTime(session, marker string) (*service.EditorView, error) {
	m.lastMarker = marker
	return m.view, m.err
}
func (m *mockEditors) CopyDay(session, target string) (*service.EditorView, error) {
	m.lastTarget = target
	return m.view, m.err
}
func (m *mockEditors) BeginDrag(session string, geom timeline.TrackGeometry) error {
	m.lastGeom = geom
	return m.err
}
func (m *mockEditors) Drag(session string, pageX float64) (*service.EditorView, error) {
	m.lastPageX = pageX
	return m.view, m.err
}
func (m *mockEditors) EndDrag(session string) (*service.EditorView, error) { return m.view, m.err }
func (m *mockEditors) Save(ctx context.Context, session string) error {
	m.saved = append(m.saved, session)
	return m.err
}
func (m *mockEditors) Cancel(session string) error {
	m.cancelled = append(m.cancelled, session)
	return m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	if s.Updates == nil {
		s.Updates = service.NewBroadcaster()
	}
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
