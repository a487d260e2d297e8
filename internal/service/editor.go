package service

import (
	"context"
	"errors"
	"sync"

	"wiser_schedule"
	"wiser_schedule/internal/repository"
	"wiser_schedule/internal/timeline"

	"github.com/google/uuid"
)

// ErrSessionNotFound reports an unknown or already closed editor session.
var ErrSessionNotFound = errors.New("editor session not found")

// EditorView is the render state handed back after every editor operation.
type EditorView struct {
	Session    string                   `json:"session"`
	Schedule   *wiser_schedule.Schedule `json:"schedule"`
	ActiveDay  string                   `json:"activeDay,omitempty"`
	ActiveSlot int                      `json:"activeSlot"`
	Editing    bool                     `json:"editing"`
}

// EditorService keeps one timeline editor per open session. Sessions live in
// memory only; a restart drops them.
type EditorService struct {
	schedules Schedules
	suntimes  repository.SunTimesRepo
	updates   *Broadcaster
	step      int

	mu       sync.Mutex
	sessions map[string]*editorSession
}

type editorSession struct {
	id           string
	hub          string
	scheduleType string
	editor       *timeline.Editor
}

func NewEditorService(schedules Schedules, suntimes repository.SunTimesRepo, updates *Broadcaster, stepMinutes int) *EditorService {
	return &EditorService{
		schedules: schedules,
		suntimes:  suntimes,
		updates:   updates,
		step:      stepMinutes,
		sessions:  make(map[string]*editorSession),
	}
}

var _ Editors = (*EditorService)(nil)

// Open loads the schedule, snapshots it into a fresh editor session and
// returns the session's initial view.
func (s *EditorService) Open(ctx context.Context, hub, scheduleType string, id int) (*EditorView, error) {
	sched, err := s.schedules.Get(ctx, hub, scheduleType, id)
	if err != nil {
		return nil, err
	}
	st, err := s.suntimes.Get(ctx, hub)
	if err != nil {
		return nil, err
	}

	session := uuid.NewString()
	editor := timeline.NewEditor(sched, st, timeline.Options{
		StepMinutes: s.step,
		OnChanged: func(working *wiser_schedule.Schedule) {
			// Subscribers marshal the payload on their own goroutines, so
			// the live working copy must never leave the editor's lock.
			s.updates.Publish(Update{
				Event:   EventScheduleChanged,
				Hub:     hub,
				Session: session,
				Data:    working.Clone(),
			})
		},
	})
	editor.BeginEdit()

	es := &editorSession{id: session, hub: hub, scheduleType: scheduleType, editor: editor}
	s.mu.Lock()
	s.sessions[session] = es
	s.mu.Unlock()
	return s.view(es), nil
}

func (s *EditorService) lookup(session string) (*editorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	es, ok := s.sessions[session]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return es, nil
}

func (s *EditorService) view(es *editorSession) *EditorView {
	day, slot := es.editor.Selection()
	return &EditorView{
		Session:    es.id,
		Schedule:   es.editor.Snapshot(),
		ActiveDay:  day,
		ActiveSlot: slot,
		Editing:    es.editor.Editing(),
	}
}

func (s *EditorService) Snapshot(session string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) Select(session, day string, slot int) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.SelectSlot(day, slot); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) AddSlot(session string, pos timeline.AddPosition) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.AddSlot(pos); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) RemoveSlot(session string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.RemoveSlot(); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) SetSetpoint(session, setpoint string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.SetSetpoint(setpoint); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) SetSpecialTime(session, marker string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.SetSpecialTime(marker); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) CopyDay(session, target string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.CopyDay(target); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) BeginDrag(session string, geom timeline.TrackGeometry) error {
	es, err := s.lookup(session)
	if err != nil {
		return err
	}
	return es.editor.BeginDrag(geom)
}

func (s *EditorService) Drag(session string, pageX float64) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if _, err := es.editor.Drag(pageX); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

func (s *EditorService) EndDrag(session string) (*EditorView, error) {
	es, err := s.lookup(session)
	if err != nil {
		return nil, err
	}
	if err := es.editor.EndDrag(); err != nil {
		return nil, err
	}
	return s.view(es), nil
}

// Save persists the session's working copy through the schedule store and
// closes the session on success.
func (s *EditorService) Save(ctx context.Context, session string) error {
	es, err := s.lookup(session)
	if err != nil {
		return err
	}
	err = es.editor.Save(func(out *wiser_schedule.Schedule) error {
		return s.schedules.Save(ctx, es.hub, out)
	})
	if err != nil {
		return err
	}
	s.close(session)
	return nil
}

// Cancel discards the working copy and closes the session.
func (s *EditorService) Cancel(session string) error {
	es, err := s.lookup(session)
	if err != nil {
		return err
	}
	es.editor.Cancel()
	s.close(session)
	return nil
}

func (s *EditorService) close(session string) {
	s.mu.Lock()
	delete(s.sessions, session)
	s.mu.Unlock()
}
