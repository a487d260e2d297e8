package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"wiser_schedule"
	"wiser_schedule/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func newScheduleRepo(t *testing.T) (*repository.ScheduleSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	repo := repository.NewScheduleSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestScheduleSQLite_List_CountsAssignments(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "type", "name", "assignments"}).
		AddRow(1, "Heating", "Downstairs", `[{"Id":3,"Name":"Kitchen"},{"Id":4,"Name":"Hall"}]`).
		AddRow(2, "Heating", "Upstairs", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, name, assignments FROM schedules")).
		WithArgs("hub1", "Heating").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "hub1", "Heating")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Assignments != 2 || got[1].Assignments != 0 {
		t.Fatalf("assignment counts wrong: %+v", got)
	}
	if got[0].Name != "Downstairs" || got[0].Type != "Heating" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
}

func TestScheduleSQLite_List_NoTypeFilter(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "type", "name", "assignments"}).
		AddRow(5, "Lighting", "Porch", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, name, assignments FROM schedules WHERE hub = ? ORDER BY name ASC")).
		WithArgs("hub1").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "hub1", "  ")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Type != "Lighting" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestScheduleSQLite_Get_UnmarshalsDays(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	days := `[{"day":"Monday","slots":[{"Time":"06:00","Setpoint":"19"}]}]`
	rows := sqlmock.NewRows([]string{"id", "type", "sub_type", "name", "assignments", "days"}).
		AddRow(9, "Heating", "", "Main", `[{"Id":3,"Name":"Kitchen"}]`, days)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, sub_type, name, assignments, days")).
		WithArgs("hub1", "Heating", 9).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "hub1", "Heating", 9)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil || got.ID != 9 || got.Name != "Main" {
		t.Fatalf("unexpected schedule: %+v", got)
	}
	if len(got.Assignments) != 1 || got.Assignments[0].Name != "Kitchen" {
		t.Fatalf("assignments not decoded: %+v", got.Assignments)
	}
	if len(got.Days) != 1 || got.Days[0].Slots[0].Time != "06:00" {
		t.Fatalf("days not decoded: %+v", got.Days)
	}
}

func TestScheduleSQLite_Get_NotFoundReturnsNil(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, type, sub_type, name, assignments, days")).
		WithArgs("hub1", "Heating", 404).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "hub1", "Heating", 404)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for a missing schedule, got %+v", got)
	}
}

func TestScheduleSQLite_Create_ReturnsNewID(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	s := &wiser_schedule.Schedule{
		Name: "New", Type: "OnOff",
		Days: wiser_schedule.EmptyWeek(),
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schedules")).
		WithArgs("hub1", "OnOff", "", "New", "null", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), "hub1", s)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 11 {
		t.Fatalf("id = %d, want 11", id)
	}
}

func TestScheduleSQLite_Save_MissingRowIsNotFound(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	s := &wiser_schedule.Schedule{ID: 3, Name: "Main", Type: "Heating", Days: wiser_schedule.EmptyWeek()}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Save(context.Background(), "hub1", s); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleSQLite_Rename(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules SET name=?")).
		WithArgs("Renamed", sqlmock.AnyArg(), "hub1", "Heating", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Rename(context.Background(), "hub1", "Heating", 3, "Renamed"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
}

func TestScheduleSQLite_Delete(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedules")).
		WithArgs("hub1", "Heating", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "hub1", "Heating", 3); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestScheduleSQLite_SetAssignments_MarshalsJSON(t *testing.T) {
	repo, mock, cleanup := newScheduleRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules SET assignments=?")).
		WithArgs(`[{"Id":3,"Name":"Kitchen"}]`, sqlmock.AnyArg(), "hub1", "Heating", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetAssignments(context.Background(), "hub1", "Heating", 3,
		[]wiser_schedule.ScheduleAssignment{{ID: 3, Name: "Kitchen"}})
	if err != nil {
		t.Fatalf("SetAssignments() error = %v", err)
	}
}
