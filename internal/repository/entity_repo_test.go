package repository_test

import (
	"context"
	"regexp"
	"testing"

	"wiser_schedule/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestEntitySQLite_RoomsAndDevices(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := repository.NewEntitySQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM entities WHERE hub = ? AND kind = ? ORDER BY name ASC")).
		WithArgs("hub1", "room").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Kitchen"))

	rooms, err := repo.Rooms(context.Background(), "hub1")
	if err != nil {
		t.Fatalf("Rooms() error = %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Kitchen" {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM entities WHERE hub = ? AND kind = ? AND sub_type = ? ORDER BY name ASC")).
		WithArgs("hub1", "device", "Lighting").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Porch Light"))

	devices, err := repo.Devices(context.Background(), "hub1", "Lighting")
	if err != nil {
		t.Fatalf("Devices() error = %v", err)
	}
	if len(devices) != 1 || devices[0].Name != "Porch Light" {
		t.Fatalf("unexpected devices: %+v", devices)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}
