package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"wiser_schedule"
)

type ScheduleSQLite struct {
	db *sql.DB
}

func NewScheduleSQLite(db *sql.DB) *ScheduleSQLite { return &ScheduleSQLite{db: db} }

var _ ScheduleRepo = (*ScheduleSQLite)(nil)

const (
	insertScheduleSQL = `
		INSERT INTO schedules (hub, type, sub_type, name, assignments, days, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	updateScheduleSQL = `
		UPDATE schedules SET sub_type=?, name=?, assignments=?, days=?, updated_at=?
		WHERE hub=? AND type=? AND id=?
	`

	selectScheduleSQL = `
		SELECT id, type, sub_type, name, assignments, days
		FROM schedules WHERE hub=? AND type=? AND id=?
	`

	renameScheduleSQL = `UPDATE schedules SET name=?, updated_at=? WHERE hub=? AND type=? AND id=?`

	deleteScheduleSQL = `DELETE FROM schedules WHERE hub=? AND type=? AND id=?`

	setAssignmentsSQL = `UPDATE schedules SET assignments=?, updated_at=? WHERE hub=? AND type=? AND id=?`
)

// marshalJSONText renders a nested structure for a TEXT column.
func marshalJSONText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// List returns the overview rows for a hub, optionally filtered by type,
// ordered by name for stable display.
func (r *ScheduleSQLite) List(ctx context.Context, hub, scheduleType string) ([]wiser_schedule.ScheduleListItem, error) {
	var (
		conds = []string{"hub = ?"}
		args  = []any{hub}
	)
	if scheduleType = strings.TrimSpace(scheduleType); scheduleType != "" {
		conds = append(conds, "type = ?")
		args = append(args, scheduleType)
	}

	q := `SELECT id, type, name, assignments FROM schedules WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]wiser_schedule.ScheduleListItem, 0, 16)
	for rows.Next() {
		var (
			item  wiser_schedule.ScheduleListItem
			asStr sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Type, &item.Name, &asStr); err != nil {
			return nil, err
		}
		if asStr.Valid && asStr.String != "" {
			var as []wiser_schedule.ScheduleAssignment
			if err := json.Unmarshal([]byte(asStr.String), &as); err != nil {
				return nil, err
			}
			item.Assignments = len(as)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one schedule. Returns (nil, nil) if not found.
func (r *ScheduleSQLite) Get(ctx context.Context, hub, scheduleType string, id int) (*wiser_schedule.Schedule, error) {
	row := r.db.QueryRowContext(ctx, selectScheduleSQL, hub, scheduleType, id)

	var (
		s       wiser_schedule.Schedule
		asStr   sql.NullString
		daysStr string
	)
	if err := row.Scan(&s.ID, &s.Type, &s.SubType, &s.Name, &asStr, &daysStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if asStr.Valid && asStr.String != "" {
		if err := json.Unmarshal([]byte(asStr.String), &s.Assignments); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal([]byte(daysStr), &s.Days); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a schedule and returns its new id.
func (r *ScheduleSQLite) Create(ctx context.Context, hub string, s *wiser_schedule.Schedule) (int, error) {
	asJSON, err := marshalJSONText(s.Assignments)
	if err != nil {
		return 0, err
	}
	daysJSON, err := marshalJSONText(s.Days)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, insertScheduleSQL,
		hub, s.Type, s.SubType, s.Name, asJSON, daysJSON, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(lastID), nil
}

// Save overwrites the stored day lists, name and assignments.
func (r *ScheduleSQLite) Save(ctx context.Context, hub string, s *wiser_schedule.Schedule) error {
	asJSON, err := marshalJSONText(s.Assignments)
	if err != nil {
		return err
	}
	daysJSON, err := marshalJSONText(s.Days)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, updateScheduleSQL,
		s.SubType, s.Name, asJSON, daysJSON, time.Now().UTC(), hub, s.Type, s.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ScheduleSQLite) Rename(ctx context.Context, hub, scheduleType string, id int, name string) error {
	res, err := r.db.ExecContext(ctx, renameScheduleSQL, name, time.Now().UTC(), hub, scheduleType, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ScheduleSQLite) Delete(ctx context.Context, hub, scheduleType string, id int) error {
	res, err := r.db.ExecContext(ctx, deleteScheduleSQL, hub, scheduleType, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ScheduleSQLite) SetAssignments(ctx context.Context, hub, scheduleType string, id int, assignments []wiser_schedule.ScheduleAssignment) error {
	asJSON, err := marshalJSONText(assignments)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, setAssignmentsSQL, asJSON, time.Now().UTC(), hub, scheduleType, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ErrNotFound reports a write that matched no schedule row.
var ErrNotFound = errors.New("schedule not found")

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
