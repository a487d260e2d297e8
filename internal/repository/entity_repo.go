package repository

import (
	"context"
	"database/sql"
	"strings"

	"wiser_schedule"
)

type EntitySQLite struct {
	db *sql.DB
}

func NewEntitySQLite(db *sql.DB) *EntitySQLite { return &EntitySQLite{db: db} }

var _ EntityRepo = (*EntitySQLite)(nil)

const (
	entityKindRoom   = "room"
	entityKindDevice = "device"
)

// Rooms lists a hub's rooms, the assignment targets for heating schedules.
func (r *EntitySQLite) Rooms(ctx context.Context, hub string) ([]wiser_schedule.Entity, error) {
	return r.list(ctx, hub, entityKindRoom, "")
}

// Devices lists a hub's devices, optionally narrowed to a sub type.
func (r *EntitySQLite) Devices(ctx context.Context, hub, subType string) ([]wiser_schedule.Entity, error) {
	return r.list(ctx, hub, entityKindDevice, subType)
}

func (r *EntitySQLite) list(ctx context.Context, hub, kind, subType string) ([]wiser_schedule.Entity, error) {
	conds := []string{"hub = ?", "kind = ?"}
	args := []any{hub, kind}
	if subType = strings.TrimSpace(subType); subType != "" {
		conds = append(conds, "sub_type = ?")
		args = append(args, subType)
	}

	q := `SELECT id, name FROM entities WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]wiser_schedule.Entity, 0, 16)
	for rows.Next() {
		var e wiser_schedule.Entity
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
