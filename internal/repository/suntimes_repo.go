package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"wiser_schedule"
)

type SunTimesSQLite struct {
	db *sql.DB
}

func NewSunTimesSQLite(db *sql.DB) *SunTimesSQLite { return &SunTimesSQLite{db: db} }

var _ SunTimesRepo = (*SunTimesSQLite)(nil)

const (
	upsertSunTimesSQL = `
		INSERT INTO sun_times (hub, sunrises, sunsets, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hub) DO UPDATE SET
			sunrises=excluded.sunrises,
			sunsets=excluded.sunsets,
			updated_at=excluded.updated_at
	`

	selectSunTimesSQL = `SELECT sunrises, sunsets FROM sun_times WHERE hub=?`

	selectHubsSQL = `SELECT hub FROM sun_times ORDER BY hub ASC`
)

// Get fetches a hub's sun times. A hub with no stored row gets the seeded
// defaults so special-time resolution always has something to work with.
func (r *SunTimesSQLite) Get(ctx context.Context, hub string) (wiser_schedule.SunTimes, error) {
	row := r.db.QueryRowContext(ctx, selectSunTimesSQL, hub)

	var sunrises, sunsets string
	if err := row.Scan(&sunrises, &sunsets); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wiser_schedule.DefaultSunTimes(), nil
		}
		return wiser_schedule.SunTimes{}, err
	}

	var st wiser_schedule.SunTimes
	if err := json.Unmarshal([]byte(sunrises), &st.Sunrises); err != nil {
		return wiser_schedule.SunTimes{}, err
	}
	if err := json.Unmarshal([]byte(sunsets), &st.Sunsets); err != nil {
		return wiser_schedule.SunTimes{}, err
	}
	return st, nil
}

// Set stores a hub's sun times, creating the hub row on first write.
func (r *SunTimesSQLite) Set(ctx context.Context, hub string, st wiser_schedule.SunTimes) error {
	sunrises, err := marshalJSONText(st.Sunrises)
	if err != nil {
		return err
	}
	sunsets, err := marshalJSONText(st.Sunsets)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertSunTimesSQL, hub, sunrises, sunsets, time.Now().UTC())
	return err
}

// Hubs enumerates every hub that has ever stored sun times.
func (r *SunTimesSQLite) Hubs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectHubsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, 4)
	for rows.Next() {
		var hub string
		if err := rows.Scan(&hub); err != nil {
			return nil, err
		}
		out = append(out, hub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
