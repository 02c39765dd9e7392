package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Alarm wakes the user up with a favorite station.
type Alarm struct {
	ID          string
	StationUUID string
	Hour        int
	Minute      int
	Enabled     bool
	CreatedAt   time.Time
}

// Clock formats the alarm time as HH:MM.
func (a Alarm) Clock() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// AddAlarm schedules stationID at hour:minute and returns the new alarm.
func (s *Storage) AddAlarm(ctx context.Context, stationID string, hour, minute int) (Alarm, error) {
	if err := validateStationID(stationID); err != nil {
		return Alarm{}, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Alarm{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidAlarmTime, hour, minute)
	}
	alarm := Alarm{
		ID:          uuid.NewString(),
		StationUUID: stationID,
		Hour:        hour,
		Minute:      minute,
		Enabled:     true,
		CreatedAt:   parseTimestamp(s.timestamp()),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO alarms (id, station_uuid, hour, minute, enabled, created_at) VALUES (?, ?, ?, ?, 1, ?)`,
		alarm.ID, alarm.StationUUID, alarm.Hour, alarm.Minute, alarm.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Alarm{}, fmt.Errorf("sqlite storage: add alarm: %w", err)
	}
	return alarm, nil
}

// ListAlarms returns alarms ordered by time of day.
func (s *Storage) ListAlarms(ctx context.Context) ([]Alarm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, station_uuid, hour, minute, enabled, created_at FROM alarms ORDER BY hour, minute, created_at`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list alarms: %w", err)
	}
	defer rows.Close()

	var out []Alarm
	for rows.Next() {
		var a Alarm
		var enabled int
		var created string
		if err := rows.Scan(&a.ID, &a.StationUUID, &a.Hour, &a.Minute, &enabled, &created); err != nil {
			return nil, fmt.Errorf("sqlite storage: list alarms: %w", err)
		}
		a.Enabled = enabled != 0
		a.CreatedAt = parseTimestamp(created)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list alarms: %w", err)
	}
	return out, nil
}

// DeleteAlarm removes an alarm by ID.
func (s *Storage) DeleteAlarm(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM alarms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite storage: delete alarm: %w", err)
	}
	return requireAffected(res, fmt.Errorf("sqlite storage: delete alarm: %w: %s", ErrAlarmNotFound, id))
}
