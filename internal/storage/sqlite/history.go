package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Play is one entry of the playback history.
type Play struct {
	StationUUID string
	Player      string
	PlayedAt    time.Time
}

// RecordPlay appends a playback of stationID through player to the history.
func (s *Storage) RecordPlay(ctx context.Context, stationID, player string) error {
	if err := validateStationID(stationID); err != nil {
		return err
	}
	if strings.TrimSpace(player) == "" {
		return fmt.Errorf("sqlite storage: record play: player cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (station_uuid, player, played_at) VALUES (?, ?, ?)`,
		stationID, player, s.timestamp())
	if err != nil {
		return fmt.Errorf("sqlite storage: record play: %w", err)
	}
	return nil
}

// ListHistory returns the most recent plays first. A limit <= 0 returns everything.
func (s *Storage) ListHistory(ctx context.Context, limit int) ([]Play, error) {
	query := `SELECT station_uuid, player, played_at FROM history ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list history: %w", err)
	}
	defer rows.Close()

	var out []Play
	for rows.Next() {
		var p Play
		var playedAt string
		if err := rows.Scan(&p.StationUUID, &p.Player, &playedAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: list history: %w", err)
		}
		p.PlayedAt = parseTimestamp(playedAt)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list history: %w", err)
	}
	return out, nil
}
