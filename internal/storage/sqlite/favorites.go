package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/station"
)

const favoriteColumns = `station_uuid, name, url, homepage, favicon, country, countrycode, state,
	tags, language, codec, bitrate, hls, lastcheckok`

// AddFavorite stores a station at the end of the favorites list. Adding a station
// that already exists updates its data and keeps its position; adding a removed
// station restores it.
func (s *Storage) AddFavorite(ctx context.Context, st *station.Station) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("sqlite storage: add favorite: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: add favorite: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) + 1 FROM favorites`).Scan(&next); err != nil {
		return fmt.Errorf("sqlite storage: add favorite: next position: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO favorites (`+favoriteColumns+`, position, removed_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?)
		ON CONFLICT(station_uuid) DO UPDATE SET
			name = excluded.name,
			url = excluded.url,
			homepage = excluded.homepage,
			favicon = excluded.favicon,
			country = excluded.country,
			countrycode = excluded.countrycode,
			state = excluded.state,
			tags = excluded.tags,
			language = excluded.language,
			codec = excluded.codec,
			bitrate = excluded.bitrate,
			hls = excluded.hls,
			lastcheckok = excluded.lastcheckok,
			removed_at = '',
			updated_at = excluded.updated_at`,
		st.UUID, st.Name, st.StreamURL, st.Homepage, st.Favicon, st.Country, st.CountryCode, st.State,
		st.Tags, st.Language, st.Codec, st.Bitrate, boolToInt(st.HLS), boolToInt(st.LastCheckOK),
		next, s.timestamp())
	if err != nil {
		return fmt.Errorf("sqlite storage: add favorite: %w", err)
	}
	return tx.Commit()
}

// GetFavorite returns a favorite that has not been removed.
func (s *Storage) GetFavorite(ctx context.Context, id string) (*station.Station, error) {
	if err := validateStationID(id); err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE station_uuid = ? AND removed_at = ''`, id)
	st, err := scanStation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sqlite storage: get favorite: %w: %s", ErrStationNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: get favorite: %w", err)
	}
	return st, nil
}

// ListFavorites returns favorites in list order, excluding removed ones.
func (s *Storage) ListFavorites(ctx context.Context) ([]station.Station, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE removed_at = '' ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list favorites: %w", err)
	}
	defer rows.Close()

	var out []station.Station
	for rows.Next() {
		st, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: list favorites: %w", err)
		}
		out = append(out, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list favorites: %w", err)
	}
	return out, nil
}

// RemoveFavorite marks a favorite as removed. The row is kept so RestoreFavorite
// can undo the removal until PurgeRemoved runs.
func (s *Storage) RemoveFavorite(ctx context.Context, id string) error {
	if err := validateStationID(id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE favorites SET removed_at = ?, updated_at = ? WHERE station_uuid = ? AND removed_at = ''`,
		s.timestamp(), s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: remove favorite: %w", err)
	}
	return requireAffected(res, fmt.Errorf("sqlite storage: remove favorite: %w: %s", ErrStationNotFound, id))
}

// RestoreFavorite undoes RemoveFavorite. The station keeps its old position.
func (s *Storage) RestoreFavorite(ctx context.Context, id string) error {
	if err := validateStationID(id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE favorites SET removed_at = '', updated_at = ? WHERE station_uuid = ? AND removed_at != ''`,
		s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: restore favorite: %w", err)
	}
	return requireAffected(res, fmt.Errorf("sqlite storage: restore favorite: %w: %s", ErrStationNotFound, id))
}

// PurgeRemoved deletes removed favorites for good and returns how many were deleted.
func (s *Storage) PurgeRemoved(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE removed_at != ''`)
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: purge removed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: purge removed: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStation(row rowScanner) (*station.Station, error) {
	var st station.Station
	var hls, lastCheckOK int
	err := row.Scan(&st.UUID, &st.Name, &st.StreamURL, &st.Homepage, &st.Favicon, &st.Country,
		&st.CountryCode, &st.State, &st.Tags, &st.Language, &st.Codec, &st.Bitrate, &hls, &lastCheckOK)
	if err != nil {
		return nil, err
	}
	st.HLS = hls != 0
	st.LastCheckOK = lastCheckOK != 0
	return &st, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
