package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cristianoliveira/station-menu/internal/station"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "stations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func testStation(uuid, name string) *station.Station {
	return &station.Station{
		UUID:        uuid,
		Name:        name,
		StreamURL:   "https://radio.example/" + uuid,
		Homepage:    "https://radio.example",
		Tags:        "jazz,news",
		Bitrate:     128,
		HLS:         true,
		LastCheckOK: true,
	}
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.Error(t, err)
}

func TestSchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.db")
	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.AddFavorite(context.Background(), testStation("a", "A")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.ListFavorites(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestAddAndGetFavorite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	want := testStation("uuid-1", "Jazz FM")
	require.NoError(t, s.AddFavorite(ctx, want))

	got, err := s.GetFavorite(ctx, "uuid-1")
	require.NoError(t, err)
	require.Equal(t, *want, *got)
}

func TestAddFavoriteValidates(t *testing.T) {
	s := newTestStorage(t)
	err := s.AddFavorite(context.Background(), &station.Station{UUID: "x"})
	require.ErrorIs(t, err, station.ErrMissingName)
}

func TestListFavoritesKeepsInsertionOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.AddFavorite(ctx, testStation(id, "Station "+id)))
	}
	// Re-adding updates data without moving the station.
	require.NoError(t, s.AddFavorite(ctx, testStation("c", "Renamed")))

	got, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "c", got[0].UUID)
	require.Equal(t, "Renamed", got[0].Name)
	require.Equal(t, "a", got[1].UUID)
	require.Equal(t, "b", got[2].UUID)
}

func TestGetFavoriteErrors(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.GetFavorite(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidStationID)
	_, err = s.GetFavorite(context.Background(), "missing")
	require.ErrorIs(t, err, ErrStationNotFound)
}

func TestRemoveAndRestoreFavorite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AddFavorite(ctx, testStation("a", "A")))
	require.NoError(t, s.AddFavorite(ctx, testStation("b", "B")))

	require.NoError(t, s.RemoveFavorite(ctx, "a"))
	_, err := s.GetFavorite(ctx, "a")
	require.ErrorIs(t, err, ErrStationNotFound)
	require.ErrorIs(t, s.RemoveFavorite(ctx, "a"), ErrStationNotFound, "already removed")

	got, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, s.RestoreFavorite(ctx, "a"))
	require.ErrorIs(t, s.RestoreFavorite(ctx, "a"), ErrStationNotFound, "not removed")

	got, err = s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].UUID, "restored station keeps its position")
}

func TestAddFavoriteRevivesRemoved(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AddFavorite(ctx, testStation("a", "A")))
	require.NoError(t, s.RemoveFavorite(ctx, "a"))
	require.NoError(t, s.AddFavorite(ctx, testStation("a", "A")))

	_, err := s.GetFavorite(ctx, "a")
	require.NoError(t, err)
}

func TestPurgeRemoved(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, s.AddFavorite(ctx, testStation("a", "A")))
	require.NoError(t, s.AddFavorite(ctx, testStation("b", "B")))
	require.NoError(t, s.RemoveFavorite(ctx, "a"))

	n, err := s.PurgeRemoved(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.ErrorIs(t, s.RestoreFavorite(ctx, "a"), ErrStationNotFound)
}

func TestAlarms(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	late, err := s.AddAlarm(ctx, "a", 9, 15)
	require.NoError(t, err)
	early, err := s.AddAlarm(ctx, "b", 6, 5)
	require.NoError(t, err)
	require.NotEqual(t, late.ID, early.ID)
	require.Equal(t, "06:05", early.Clock())

	got, err := s.ListAlarms(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, early.ID, got[0].ID)
	require.True(t, got[0].Enabled)
	require.False(t, got[0].CreatedAt.IsZero())

	require.NoError(t, s.DeleteAlarm(ctx, early.ID))
	require.ErrorIs(t, s.DeleteAlarm(ctx, early.ID), ErrAlarmNotFound)
}

func TestAddAlarmValidates(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.AddAlarm(ctx, "", 7, 0)
	require.ErrorIs(t, err, ErrInvalidStationID)
	for _, tc := range [][2]int{{24, 0}, {-1, 0}, {7, 60}, {7, -1}} {
		_, err := s.AddAlarm(ctx, "a", tc[0], tc[1])
		require.ErrorIs(t, err, ErrInvalidAlarmTime)
	}
}

func TestHistory(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	require.NoError(t, s.RecordPlay(ctx, "a", "internal"))
	require.NoError(t, s.RecordPlay(ctx, "b", "external"))
	require.NoError(t, s.RecordPlay(ctx, "c", "internal"))
	require.Error(t, s.RecordPlay(ctx, "a", ""))
	require.ErrorIs(t, s.RecordPlay(ctx, "", "internal"), ErrInvalidStationID)

	got, err := s.ListHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c", got[0].StationUUID)
	require.Equal(t, "b", got[1].StationUUID)
	require.Equal(t, "external", got[1].Player)
	require.Equal(t, base.Add(2*time.Minute), got[1].PlayedAt)

	all, err := s.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestConcurrentAdds(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			require.NoError(t, s.AddFavorite(ctx, testStation(id, id)))
		}(i)
	}
	wg.Wait()

	got, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 20)
}
