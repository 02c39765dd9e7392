package actions

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
)

// DefaultAlarmTime is used when no alarm time was configured.
const DefaultAlarmTime = "07:00"

func (s *Service) share(_ context.Context, st *station.Station, env menu.Env) error {
	if s.deps.Sharer == nil {
		return fmt.Errorf("%w: sharer", ErrUnavailable)
	}
	if err := s.deps.Sharer.Share(st.ShareText()); err != nil {
		return fmt.Errorf("actions: share: %w", err)
	}
	notify(env, fmt.Sprintf("Shared %s", st.Name), nil)
	return nil
}

func (s *Service) setAlarm(ctx context.Context, st *station.Station, env menu.Env) error {
	clock := s.deps.AlarmTime
	if clock == "" {
		clock = DefaultAlarmTime
	}
	hour, minute, err := config.ParseClock(clock)
	if err != nil {
		return fmt.Errorf("actions: alarm time %q: %w", clock, err)
	}
	alarm, err := s.deps.Store.AddAlarm(ctx, st.UUID, hour, minute)
	if err != nil {
		return fmt.Errorf("actions: set alarm: %w", err)
	}
	notify(env, fmt.Sprintf("Alarm set for %s with %s", alarm.Clock(), st.Name), nil)
	return nil
}

func (s *Service) removeFavorite(ctx context.Context, st *station.Station, env menu.Env) error {
	if env.Anchor == nil {
		return ErrNoAnchor
	}
	if err := s.deps.Store.RemoveFavorite(ctx, st.UUID); err != nil {
		return fmt.Errorf("actions: remove favorite: %w", err)
	}
	id := st.UUID
	// The undo outlives the dispatch, so it must not inherit its cancellation.
	undoCtx := context.WithoutCancel(ctx)
	env.Anchor.Notify(fmt.Sprintf("Removed %s from favorites", st.Name), func() error {
		return s.deps.Store.RestoreFavorite(undoCtx, id)
	})
	return nil
}
