package actions

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/logging"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
)

// MeteredPrompt is the question asked before streaming on a metered connection.
const MeteredPrompt = "You are on a metered connection. Stream anyway?"

func (s *Service) playInternal(ctx context.Context, st *station.Station, env menu.Env) error {
	return s.play(ctx, s.deps.Internal, st, env)
}

func (s *Service) playExternal(ctx context.Context, st *station.Station, env menu.Env) error {
	if s.deps.External == nil {
		return fmt.Errorf("%w: external player", ErrUnavailable)
	}
	if !s.confirmMetered(ctx, env) {
		return ErrPlaybackDeclined
	}
	return s.play(ctx, s.deps.External, st, env)
}

func (s *Service) play(ctx context.Context, p Player, st *station.Station, env menu.Env) error {
	if p == nil {
		return fmt.Errorf("%w: player", ErrUnavailable)
	}
	if err := p.Open(st.StreamURL); err != nil {
		return fmt.Errorf("actions: play %s: %w", st.Name, err)
	}
	// A playing stream with a missing history row is better than no stream.
	if err := s.deps.Store.RecordPlay(ctx, st.UUID, p.Name()); err != nil {
		logging.Warn("record play failed", "station", st.UUID, "error", err.Error())
	}
	notify(env, fmt.Sprintf("Playing %s", st.Name), nil)
	return nil
}

// confirmMetered returns false only when the connection is metered and the
// user says no. An unknown metered state does not block playback.
func (s *Service) confirmMetered(ctx context.Context, env menu.Env) bool {
	if !s.deps.WarnOnMetered || s.deps.Meter == nil {
		return true
	}
	metered, err := s.deps.Meter.Metered(ctx)
	if err != nil {
		logging.Debug("metered check failed", "error", err.Error())
		return true
	}
	if !metered {
		return true
	}
	if c, ok := env.Anchor.(Confirmer); ok {
		return c.Confirm(ctx, MeteredPrompt)
	}
	return s.deps.Confirm != nil && s.deps.Confirm(MeteredPrompt)
}

func (s *Service) visitHomepage(_ context.Context, st *station.Station, _ menu.Env) error {
	if st.Homepage == "" {
		return ErrNoHomepage
	}
	if s.deps.Browser == nil {
		return fmt.Errorf("%w: browser", ErrUnavailable)
	}
	if err := s.deps.Browser.Open(st.Homepage); err != nil {
		return fmt.Errorf("actions: visit homepage: %w", err)
	}
	return nil
}
