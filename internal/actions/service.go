// Package actions implements the station popup actions on top of storage,
// players and the desktop.
package actions

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/station-menu/internal/hooks"
	"github.com/cristianoliveira/station-menu/internal/logging"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
	"github.com/cristianoliveira/station-menu/internal/storage/sqlite"
)

// Store is the storage the actions write to.
type Store interface {
	RemoveFavorite(ctx context.Context, id string) error
	RestoreFavorite(ctx context.Context, id string) error
	AddAlarm(ctx context.Context, stationID string, hour, minute int) (sqlite.Alarm, error)
	RecordPlay(ctx context.Context, stationID, player string) error
}

// Player opens a URL in some program.
type Player interface {
	Name() string
	Open(url string) error
}

// Meter reports whether the network connection is metered.
type Meter interface {
	Metered(ctx context.Context) (bool, error)
}

// Sharer hands share text to the desktop.
type Sharer interface {
	Share(text string) error
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Confirmer is implemented by anchors that can ask the user a yes/no question
// themselves, such as the popup. It takes precedence over Deps.Confirm.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// HookFunc runs the hooks for a hook point.
type HookFunc func(ctx context.Context, hookPoint string, envVars ...string) error

// Deps are the collaborators of Service. Only Store is required; actions whose
// collaborator is missing fail with ErrUnavailable.
type Deps struct {
	Store    Store
	Internal Player
	External Player
	Browser  Player
	Meter    Meter
	Sharer   Sharer
	Confirm  ConfirmFunc
	Hooks    HookFunc

	// WarnOnMetered enables the metered network confirmation before external playback.
	WarnOnMetered bool
	// AlarmTime is the HH:MM time new alarms are set to.
	AlarmTime string
	// ApplicationsDir receives launcher .desktop files.
	ApplicationsDir string
	// Executable is the program launchers start.
	Executable string
}

// Service binds the station actions to their collaborators.
type Service struct {
	deps Deps
}

// NewService creates a new action service.
func NewService(deps Deps) *Service {
	if deps.Store == nil {
		panic("NewService: store dependency cannot be nil")
	}
	return &Service{deps: deps}
}

// Handlers returns the handler set for menu.NewCatalog.
func (s *Service) Handlers() menu.Handlers {
	return menu.Handlers{
		PlayInternal:   s.withHooks(menu.PlayInternal, s.playInternal),
		PlayExternal:   s.withHooks(menu.PlayExternal, s.playExternal),
		VisitHomepage:  s.withHooks(menu.VisitHomepage, s.visitHomepage),
		Share:          s.withHooks(menu.Share, s.share),
		SetAlarm:       s.withHooks(menu.SetAlarm, s.setAlarm),
		CreateShortcut: s.withHooks(menu.CreateShortcut, s.createShortcut),
		RemoveFavorite: s.withHooks(menu.RemoveFavorite, s.removeFavorite),
	}
}

// Catalog returns the station popup catalog backed by this service.
func (s *Service) Catalog() menu.Catalog {
	return menu.NewCatalog(s.Handlers())
}

// withHooks logs the outcome of h and runs the post-action hooks after a success.
func (s *Service) withHooks(id menu.ActionID, h menu.Handler) menu.Handler {
	return func(ctx context.Context, st *station.Station, env menu.Env) error {
		if st == nil {
			return fmt.Errorf("actions: %s: nil station", id)
		}
		log := logging.With("action", id.String(), "station", st.UUID)
		if err := h(ctx, st, env); err != nil {
			log.Warn("action failed", "error", err.Error())
			return err
		}
		log.Info("action completed")

		runHooks := s.deps.Hooks
		if runHooks == nil {
			return nil
		}
		return runHooks(ctx, hooks.Point(id.String()), hooks.StationEnv(id.String(), st.UUID, st.Name, st.StreamURL)...)
	}
}

func notify(env menu.Env, message string, undo func() error) {
	if env.Anchor != nil {
		env.Anchor.Notify(message, undo)
	}
}
