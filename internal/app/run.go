package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/logging"
	"github.com/cristianoliveira/station-menu/internal/menu"
)

// RunInput represents run command inputs after argument parsing.
type RunInput struct {
	StationID string
	Action    string
	Flags     menu.CapabilityFlags
	Env       menu.Env
}

// RunUseCase dispatches one action on a station through a fresh invocation.
type RunUseCase struct {
	client  FavoriteLookup
	catalog menu.Catalog
}

// NewRunUseCase creates a new run use-case.
func NewRunUseCase(client FavoriteLookup, catalog menu.Catalog) *RunUseCase {
	if client == nil {
		panic("NewRunUseCase: client dependency cannot be nil")
	}
	return &RunUseCase{client: client, catalog: catalog}
}

// Execute opens an invocation for the station and dispatches the named action.
// Unknown and hidden action names come back as menu.Unhandled with a nil error.
func (u *RunUseCase) Execute(ctx context.Context, input RunInput) (menu.DispatchResult, error) {
	if strings.TrimSpace(input.Action) == "" {
		return menu.Unhandled, fmt.Errorf("run: action name cannot be empty")
	}
	st, err := u.client.GetFavorite(ctx, input.StationID)
	if err != nil {
		return menu.Unhandled, fmt.Errorf("run: %w", err)
	}

	inv := menu.Open(u.catalog, input.Flags)
	selection := menu.ParseActionID(input.Action)
	res, err := inv.Dispatch(ctx, selection, st, input.Env)
	logging.Info("dispatch", "station", st.UUID, "action", input.Action, "result", res.String())
	return res, err
}
