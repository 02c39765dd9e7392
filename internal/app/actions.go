package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
)

// FavoriteLookup finds a favorite station by UUID.
type FavoriteLookup interface {
	GetFavorite(ctx context.Context, id string) (*station.Station, error)
}

// ActionsInput represents actions command inputs after flag parsing.
type ActionsInput struct {
	StationID string
	Flags     menu.CapabilityFlags
	Format    format.FormatterType
}

// ActionsUseCase prints the actions offered for a station.
type ActionsUseCase struct {
	client  FavoriteLookup
	catalog menu.Catalog
}

// NewActionsUseCase creates a new actions use-case.
func NewActionsUseCase(client FavoriteLookup, catalog menu.Catalog) *ActionsUseCase {
	if client == nil {
		panic("NewActionsUseCase: client dependency cannot be nil")
	}
	return &ActionsUseCase{client: client, catalog: catalog}
}

// Execute resolves the catalog for the station and writes the visible actions.
// The invocation it opens is discarded, nothing is dispatched.
func (u *ActionsUseCase) Execute(ctx context.Context, input ActionsInput, w io.Writer) error {
	if _, err := u.client.GetFavorite(ctx, input.StationID); err != nil {
		return fmt.Errorf("actions: %w", err)
	}
	inv := menu.Open(u.catalog, input.Flags)
	defer inv.Discard()
	return format.NewFormatter(input.Format).Format(format.ActionsTable(inv), w)
}
