package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/cristianoliveira/station-menu/internal/station"
)

// FavoritesClient defines dependencies required for favorites operations.
type FavoritesClient interface {
	AddFavorite(ctx context.Context, st *station.Station) error
	ListFavorites(ctx context.Context) ([]station.Station, error)
	RemoveFavorite(ctx context.Context, id string) error
	RestoreFavorite(ctx context.Context, id string) error
	PurgeRemoved(ctx context.Context) (int, error)
}

// AddFavoriteInput represents favorites add inputs after flag parsing.
type AddFavoriteInput struct {
	Name     string
	URL      string
	Homepage string
	Tags     string
	UUID     string
}

// FavoritesUseCase coordinates favorites behavior.
type FavoritesUseCase struct {
	client FavoritesClient
}

// NewFavoritesUseCase creates a new favorites use-case.
func NewFavoritesUseCase(client FavoritesClient) *FavoritesUseCase {
	if client == nil {
		panic("NewFavoritesUseCase: client dependency cannot be nil")
	}
	return &FavoritesUseCase{client: client}
}

// Add stores a new favorite and returns it.
func (u *FavoritesUseCase) Add(ctx context.Context, input AddFavoriteInput) (*station.Station, error) {
	st := station.New(input.Name, input.URL)
	if id := strings.TrimSpace(input.UUID); id != "" {
		st.UUID = id
	}
	st.Homepage = strings.TrimSpace(input.Homepage)
	st.Tags = strings.TrimSpace(input.Tags)
	if err := u.client.AddFavorite(ctx, st); err != nil {
		return nil, fmt.Errorf("favorites add: %w", err)
	}
	return st, nil
}

// List writes the favorites in list order.
func (u *FavoritesUseCase) List(ctx context.Context, f format.FormatterType, w io.Writer) error {
	stations, err := u.client.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("favorites list: %w", err)
	}
	if len(stations) == 0 && f != format.FormatterTypeJSON {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", colors.Blue, "No favorites found", colors.Reset)
		return nil
	}
	return format.NewFormatter(f).Format(format.StationsTable(stations), w)
}

// Remove soft-deletes a favorite.
func (u *FavoritesUseCase) Remove(ctx context.Context, id string) error {
	if err := u.client.RemoveFavorite(ctx, id); err != nil {
		return fmt.Errorf("favorites remove: %w", err)
	}
	return nil
}

// Restore brings back a removed favorite.
func (u *FavoritesUseCase) Restore(ctx context.Context, id string) error {
	if err := u.client.RestoreFavorite(ctx, id); err != nil {
		return fmt.Errorf("favorites restore: %w", err)
	}
	return nil
}

// Purge deletes removed favorites for good.
func (u *FavoritesUseCase) Purge(ctx context.Context) (int, error) {
	n, err := u.client.PurgeRemoved(ctx)
	if err != nil {
		return 0, fmt.Errorf("favorites purge: %w", err)
	}
	return n, nil
}

// Import adds every station from a YAML file and returns how many were added.
// Import stops at the first station that cannot be stored.
func (u *FavoritesUseCase) Import(ctx context.Context, path string) (int, error) {
	stations, err := station.LoadYAML(path)
	if err != nil {
		return 0, fmt.Errorf("favorites import: %w", err)
	}
	for i := range stations {
		if err := u.client.AddFavorite(ctx, &stations[i]); err != nil {
			return i, fmt.Errorf("favorites import: %s: %w", stations[i].Name, err)
		}
	}
	return len(stations), nil
}
