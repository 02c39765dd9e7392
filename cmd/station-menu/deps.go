package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/station-menu/internal/actions"
	"github.com/cristianoliveira/station-menu/internal/app"
	"github.com/cristianoliveira/station-menu/internal/capability"
	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/cristianoliveira/station-menu/internal/hooks"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/player"
	"github.com/cristianoliveira/station-menu/internal/storage/sqlite"
)

var (
	storeOnce   sync.Once
	sharedStore *sqlite.Storage
	storeErr    error
)

// openStore opens the database at db_path once per process.
func openStore() (*sqlite.Storage, error) {
	storeOnce.Do(func() {
		sharedStore, storeErr = sqlite.NewSQLiteStorage(config.Get("db_path", ""))
	})
	return sharedStore, storeErr
}

func closeStore() {
	if sharedStore != nil {
		_ = sharedStore.Close()
	}
}

// stationClient is what the station commands need from storage.
type stationClient interface {
	app.FavoriteLookup
	actions.Store
}

// stationDeps bundles what menu, actions and run need.
type stationDeps struct {
	Lookup  app.FavoriteLookup
	Catalog menu.Catalog
	Flags   menu.CapabilityFlags
}

// stationDepsFunc builds the dependencies of the station commands. Swapped in tests.
var stationDepsFunc = func() (stationDeps, error) {
	store, err := openStore()
	if err != nil {
		return stationDeps{}, err
	}
	return newStationDeps(store, capability.Current()), nil
}

func newStationDeps(store stationClient, flags menu.CapabilityFlags) stationDeps {
	return stationDeps{
		Lookup:  store,
		Catalog: newActionService(store).Catalog(),
		Flags:   flags,
	}
}

// newActionService wires the action handlers to the configured programs.
func newActionService(store actions.Store) *actions.Service {
	timeout := time.Duration(config.GetInt("player_timeout", 10)) * time.Second
	runner := player.NewExecRunner(player.WithTimeout(timeout))
	exe, _ := os.Executable()
	var sharer actions.Sharer
	if cb := player.NewClipboard(); cb.Available() {
		sharer = cb
	}
	return actions.NewService(actions.Deps{
		Store:           store,
		Internal:        player.NewCommandPlayer("internal", config.Get("internal_player", ""), runner),
		External:        player.NewCommandPlayer("external", config.Get("external_player", ""), runner),
		Browser:         player.NewCommandPlayer("browser", config.Get("browser", ""), runner),
		Meter:           player.NMMeter{Setting: config.Get("metered", "auto"), Runner: runner},
		Sharer:          sharer,
		Confirm:         confirmStdin,
		Hooks:           hooks.Run,
		WarnOnMetered:   config.GetBool("warn_on_metered", true),
		AlarmTime:       config.Get("alarm_time", actions.DefaultAlarmTime),
		ApplicationsDir: config.Get("applications_dir", ""),
		Executable:      exe,
	})
}

// favoritesClientFunc returns the favorites store. Swapped in tests.
var favoritesClientFunc = func() (app.FavoritesClient, error) {
	return openStore()
}

// alarmsClientFunc returns the alarms store. Swapped in tests.
var alarmsClientFunc = func() (app.AlarmsClient, error) {
	return openStore()
}

var confirmInput io.Reader = os.Stdin

// confirmStdin asks a yes/no question on the terminal. Anything but y/yes is no.
func confirmStdin(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s (y/N): ", prompt)
	answer, err := bufio.NewReader(confirmInput).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
