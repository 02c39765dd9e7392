package main

import (
	"fmt"

	"github.com/cristianoliveira/station-menu/cmd"
	"github.com/cristianoliveira/station-menu/internal/app"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd(deps func() (stationDeps, error)) *cobra.Command {
	if deps == nil {
		panic("NewRunCmd: deps dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "run <uuid> <action>",
		Short: "Run one action on a favorite",
		Long: `Run one action on a favorite station without opening the popup.

Actions that are not offered for the station (see "station-menu actions")
are rejected.

ACTIONS:
    play-internal, play-external, visit-homepage, share, set-alarm,
    create-shortcut, remove-favorite`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			anchor := app.ConsoleAnchor{
				UndoHint: fmt.Sprintf("Undo with: station-menu favorites restore %s", args[0]),
			}
			res, err := app.NewRunUseCase(d.Lookup, d.Catalog).Execute(commandContext(c.Context()), app.RunInput{
				StationID: args[0],
				Action:    args[1],
				Flags:     d.Flags,
				Env:       menu.Env{Anchor: anchor, PinListener: anchor},
			})
			if err != nil {
				return err
			}
			if res == menu.Unhandled {
				return fmt.Errorf("run: %s is not available for this station", args[1])
			}
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewRunCmd(stationDepsFunc))
}
