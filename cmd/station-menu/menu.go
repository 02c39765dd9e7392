package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/station-menu/cmd"
	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/errors"
	"github.com/cristianoliveira/station-menu/internal/hooks"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
	"github.com/cristianoliveira/station-menu/internal/tui"
	"github.com/spf13/cobra"
)

// runPopupFunc shows the popup. Swapped in tests.
var runPopupFunc = func(ctx context.Context, inv *menu.Invocation, st *station.Station) (tui.Outcome, error) {
	return tui.Run(ctx, inv, st)
}

// NewMenuCmd creates the menu command.
func NewMenuCmd(deps func() (stationDeps, error)) *cobra.Command {
	if deps == nil {
		panic("NewMenuCmd: deps dependency cannot be nil")
	}
	return &cobra.Command{
		Use:   "menu <uuid>",
		Short: "Open the action popup for a favorite",
		Long: `Open the action popup for a favorite station.

The popup lists the actions available for the station given your player
preference and platform. Enter runs the highlighted action, esc closes the
popup without doing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			ctx := commandContext(c.Context())
			st, err := d.Lookup.GetFavorite(ctx, args[0])
			if err != nil {
				return fmt.Errorf("menu: %w", err)
			}
			outcome, err := runPopupFunc(hooks.Quiet(ctx), menu.Open(d.Catalog, d.Flags), st)
			if err != nil {
				return err
			}
			reportOutcome(outcome)
			if outcome.Err != nil {
				return fmt.Errorf("menu: %s: %w", outcome.Selection, outcome.Err)
			}
			return nil
		},
	}
}

// reportOutcome repeats the popup's last message on the console once the
// popup has been closed.
func reportOutcome(outcome tui.Outcome) {
	if outcome.Discarded || len(outcome.Messages) == 0 || outcome.Err != nil {
		return
	}
	last := outcome.Messages[len(outcome.Messages)-1]
	switch last.Type {
	case errors.MessageTypeWarning:
		colors.Warning(last.Text)
	case errors.MessageTypeSuccess:
		colors.Success(last.Text)
	default:
		colors.Info(last.Text)
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewMenuCmd(stationDepsFunc))
}
