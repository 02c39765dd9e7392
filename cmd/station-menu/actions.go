package main

import (
	"github.com/cristianoliveira/station-menu/cmd"
	"github.com/cristianoliveira/station-menu/internal/app"
	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/spf13/cobra"
)

// NewActionsCmd creates the actions command.
func NewActionsCmd(deps func() (stationDeps, error)) *cobra.Command {
	if deps == nil {
		panic("NewActionsCmd: deps dependency cannot be nil")
	}
	var formatName string
	c := &cobra.Command{
		Use:   "actions <uuid>",
		Short: "List the actions offered for a favorite",
		Long: `List the actions offered for a favorite station, in popup order.

OPTIONS:
    --format=table|simple|json   Output format (default table)`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := deps()
			if err != nil {
				return err
			}
			return app.NewActionsUseCase(d.Lookup, d.Catalog).Execute(commandContext(c.Context()), app.ActionsInput{
				StationID: args[0],
				Flags:     d.Flags,
				Format:    format.ParseFormatterType(formatName),
			}, c.OutOrStdout())
		},
	}
	c.Flags().StringVar(&formatName, "format", "table", "Output format: table, simple or json")
	return c
}

func init() {
	cmd.RootCmd.AddCommand(NewActionsCmd(stationDepsFunc))
}
