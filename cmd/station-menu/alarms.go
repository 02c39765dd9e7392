package main

import (
	"github.com/cristianoliveira/station-menu/cmd"
	"github.com/cristianoliveira/station-menu/internal/app"
	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/spf13/cobra"
)

// NewAlarmsCmd creates the alarms command and its subcommands.
func NewAlarmsCmd(client func() (app.AlarmsClient, error)) *cobra.Command {
	if client == nil {
		panic("NewAlarmsCmd: client dependency cannot be nil")
	}
	alarmsCmd := &cobra.Command{
		Use:   "alarms",
		Short: "Manage station alarms",
		Long: `Manage station alarms created with the set-alarm action.

USAGE:
    station-menu alarms list [--format=table|simple|json]
    station-menu alarms delete <id>`,
	}

	var formatName string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List alarms",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cl, err := client()
			if err != nil {
				return err
			}
			return app.NewAlarmsUseCase(cl).List(commandContext(c.Context()), format.ParseFormatterType(formatName), c.OutOrStdout())
		},
	}
	listCmd.Flags().StringVar(&formatName, "format", "table", "Output format: table, simple or json")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cl, err := client()
			if err != nil {
				return err
			}
			if err := app.NewAlarmsUseCase(cl).Delete(commandContext(c.Context()), args[0]); err != nil {
				return err
			}
			colors.Success("Deleted alarm " + args[0])
			return nil
		},
	}

	alarmsCmd.AddCommand(listCmd, deleteCmd)
	return alarmsCmd
}

// NewHistoryCmd creates the history command.
func NewHistoryCmd(client func() (app.AlarmsClient, error)) *cobra.Command {
	if client == nil {
		panic("NewHistoryCmd: client dependency cannot be nil")
	}
	var (
		limit      int
		formatName string
	)
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recently played stations",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cl, err := client()
			if err != nil {
				return err
			}
			return app.NewAlarmsUseCase(cl).History(commandContext(c.Context()), limit, format.ParseFormatterType(formatName), c.OutOrStdout())
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	c.Flags().StringVar(&formatName, "format", "table", "Output format: table, simple or json")
	return c
}

func init() {
	client := func() (app.AlarmsClient, error) { return alarmsClientFunc() }
	cmd.RootCmd.AddCommand(NewAlarmsCmd(client), NewHistoryCmd(client))
}
