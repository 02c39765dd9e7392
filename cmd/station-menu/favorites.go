package main

import (
	"fmt"

	"github.com/cristianoliveira/station-menu/cmd"
	"github.com/cristianoliveira/station-menu/internal/app"
	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/format"
	"github.com/spf13/cobra"
)

// NewFavoritesCmd creates the favorites command and its subcommands.
func NewFavoritesCmd(client func() (app.FavoritesClient, error)) *cobra.Command {
	if client == nil {
		panic("NewFavoritesCmd: client dependency cannot be nil")
	}
	useCase := func() (*app.FavoritesUseCase, error) {
		c, err := client()
		if err != nil {
			return nil, err
		}
		return app.NewFavoritesUseCase(c), nil
	}

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite stations",
		Long: `Manage favorite stations.

USAGE:
    station-menu favorites add --name NAME --url URL [--homepage URL] [--tags TAGS]
    station-menu favorites list [--format=table|simple|json]
    station-menu favorites remove <uuid>
    station-menu favorites restore <uuid>
    station-menu favorites purge
    station-menu favorites import <file.yaml>`,
	}

	var input app.AddFavoriteInput
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a favorite station",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			st, err := u.Add(commandContext(c.Context()), input)
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Added %s (%s)", st.Name, st.UUID))
			return nil
		},
	}
	addCmd.Flags().StringVar(&input.Name, "name", "", "Station name")
	addCmd.Flags().StringVar(&input.URL, "url", "", "Stream URL")
	addCmd.Flags().StringVar(&input.Homepage, "homepage", "", "Station homepage")
	addCmd.Flags().StringVar(&input.Tags, "tags", "", "Comma separated tags")
	addCmd.Flags().StringVar(&input.UUID, "uuid", "", "Station UUID (generated when empty)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("url")

	var formatName string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite stations",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			return u.List(commandContext(c.Context()), format.ParseFormatterType(formatName), c.OutOrStdout())
		},
	}
	listCmd.Flags().StringVar(&formatName, "format", "table", "Output format: table, simple or json")

	removeCmd := &cobra.Command{
		Use:   "remove <uuid>",
		Short: "Remove a favorite station",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			if err := u.Remove(commandContext(c.Context()), args[0]); err != nil {
				return err
			}
			colors.Success("Removed " + args[0])
			colors.Info("Undo with: station-menu favorites restore " + args[0])
			return nil
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <uuid>",
		Short: "Restore a removed favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			if err := u.Restore(commandContext(c.Context()), args[0]); err != nil {
				return err
			}
			colors.Success("Restored " + args[0])
			return nil
		},
	}

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete removed favorites for good",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			n, err := u.Purge(commandContext(c.Context()))
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Purged %d removed favorite(s)", n))
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import favorites from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			u, err := useCase()
			if err != nil {
				return err
			}
			n, err := u.Import(commandContext(c.Context()), args[0])
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Imported %d station(s)", n))
			return nil
		},
	}

	favoritesCmd.AddCommand(addCmd, listCmd, removeCmd, restoreCmd, purgeCmd, importCmd)
	return favoritesCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewFavoritesCmd(func() (app.FavoritesClient, error) { return favoritesClientFunc() }))
}
