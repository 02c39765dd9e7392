/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/spf13/cobra"
)

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"menu",
	"actions",
	"run",
	"favorites",
	"alarms",
	"history",
	"help",
	"version",
}

// PrintHelp writes the root help text to w.
func PrintHelp(root *cobra.Command, w io.Writer) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %s%-24s%s %s%s%s", colors.Cyan, found.Use, colors.Reset, colors.Green, found.Short, colors.Reset))
	}

	versionStr := root.Version
	if versionStr == "" {
		versionStr = "0.0.0"
	}
	headerColor := colors.Blue
	reset := colors.Reset

	fmt.Fprintf(w, `%sstation-menu v%s%s

%s%s%s

%sUSAGE:%s
    station-menu [COMMAND] [OPTIONS]

%sCOMMANDS:%s
%s

%sOPTIONS:%s
    -h, --help      Show help message
        --debug     Print debug output
    -q, --quiet     Only print warnings and errors
`, headerColor, versionStr, reset, colors.Cyan, root.Short, reset, headerColor, reset, headerColor, reset, strings.Join(cmdLines, "\n"), headerColor, reset)
}

// NewHelpCmd creates the help command.
func NewHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [COMMAND]",
		Short: "Show this help message",
		Long:  `Show this help message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				PrintHelp(cmd.Root(), cmd.OutOrStdout())
				return nil
			}
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil || target == cmd.Root() {
				PrintHelp(cmd.Root(), cmd.OutOrStdout())
				return nil
			}
			return target.Help()
		},
	}
}

func init() {
	RootCmd.SetHelpCommand(NewHelpCmd())
	RootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c == c.Root() {
			PrintHelp(c, c.OutOrStdout())
			return
		}
		fmt.Fprintln(c.OutOrStdout(), c.UsageString())
		if c.Long != "" {
			fmt.Fprintln(c.OutOrStdout(), c.Long)
		}
	})
}
