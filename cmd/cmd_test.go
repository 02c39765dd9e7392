package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpListsCommandsInOrder(t *testing.T) {
	root := &cobra.Command{Use: "station-menu", Short: "Contextual actions.", Version: "1.2.3"}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "menu <uuid>", Short: "Open the action popup"},
		&cobra.Command{Use: "hidden-extra", Short: "Not listed"},
	)

	var buf bytes.Buffer
	PrintHelp(root, &buf)
	out := buf.String()

	assert.Contains(t, out, "station-menu v1.2.3")
	assert.Contains(t, out, "Contextual actions.")
	assert.Contains(t, out, "menu <uuid>")
	assert.NotContains(t, out, "hidden-extra")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("menu <uuid>")), bytes.Index(buf.Bytes(), []byte("version")), "menu comes before version")
}

func TestPrintHelpDefaultVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintHelp(&cobra.Command{Use: "station-menu"}, &buf)
	assert.Contains(t, buf.String(), "station-menu v0.0.0")
}

func TestRootCommandSetup(t *testing.T) {
	assert.Equal(t, "station-menu", RootCmd.Use)
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, RootCmd.PersistentFlags().Lookup("quiet"))
	assert.True(t, RootCmd.SilenceUsage)
}
