package hooks

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup points hooks_dir at a temp dir and captures hook output.
func setup(t *testing.T, env map[string]string) (string, *bytes.Buffer) {
	t.Helper()
	tmp := t.TempDir()
	hooksDir := filepath.Join(tmp, "hooks")
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("STATION_MENU_CONFIG_PATH", filepath.Join(tmp, "none.toml"))
	t.Setenv("STATION_MENU_HOOKS_DIR", hooksDir)
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()

	buf := &bytes.Buffer{}
	old := output
	output = func() io.Writer { return buf }
	t.Cleanup(func() { output = old })
	return hooksDir, buf
}

func writeScript(t *testing.T, dir, point, name, body string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, point), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, point, name), []byte("#!/bin/sh\n"+body+"\n"), mode))
}

func TestPoint(t *testing.T) {
	assert.Equal(t, "post-share", Point("share"))
}

func TestInitCreatesDirectory(t *testing.T) {
	dir, _ := setup(t, nil)
	require.NoError(t, Init())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunWithoutScripts(t *testing.T) {
	setup(t, nil)
	assert.NoError(t, Run(context.Background(), "post-share"))
}

func TestScriptsSortedAndExecutableOnly(t *testing.T) {
	dir, _ := setup(t, nil)
	writeScript(t, dir, "post-share", "20-second", "true", 0o755)
	writeScript(t, dir, "post-share", "10-first", "true", 0o755)
	writeScript(t, dir, "post-share", "30-not-exec", "true", 0o644)

	scripts := Scripts("post-share")
	require.Len(t, scripts, 2)
	assert.Equal(t, "10-first", filepath.Base(scripts[0]))
	assert.Equal(t, "20-second", filepath.Base(scripts[1]))
}

func TestRunPassesStationEnv(t *testing.T) {
	dir, out := setup(t, nil)
	writeScript(t, dir, "post-share", "echo", `echo "$HOOK_POINT $ACTION $STATION_UUID $STATION_NAME $STATION_URL"`, 0o755)

	env := StationEnv("share", "u-1", "Jazz", "https://jazz.example")
	require.NoError(t, Run(context.Background(), "post-share", env...))
	assert.Equal(t, "post-share share u-1 Jazz https://jazz.example", strings.TrimSpace(out.String()))
}

func TestRunOrder(t *testing.T) {
	dir, out := setup(t, nil)
	writeScript(t, dir, "post-share", "b", "echo b", 0o755)
	writeScript(t, dir, "post-share", "a", "echo a", 0o755)

	require.NoError(t, Run(context.Background(), "post-share"))
	assert.Equal(t, "a\nb\n", out.String())
}

func TestFailureModes(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
		ranNext bool
	}{
		{FailureAbort, true, false},
		{FailureWarn, false, true},
		{FailureIgnore, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			dir, out := setup(t, map[string]string{"STATION_MENU_HOOKS_FAILURE_MODE": tt.mode})
			writeScript(t, dir, "post-share", "1-fail", "exit 3", 0o755)
			writeScript(t, dir, "post-share", "2-next", "echo next", 0o755)

			err := Run(context.Background(), "post-share")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "1-fail")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.ranNext, strings.Contains(out.String(), "next"))
		})
	}
}

func TestRunDisabled(t *testing.T) {
	dir, out := setup(t, map[string]string{
		"STATION_MENU_HOOKS_ENABLED":      "false",
		"STATION_MENU_HOOKS_FAILURE_MODE": "abort",
	})
	writeScript(t, dir, "post-share", "fail", "echo ran; exit 1", 0o755)

	require.NoError(t, Run(context.Background(), "post-share"))
	assert.Empty(t, out.String())
}

func TestQuietRunKeepsTerminalClean(t *testing.T) {
	dir, out := setup(t, nil)
	marker := filepath.Join(t.TempDir(), "ran")
	writeScript(t, dir, "post-share", "1-fail", "echo broken; exit 2", 0o755)
	writeScript(t, dir, "post-share", "2-touch", `echo touched; touch "`+marker+`"`, 0o755)

	require.NoError(t, Run(Quiet(context.Background()), "post-share"))

	assert.Empty(t, out.String())
	_, err := os.Stat(marker)
	assert.NoError(t, err, "quiet hooks still run")
}

func TestQuietRunStillAborts(t *testing.T) {
	dir, out := setup(t, map[string]string{"STATION_MENU_HOOKS_FAILURE_MODE": "abort"})
	writeScript(t, dir, "post-share", "fail", "echo nope; exit 1", 0o755)

	err := Run(Quiet(context.Background()), "post-share")
	require.Error(t, err)
	assert.Empty(t, out.String())
}
