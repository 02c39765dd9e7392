// Package hooks runs user scripts after station actions.
package hooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/station-menu/internal/colors"
	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/cristianoliveira/station-menu/internal/logging"
)

// Failure modes for hooks_failure_mode.
const (
	FailureAbort  = "abort"
	FailureWarn   = "warn"
	FailureIgnore = "ignore"
)

// output receives hook script output. Swapped in tests.
var output = func() io.Writer { return os.Stderr }

type quietKey struct{}

// Quiet returns a context under which hook output, progress and warnings go to
// the log file only. Used while the popup owns the terminal.
func Quiet(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey{}, true)
}

func isQuiet(ctx context.Context) bool {
	quiet, _ := ctx.Value(quietKey{}).(bool)
	return quiet
}

// Point returns the hook point that runs after action.
func Point(action string) string {
	return "post-" + action
}

// Init creates the hooks directory.
func Init() error {
	dir := Dir()
	if err := os.MkdirAll(dir, config.FileModeDir); err != nil {
		return fmt.Errorf("hooks: create directory %s: %w", dir, err)
	}
	return nil
}

// Dir returns the configured hooks directory.
func Dir() string {
	return config.Get("hooks_dir", "")
}

func failureMode() string {
	return config.Get("hooks_failure_mode", FailureWarn)
}

// Scripts lists the executable scripts for hookPoint in name order.
func Scripts(hookPoint string) []string {
	hookDir := filepath.Join(Dir(), hookPoint)
	entries, err := os.ReadDir(hookDir)
	if err != nil {
		return nil
	}
	var scripts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(hookDir, e.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&0o111 == 0 {
			continue
		}
		scripts = append(scripts, path)
	}
	sort.Strings(scripts)
	return scripts
}

// Run executes the scripts for hookPoint with envVars (KEY=VALUE) added to the
// environment. In abort mode the first failing script stops the run and its
// error is returned; otherwise failures are reported and nil is returned.
func Run(ctx context.Context, hookPoint string, envVars ...string) error {
	if !config.GetBool("hooks_enabled", true) {
		return nil
	}
	scripts := Scripts(hookPoint)
	if len(scripts) == 0 {
		return nil
	}

	mode := failureMode()
	env := append(os.Environ(),
		"HOOK_POINT="+hookPoint,
		"HOOK_TIMESTAMP="+time.Now().Format(time.RFC3339),
		"STATION_MENU_HOOKS_FAILURE_MODE="+mode,
	)
	if exe, err := os.Executable(); err == nil {
		env = append(env, "STATION_MENU_BINARY="+exe)
	}
	for _, v := range envVars {
		if strings.Contains(v, "=") {
			env = append(env, v)
		}
	}

	quiet := isQuiet(ctx)
	if !quiet {
		colors.Debug(fmt.Sprintf("Running %s hooks (%d script(s))", hookPoint, len(scripts)))
	}
	timeout := time.Duration(config.GetInt("player_timeout", 10)) * time.Second
	for _, script := range scripts {
		if err := runScript(ctx, script, env, timeout, quiet); err != nil {
			name := filepath.Base(script)
			logging.Warn("hook failed", "hook_point", hookPoint, "script", name, "error", err.Error())
			switch mode {
			case FailureAbort:
				return fmt.Errorf("hooks: %s/%s: %w", hookPoint, name, err)
			case FailureWarn:
				if quiet {
					continue
				}
				colors.Warning(fmt.Sprintf("hook %s failed: %v", name, err))
			}
		}
	}
	return nil
}

func runScript(ctx context.Context, path string, env []string, timeout time.Duration, quiet bool) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path)
	cmd.Env = env
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	name := filepath.Base(path)
	if quiet {
		if out.Len() > 0 {
			logging.Info("hook output", "script", name, "output", out.String())
		}
		logging.Debug("hook finished", "script", name, "duration_seconds", time.Since(start).Seconds())
		return err
	}
	if out.Len() > 0 {
		_, _ = output().Write(out.Bytes())
	}
	colors.Debug(fmt.Sprintf("hook %s finished in %.2fs", name, time.Since(start).Seconds()))
	return err
}

// StationEnv builds the environment passed to hooks for a station action.
func StationEnv(action, uuid, name, url string) []string {
	return []string{
		"ACTION=" + action,
		"STATION_UUID=" + uuid,
		"STATION_NAME=" + name,
		"STATION_URL=" + url,
	}
}
