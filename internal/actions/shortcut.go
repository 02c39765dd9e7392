package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/station-menu/internal/config"
	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
)

const shortcutFilePrefix = "station-menu-"

// ShortcutPath returns where the launcher for st is written.
func ShortcutPath(dir string, st *station.Station) string {
	return filepath.Join(dir, shortcutFilePrefix+st.ShortcutName()+".desktop")
}

func (s *Service) createShortcut(_ context.Context, st *station.Station, env menu.Env) error {
	dir := s.deps.ApplicationsDir
	if dir == "" {
		return fmt.Errorf("%w: applications directory", ErrUnavailable)
	}
	if err := os.MkdirAll(dir, config.FileModeDir); err != nil {
		return fmt.Errorf("actions: create shortcut: %w", err)
	}
	path := ShortcutPath(dir, st)
	if err := os.WriteFile(path, []byte(DesktopEntry(s.executable(), st)), config.FileModeFile); err != nil {
		return fmt.Errorf("actions: create shortcut: %w", err)
	}
	if env.PinListener != nil {
		env.PinListener.ShortcutPinned(st.Name, path)
	}
	notify(env, fmt.Sprintf("Shortcut created: %s", path), nil)
	return nil
}

func (s *Service) executable() string {
	if s.deps.Executable != "" {
		return s.deps.Executable
	}
	return "station-menu"
}

// DesktopEntry renders a freedesktop launcher that plays st.
func DesktopEntry(executable string, st *station.Station) string {
	icon := st.Favicon
	if icon == "" {
		icon = "audio-x-generic"
	}
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", desktopValue(st.Name))
	fmt.Fprintf(&b, "Comment=Play %s\n", desktopValue(st.Name))
	fmt.Fprintf(&b, "Exec=%s run %s %s\n", execArg(executable), execArg(st.UUID), menu.PlayInternal)
	fmt.Fprintf(&b, "Icon=%s\n", desktopValue(icon))
	b.WriteString("Terminal=false\n")
	b.WriteString("Categories=AudioVideo;Audio;Player;\n")
	return b.String()
}

// desktopValue keeps a value on one line.
func desktopValue(v string) string {
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(strings.TrimSpace(v))
}

// execArg quotes an Exec argument when it contains reserved characters.
func execArg(v string) string {
	if !strings.ContainsAny(v, " \t\"'\\$`") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", "$", `\$`)
	return `"` + r.Replace(v) + `"`
}
