package logging

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const logFilePrefix = "station-menu_"

// rotate keeps the newest keep station-menu_*.log files in dir and deletes
// the rest. Other files are left alone.
func rotate(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type candidate struct {
		name    string
		modTime time.Time
	}
	var logs []candidate
	for _, e := range entries {
		if e.IsDir() || !isLogFile(e.Name()) {
			continue
		}
		c := candidate{name: e.Name()}
		if info, err := e.Info(); err == nil {
			c.modTime = info.ModTime()
		}
		logs = append(logs, c)
	}
	if len(logs) <= keep {
		return nil
	}
	// newest first
	slices.SortFunc(logs, func(a, b candidate) int {
		if c := b.modTime.Compare(a.modTime); c != 0 {
			return c
		}
		return cmp.Compare(b.name, a.name)
	})
	for _, c := range logs[keep:] {
		_ = os.Remove(filepath.Join(dir, c.name))
	}
	return nil
}

func isLogFile(name string) bool {
	return strings.HasPrefix(name, logFilePrefix) && strings.HasSuffix(name, ".log")
}
