package player

import (
	"context"
	"fmt"
	"strings"
)

// NMMeter asks NetworkManager whether the active connection is metered.
// Setting is the value of the metered config key: "true" and "false" skip the
// query, anything else asks nmcli.
type NMMeter struct {
	Setting string
	Runner  Runner
}

// Metered reports whether streaming may cost the user money.
func (m NMMeter) Metered(ctx context.Context) (bool, error) {
	switch strings.ToLower(m.Setting) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	runner := m.Runner
	if runner == nil {
		runner = NewExecRunner()
	}
	stdout, _, err := runner.Run(ctx, "nmcli", "-t", "-f", "GENERAL.METERED", "device", "show")
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMeterUnavailable, err)
	}
	return parseMetered(stdout), nil
}

// parseMetered reads nmcli terse output, one "GENERAL.METERED:<value>" per device.
// Values look like "yes", "no", "yes (guessed)" or "unknown".
func parseMetered(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		_, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(value)), "yes") {
			return true
		}
	}
	return false
}
