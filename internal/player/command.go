package player

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// URLPlaceholder is replaced by the target URL in command templates.
const URLPlaceholder = "{url}"

// CommandPlayer opens URLs with a command built from a template such as
// "mpv --no-video {url}". Without a placeholder the URL is appended.
// Templates are split like shell words, so a program path with spaces can be
// quoted: "/opt/My Player/bin/play" {url}. Variables and pipes are not expanded.
type CommandPlayer struct {
	name     string
	template string
	runner   Runner
}

// NewCommandPlayer returns a player named name (used in history) for template.
func NewCommandPlayer(name, template string, runner Runner) *CommandPlayer {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &CommandPlayer{name: name, template: template, runner: runner}
}

// Name returns the player name.
func (p *CommandPlayer) Name() string {
	return p.name
}

// Open starts the command for url without waiting for it.
func (p *CommandPlayer) Open(url string) error {
	program, args, err := Expand(p.template, url)
	if err != nil {
		return err
	}
	if err := p.runner.Start(program, args...); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}

// Expand splits template into a program and its arguments with url substituted.
func Expand(template, url string) (string, []string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", nil, ErrEmptyURL
	}
	fields, err := shellwords.Parse(template)
	if err != nil {
		return "", nil, fmt.Errorf("player: parse template %q: %w", template, err)
	}
	if len(fields) == 0 {
		return "", nil, ErrEmptyCommand
	}
	if fields[0] == URLPlaceholder {
		return "", nil, fmt.Errorf("%w: %q", ErrEmptyCommand, template)
	}

	substituted := false
	args := make([]string, 0, len(fields))
	for _, f := range fields[1:] {
		if strings.Contains(f, URLPlaceholder) {
			f = strings.ReplaceAll(f, URLPlaceholder, url)
			substituted = true
		}
		args = append(args, f)
	}
	if !substituted {
		args = append(args, url)
	}
	return fields[0], args, nil
}
