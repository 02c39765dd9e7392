// Package player starts media players and openers and inspects the network
// before streaming.
package player

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/cristianoliveira/station-menu/internal/logging"
)

// DefaultTimeout bounds commands run to completion.
const DefaultTimeout = 10 * time.Second

// Runner executes external programs.
type Runner interface {
	// Run executes name and waits for it, returning stdout and stderr.
	Run(ctx context.Context, name string, args ...string) (string, string, error)

	// Start launches name without waiting for it to exit.
	Start(name string, args ...string) error
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	timeout time.Duration
}

// RunnerOption configures an ExecRunner.
type RunnerOption func(*ExecRunner)

// WithTimeout sets the timeout for Run.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *ExecRunner) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// NewExecRunner returns a runner with DefaultTimeout unless overridden.
func NewExecRunner(opts ...RunnerOption) *ExecRunner {
	r := &ExecRunner{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	log := logging.With("program", name, "args_count", len(args), "duration_seconds", time.Since(start).Seconds())
	if err != nil {
		log.Warn("command failed", "error", err.Error())
		return stdout.String(), stderr.String(), fmt.Errorf("player: run %s: %w", name, err)
	}
	log.Debug("command completed")
	return stdout.String(), stderr.String(), nil
}

// Start implements Runner. The child is reaped in the background.
func (r *ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		logging.Warn("command start failed", "program", name, "error", err.Error())
		return fmt.Errorf("player: start %s: %w", name, err)
	}
	logging.Debug("command started", "program", name, "pid", cmd.Process.Pid)
	go func() { _ = cmd.Wait() }()
	return nil
}
