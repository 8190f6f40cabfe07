// Package runner is a thin shim over os/exec used for the package manager
// and git invocations. It captures both output streams to completion and
// reports a structured result; retry policy is left to the caller.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrTimeout is reported when a command fails to exit before its deadline.
var ErrTimeout = errors.New("command timed out")

// Options control how a single command is run
type Options struct {
	Dir     string
	Timeout time.Duration
	Discard bool // drop command output instead of capturing it
}

// Result holds the outcome of a completed (or failed) command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts external commands. The interface exists so pipeline tests
// can record invocations without spawning real processes.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (*Result, error)
}

// Exec is the real Runner backed by os/exec
type Exec struct{}

// New returns a process-backed Runner
func New() *Exec {
	return &Exec{}
}

// Run spawns name with args and waits for it to finish. A zero exit returns
// the trimmed output text; a non-zero exit fails with the captured stderr; a
// command that outlives opts.Timeout fails with ErrTimeout. Spawn-level
// failures (binary not found, etc.) report a synthetic exit code of 1 along
// with whatever partial output was captured.
func (e *Exec) Run(ctx context.Context, name string, args []string, opts Options) (*Result, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	if opts.Discard {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	result := &Result{
		Stdout: trimTrailing(stdout.String()),
		Stderr: trimTrailing(stderr.String()),
	}

	if ctx.Err() == context.DeadlineExceeded {
		result.ExitCode = 1
		return result, fmt.Errorf("%s: %w after %s", name, ErrTimeout, opts.Timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		detail := result.Stderr
		if detail == "" {
			detail = result.Stdout
		}
		return result, fmt.Errorf("%s exited with code %d: %s", name, result.ExitCode, detail)
	}

	if err != nil {
		// Spawn failure: the process never produced an exit code.
		result.ExitCode = 1
		return result, fmt.Errorf("failed to run %s: %w", name, err)
	}

	result.ExitCode = 0
	return result, nil
}

func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
