// Package scaffold implements the setup pipeline: an ordered sequence of
// steps that resolve user intent into a task queue, then drain it.
package scaffold

import (
	"context"
	"errors"

	"github.com/skelhq/skel/internal/display"
	"github.com/skelhq/skel/internal/pm"
	"github.com/skelhq/skel/internal/runner"
)

// ErrAbort signals a failure that was already reported to the user.
// Callers translate it into exit code 1 without printing anything more.
var ErrAbort = errors.New("scaffold aborted")

// Task is one deferred unit of side-effecting work. Steps enqueue tasks
// instead of doing slow work inline; the drain phase runs them in insertion
// order. OnError may absorb a failure by returning nil; a non-nil return
// stops the remaining tasks.
type Task struct {
	Label   string
	Run     func(ctx context.Context) error
	OnError func(err error) error
}

// Prompter abstracts the interactive questions so pipeline tests can
// script answers. The production implementation is survey-backed.
type Prompter interface {
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// Context is the single mutable record threaded through every step.
// Created once per invocation, never persisted.
type Context struct {
	// Target directory as given on the command line ("" means unresolved)
	// and the registry-valid package name derived from it.
	Dir         string
	ProjectName string

	Template string
	Ref      string

	PackageManager  pm.Manager
	RegistryURL     string
	VersionOverride string

	// Tri-state intent: nil means "ask interactively"
	Install *bool
	Git     *bool

	Yes    bool
	No     bool
	DryRun bool
	Fancy  bool

	// Append-only during the step phase, drained exactly once afterwards
	Tasks []Task

	Display *display.Display
	Prompt  Prompter
	Runner  runner.Runner
}

// Enqueue appends a deferred task for the drain phase
func (c *Context) Enqueue(task Task) {
	c.Tasks = append(c.Tasks, task)
}

// Interactive reports whether prompts are allowed
func (c *Context) Interactive() bool {
	return !c.Yes && !c.No
}

// resolveIntent collapses a tri-state flag: explicit flag first, then the
// non-interactive default, then a prompt.
func (c *Context) resolveIntent(flag *bool, question string, promptDefault bool) (bool, error) {
	if flag != nil {
		return *flag, nil
	}
	if c.Yes {
		return true, nil
	}
	if c.No {
		return false, nil
	}
	return c.Prompt.Confirm(question, promptDefault)
}
