package scaffold

import (
	"context"
)

// Step is one named stage of the setup pipeline
type Step struct {
	Name string
	Run  func(ctx context.Context, c *Context) error
}

// steps run strictly in order; later steps see earlier mutations and
// nothing ever rolls back.
func steps() []Step {
	return []Step{
		{Name: "verify", Run: stepVerify},
		{Name: "intro", Run: stepIntro},
		{Name: "projectName", Run: stepProjectName},
		{Name: "template", Run: stepTemplate},
		{Name: "dependencies", Run: stepDependencies},
		{Name: "git", Run: stepGit},
	}
}

// Run drives the whole pipeline: the step phase builds the task queue,
// the drain phase runs it, and the closing summary ends the run. The
// returned error is ErrAbort (or wraps a task failure) when the process
// should exit 1.
func Run(ctx context.Context, c *Context) error {
	for _, step := range steps() {
		if err := step.Run(ctx, c); err != nil {
			c.Display.Banner("skel: aborted")
			return err
		}
	}

	if err := c.drain(ctx); err != nil {
		c.Display.Banner("skel: aborted")
		return err
	}

	return stepNext(ctx, c)
}

// drain runs the queued tasks in insertion order, each behind the
// spinner. A task error its handler does not absorb stops the rest.
func (c *Context) drain(ctx context.Context) error {
	for _, task := range c.Tasks {
		run := task.Run
		err := c.Display.Spinner(task.Label, func() error { return run(ctx) }, task.OnError)
		if err != nil {
			return err
		}
	}
	return nil
}
