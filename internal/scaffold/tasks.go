package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skelhq/skel/internal/pm"
	"github.com/skelhq/skel/internal/runner"
	"github.com/skelhq/skel/internal/template"
	"github.com/skelhq/skel/internal/utils"
)

// copyTemplateTask downloads the resolved template into the target
// directory and tailors it to the project. Failure is fatal; a directory
// this run just created is removed best-effort so a broken download does
// not leave an empty husk behind.
func copyTemplateTask(c *Context) Task {
	return Task{
		Label: "Copying template files",
		Run: func(ctx context.Context) error {
			ref := template.ExpandRef(c.Template, c.Ref)
			createdByRun := !utils.FileExists(c.Dir) && c.Dir != "." && !strings.HasPrefix(c.Dir, "..")

			if err := template.Download(ctx, ref, c.Dir); err != nil {
				if createdByRun {
					os.RemoveAll(c.Dir)
				}
				return err
			}
			return template.Finalize(c.Dir, c.ProjectName)
		},
		OnError: func(err error) error {
			if errors.Is(err, template.ErrNotFound) {
				c.Display.Error("template", fmt.Sprintf("Template %q does not exist.", c.Template))
				return err
			}
			c.Display.Error("template", err.Error())
			for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
				c.Display.Error("cause", cause.Error())
			}
			return fmt.Errorf("unable to download %q: %w", c.Template, err)
		},
	}
}

// installTask runs the package manager's install subcommand with a
// generous ceiling and discarded output. Failure is reported with a
// manual-recovery hint but never stops the run.
func installTask(c *Context) Task {
	manager := c.PackageManager
	return Task{
		Label: "Installing dependencies with " + string(manager),
		Run: func(ctx context.Context) error {
			// yarn only needs the lockfile placeholder to adopt the
			// directory as a project root
			if lock := manager.Lockfile(); lock != "" {
				path := filepath.Join(c.Dir, lock)
				if utils.FileExists(path) {
					return nil
				}
				return os.WriteFile(path, nil, 0644)
			}

			_, err := c.Runner.Run(ctx, string(manager), manager.InstallArgs(), runner.Options{
				Dir:     c.Dir,
				Timeout: pm.InstallTimeout,
				Discard: true,
			})
			return err
		},
		OnError: func(err error) error {
			c.Display.Error("deps", "Dependencies failed to install: "+err.Error())
			c.Display.Info("deps", "You can retry later with: cd "+c.Dir+" && "+string(manager)+" install")
			return nil
		},
	}
}

// gitInitTask creates a repository with a single commit. Every failure is
// swallowed: version control is a courtesy, never worth failing the run.
func gitInitTask(c *Context) Task {
	return Task{
		Label: "Initializing git repository",
		Run: func(ctx context.Context) error {
			steps := [][]string{
				{"init"},
				{"add", "-A"},
				{"-c", "user.name=skel[bot]", "-c", "user.email=bot@skel.sh", "commit", "-m", "initial commit"},
			}
			for _, args := range steps {
				if _, err := c.Runner.Run(ctx, "git", args, runner.Options{Dir: c.Dir, Discard: true}); err != nil {
					return nil
				}
			}
			return nil
		},
	}
}
