package scaffold

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"

	"github.com/skelhq/skel/internal/display"
	"github.com/skelhq/skel/internal/pm"
	"github.com/skelhq/skel/internal/template"
	"github.com/skelhq/skel/internal/utils"
)

// network checks, substitutable in tests
var (
	online         = pm.Online
	templateExists = template.Exists
	latestVersion  = pm.LatestVersion
)

// stepVerify gates the run on connectivity and, when a template was named
// up front, on its remote existence. Skipped entirely under dry-run.
func stepVerify(ctx context.Context, c *Context) error {
	if c.DryRun {
		return nil
	}

	if !online(ctx, c.RegistryURL) {
		c.Display.Error("offline", "Could not reach "+c.RegistryURL+". Check your connection and try again.")
		return ErrAbort
	}

	// advisory only; a registry hiccup here is not worth failing the run
	if version, err := latestVersion(ctx, c.RegistryURL, "skel", c.VersionOverride); err == nil && version != "" {
		c.Display.Info("ver", "skel v"+version)
	}

	if c.Template != "" {
		ref := template.ExpandRef(c.Template, c.Ref)
		if !templateExists(ctx, ref) {
			c.Display.Error("template", fmt.Sprintf("Template %q could not be found.", c.Template))
			return ErrAbort
		}
	}
	return nil
}

// stepIntro prints the welcome banner and seasonal greeting
func stepIntro(ctx context.Context, c *Context) error {
	c.Display.Banner("skel")
	c.Display.Say(display.Greeting(time.Now(), c.Fancy))
	return nil
}

// stepProjectName resolves the target directory and derives the package
// name from it. The directory must be empty (or not yet exist).
func stepProjectName(ctx context.Context, c *Context) error {
	if c.Dir == "" || !utils.DirIsEmpty(c.Dir) {
		switch {
		case c.Yes:
			c.Dir = generateDirName()
		case c.No:
			c.Display.Error("dir", "No empty target directory and prompts are disabled.")
			return ErrAbort
		default:
			dir, err := c.Prompt.Input("Where should we create your new project?", "./skel-project", validateDir)
			if err != nil {
				c.Display.Error("dir", err.Error())
				return ErrAbort
			}
			c.Dir = dir
		}
	}

	if c.Dir == "" {
		c.Display.Error("dir", "Could not resolve a project directory.")
		return ErrAbort
	}

	// resolve relative targets like "." so the name comes from the real
	// directory, not the path as typed
	named := c.Dir
	if abs, err := filepath.Abs(named); err == nil {
		named = abs
	}
	c.ProjectName = utils.Slugify(filepath.Base(named))
	if c.ProjectName == "" {
		c.ProjectName = "skel-project"
	}
	c.Display.Info("dir", "Scaffolding project in "+c.Dir)
	return nil
}

// validateDir rejects non-empty targets and names with control characters
func validateDir(dir string) error {
	if dir == "" {
		return errors.New("directory is required")
	}
	if !utils.Printable(dir) {
		return errors.New("directory contains unprintable characters")
	}
	if !utils.DirIsEmpty(dir) {
		return fmt.Errorf("%q is not empty", dir)
	}
	return nil
}

// generateDirName picks an unused ./skel-project-<n> directory
func generateDirName() string {
	for {
		dir := fmt.Sprintf("./skel-project-%d", rand.Intn(1000))
		if utils.DirIsEmpty(dir) {
			return dir
		}
	}
}

// stepTemplate resolves which template to use and enqueues the copy task
func stepTemplate(ctx context.Context, c *Context) error {
	if c.Template == "" {
		if !c.Interactive() {
			c.Template = template.Default
		} else {
			choice, err := c.Prompt.Select("Which template would you like to use?", template.Builtin)
			if err != nil {
				c.Display.Error("template", err.Error())
				return ErrAbort
			}
			c.Template = choice
		}
	}

	if c.Template == "" {
		c.Display.Error("template", "Could not resolve a template.")
		return ErrAbort
	}

	c.Display.Info("tmpl", "Using "+c.Template+" template")
	if !c.DryRun {
		c.Enqueue(copyTemplateTask(c))
	}
	return nil
}

// stepDependencies resolves install intent and enqueues the install task
func stepDependencies(ctx context.Context, c *Context) error {
	install, err := c.resolveIntent(c.Install, "Install dependencies?", true)
	if err != nil {
		c.Display.Error("deps", err.Error())
		return ErrAbort
	}
	c.Install = &install

	if install && !c.DryRun {
		c.Enqueue(installTask(c))
	}
	return nil
}

// stepGit resolves git-init intent and enqueues the init task. A target
// that is already inside a repository is left alone.
func stepGit(ctx context.Context, c *Context) error {
	if _, err := git.PlainOpen(c.Dir); err == nil {
		c.Display.Info("git", "Git repository already exists, skipping init.")
		return nil
	}

	initGit, err := c.resolveIntent(c.Git, "Initialize a git repository?", true)
	if err != nil {
		c.Display.Error("git", err.Error())
		return ErrAbort
	}
	c.Git = &initGit

	if initGit && !c.DryRun {
		c.Enqueue(gitInitTask(c))
	}
	return nil
}

// stepNext prints the closing summary and farewell
func stepNext(ctx context.Context, c *Context) error {
	dirHint := c.Dir
	if dirHint == "." {
		dirHint = ""
	}
	c.Display.NextSteps(dirHint, c.PackageManager.DevCommand())
	c.Display.Say(display.Farewell())
	return nil
}
