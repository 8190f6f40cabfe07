// Package template resolves, fetches, and finalizes starter templates.
// Built-in templates live under the skelhq GitHub org; identifiers that
// already look like owner/repo paths are treated as third-party and used
// verbatim.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/storage/memory"
	"golang.org/x/sync/errgroup"

	"github.com/skelhq/skel/internal/utils"
)

// Default is the template used when none was chosen interactively
const Default = "base"

// Builtin lists the curated templates offered in the prompt
var Builtin = []string{"base", "tspkg", "webapp"}

// builtinOrg hosts the curated template repositories
const builtinOrg = "skelhq"

// ErrNotFound reports a template reference that does not exist remotely
var ErrNotFound = errors.New("template does not exist")

// boilerplate names pruned from a freshly downloaded template
var boilerplate = []string{
	"CHANGELOG.md",
	".changeset",
	filepath.Join(".github", "FUNDING.yml"),
}

// ExpandRef computes the full template reference. Bare names resolve to
// the builtin org; identifiers containing a path separator are already
// qualified and pass through unchanged. A "latest" ref omits the version
// suffix so the default fetch stays on the repository head.
func ExpandRef(name, ref string) string {
	if strings.ContainsRune(name, '/') {
		return name
	}
	expanded := builtinOrg + "/" + name
	if ref != "" && ref != "latest" {
		expanded += "#" + ref
	}
	return expanded
}

// splitRef separates "owner/repo#rev" into clone URL and revision
func splitRef(ref string) (url, rev string) {
	path, rev, _ := strings.Cut(ref, "#")
	return "https://github.com/" + path + ".git", rev
}

// Exists checks whether the template reference resolves to a real
// repository, and for pinned refs whether the rev is actually advertised,
// so a bad --ref fails verification instead of the copy task.
func Exists(ctx context.Context, ref string) bool {
	url, rev := splitRef(ref)
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return false
	}
	return revListed(refs, rev)
}

// revListed reports whether rev names an advertised branch or tag. An
// empty rev means the repository head, which always exists.
func revListed(refs []*plumbing.Reference, rev string) bool {
	if rev == "" {
		return true
	}
	for _, r := range refs {
		if r.Name().Short() == rev {
			return true
		}
	}
	return false
}

// Download fetches the template into dir, overwriting anything already
// there. The clone lands in an in-memory worktree first so the target
// directory never sees git metadata or a partial checkout.
func Download(ctx context.Context, ref, dir string) error {
	url, rev := splitRef(ref)

	worktree, err := clone(ctx, url, rev)
	if err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("unable to download template: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to download template: %w", err)
	}

	err = util.Walk(worktree, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		src, err := worktree.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return err
		}
		defer dst.Close()
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		return fmt.Errorf("unable to download template: %w", err)
	}
	return nil
}

func clone(ctx context.Context, url, rev string) (billy.Filesystem, error) {
	worktree := memfs.New()
	opts := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}
	if rev != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(rev)
	}

	_, err := git.CloneContext(ctx, memory.NewStorage(), worktree, opts)
	if err != nil && rev != "" {
		// Not a branch; the ref may name a tag.
		retry := memfs.New()
		opts.ReferenceName = plumbing.NewTagReferenceName(rev)
		if _, tagErr := git.CloneContext(ctx, memory.NewStorage(), retry, opts); tagErr == nil {
			return retry, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return worktree, nil
}

// isNotFound classifies transport errors that mean the repository (or its
// requested ref) does not exist. GitHub answers auth-required for missing
// private-looking paths, so that counts too.
func isNotFound(err error) bool {
	if errors.Is(err, transport.ErrRepositoryNotFound) ||
		errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, plumbing.ErrReferenceNotFound) {
		return true
	}
	var refSpecErr git.NoMatchingRefSpecError
	return errors.As(err, &refSpecErr)
}

// Finalize tailors a downloaded template to the new project: boilerplate
// files are pruned while package.json is rewritten. The two touch disjoint
// files, so they run concurrently.
func Finalize(dir, projectName string) error {
	var group errgroup.Group
	group.Go(func() error {
		return removeBoilerplate(dir)
	})
	group.Go(func() error {
		return RewriteManifest(filepath.Join(dir, "package.json"), projectName)
	})
	return group.Wait()
}

func removeBoilerplate(dir string) error {
	for _, name := range boilerplate {
		path := filepath.Join(dir, name)
		if !utils.FileExists(path) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}
