// Package pm models the small fixed set of JavaScript package managers the
// scaffolder can hand a project off to.
package pm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skelhq/skel/internal/runner"
)

// DefaultRegistry is used whenever the package manager cannot report a
// usable registry URL of its own.
const DefaultRegistry = "https://registry.npmjs.org"

// InstallTimeout is the ceiling for a dependency install. Generous on
// purpose: cold caches on slow links routinely take minutes.
const InstallTimeout = 10 * time.Minute

// Manager identifies one of the supported package managers
type Manager string

const (
	Npm  Manager = "npm"
	Yarn Manager = "yarn"
	Pnpm Manager = "pnpm"
	Bun  Manager = "bun"
)

// Detect infers the package manager from an npm_config_user_agent style
// string ("pnpm/9.1.0 npm/? node/v20.11.0 linux x64"). Unknown or empty
// agents fall back to npm.
func Detect(userAgent string) Manager {
	fields := strings.Fields(userAgent)
	if len(fields) == 0 {
		return Npm
	}
	name, _, _ := strings.Cut(fields[0], "/")
	// yarn publishes itself under its package name
	if name == "yarnpkg" {
		name = "yarn"
	}
	switch Manager(name) {
	case Npm, Yarn, Pnpm, Bun:
		return Manager(name)
	}
	return Npm
}

// InstallArgs returns the subcommand used to install dependencies
func (m Manager) InstallArgs() []string {
	return []string{"install"}
}

// Lockfile returns the lockfile name for managers that need a placeholder
// before they will treat the directory as a project root, or "" when no
// placeholder is needed.
func (m Manager) Lockfile() string {
	if m == Yarn {
		return "yarn.lock"
	}
	return ""
}

// DevCommand returns the command a user runs to start the dev server
func (m Manager) DevCommand() string {
	if m == Npm {
		return "npm run dev"
	}
	return string(m) + " dev"
}

// RegistryURL asks npm for its configured registry, falling back to the
// public default when npm is missing or reports something that is not a URL.
// Computed once during entry resolution and threaded through the pipeline.
func RegistryURL(ctx context.Context, run runner.Runner) string {
	result, err := run.Run(ctx, "npm", []string{"config", "get", "registry"}, runner.Options{Timeout: 10 * time.Second})
	if err != nil {
		return DefaultRegistry
	}
	url := strings.TrimSuffix(strings.TrimSpace(result.Stdout), "/")
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return DefaultRegistry
	}
	return url
}

// LatestVersion looks up the latest published version of pkg on the
// registry. The override (from the environment) wins when set, and is also
// the fallback when the registry cannot be reached.
func LatestVersion(ctx context.Context, registryURL, pkg, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, registryURL+"/"+pkg+"/latest", nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned %s for %s", resp.Status, pkg)
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return "", fmt.Errorf("failed to parse registry response: %w", err)
	}
	return manifest.Version, nil
}

// Online reports whether the registry answers at all. Used as the
// connectivity gate before any template work starts.
func Online(ctx context.Context, registryURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, registryURL, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
