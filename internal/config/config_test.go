package config

import (
	"os"
	"testing"

	"github.com/skelhq/skel/internal/pm"
)

func TestFromEnv(t *testing.T) {
	t.Run("detects pnpm from user agent", func(t *testing.T) {
		t.Setenv("npm_config_user_agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")
		env := FromEnv()
		if env.PackageManager != pm.Pnpm {
			t.Errorf("expected pnpm, got %s", env.PackageManager)
		}
	})

	t.Run("defaults to npm", func(t *testing.T) {
		t.Setenv("npm_config_user_agent", "")
		env := FromEnv()
		if env.PackageManager != pm.Npm {
			t.Errorf("expected npm, got %s", env.PackageManager)
		}
	})

	t.Run("reads version override", func(t *testing.T) {
		t.Setenv("SKEL_VERSION", "1.2.3")
		env := FromEnv()
		if env.VersionOverride != "1.2.3" {
			t.Errorf("expected override 1.2.3, got %q", env.VersionOverride)
		}
	})

	t.Run("NO_COLOR enabled even when empty", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		env := FromEnv()
		if !env.NoColor {
			t.Error("NO_COLOR presence alone should disable color")
		}
	})

	t.Run("NO_COLOR unset keeps color", func(t *testing.T) {
		t.Setenv("NO_COLOR", "x") // register cleanup, then drop it
		os.Unsetenv("NO_COLOR")
		env := FromEnv()
		if env.NoColor {
			t.Error("color should stay on without NO_COLOR")
		}
	})

	t.Run("CI=false is not CI", func(t *testing.T) {
		t.Setenv("CI", "false")
		env := FromEnv()
		if env.CI {
			t.Error("CI=false should not count as CI")
		}
	})

	t.Run("CI=true suppresses animation", func(t *testing.T) {
		t.Setenv("CI", "true")
		env := FromEnv()
		if !env.SkipAnimation(false) {
			t.Error("CI should suppress animation")
		}
	})
}

func TestSkipAnimationFlagWins(t *testing.T) {
	env := &Env{}
	if !env.SkipAnimation(true) {
		t.Error("explicit flag should always suppress animation")
	}
}
