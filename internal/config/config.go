// Package config resolves the process environment into the values the
// pipeline needs, once, at startup.
package config

import (
	"os"
	"runtime"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/skelhq/skel/internal/pm"
)

// Env holds everything read from the process environment
type Env struct {
	PackageManager  pm.Manager
	VersionOverride string
	CI              bool
	NoColor         bool
}

// FromEnv reads the environment. The npm user agent tells us which
// package manager launched the scaffolder; SKEL_VERSION overrides the
// version consulted during registry lookups.
func FromEnv() *Env {
	v := viper.New()
	v.BindEnv("user_agent", "npm_config_user_agent")
	v.BindEnv("version", "SKEL_VERSION")
	v.BindEnv("ci", "CI")

	// the NO_COLOR convention keys on presence, even with an empty value
	_, noColor := os.LookupEnv("NO_COLOR")

	return &Env{
		PackageManager:  pm.Detect(v.GetString("user_agent")),
		VersionOverride: v.GetString("version"),
		CI:              v.GetString("ci") != "" && v.GetString("ci") != "false",
		NoColor:         noColor,
	}
}

// SkipAnimation decides whether animated output is suppressed: the flag,
// CI, Windows consoles, and non-terminal stdout all turn it off.
func (e *Env) SkipAnimation(flag bool) bool {
	if flag || e.CI || runtime.GOOS == "windows" {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
