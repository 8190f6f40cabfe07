package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skelhq/skel/internal/config"
	"github.com/skelhq/skel/internal/display"
	"github.com/skelhq/skel/internal/pm"
	"github.com/skelhq/skel/internal/runner"
	"github.com/skelhq/skel/internal/scaffold"
)

var version = "0.3.0"

var (
	flagTemplate      string
	flagRef           string
	flagYes           bool
	flagNo            bool
	flagSkipAnimation bool
	flagDryRun        bool
	flagFancy         bool
)

var rootCmd = &cobra.Command{
	Use:   "skel [dir]",
	Short: "Scaffold a new project from a starter template",
	Long: `Skel downloads a starter template into a directory, renames the
package after it, and optionally installs dependencies and creates the
first git commit.

Get started:
  skel my-app                          Pick a template interactively
  skel my-app --template tspkg --yes   Zero prompts, all defaults
  skel --dry-run --template tspkg      Decide everything, touch nothing`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		return run(cmd, dir)
	},
}

// Execute runs the root command. A non-nil return means exit code 1; the
// failure has already been shown to the user.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, dir string) error {
	env := config.FromEnv()
	procs := runner.New()

	disp := display.New(display.Options{
		NoColor:       env.NoColor,
		Fancy:         flagFancy,
		SkipAnimation: env.SkipAnimation(flagSkipAnimation),
	})

	c := &scaffold.Context{
		Dir:             dir,
		Template:        flagTemplate,
		Ref:             flagRef,
		PackageManager:  env.PackageManager,
		RegistryURL:     pm.RegistryURL(cmd.Context(), procs),
		VersionOverride: env.VersionOverride,
		Install:         triState(cmd, "install", "no-install"),
		Git:             triState(cmd, "git", "no-git"),
		Yes:             flagYes,
		No:              flagNo,
		DryRun:          flagDryRun,
		Fancy:           flagFancy,
		Display:         disp,
		Prompt:          scaffold.SurveyPrompter{},
		Runner:          procs,
	}

	return scaffold.Run(cmd.Context(), c)
}

// triState reads a positive/negative flag pair into user intent: nil when
// neither was given, so the pipeline knows to ask.
func triState(cmd *cobra.Command, yes, no string) *bool {
	value := true
	if cmd.Flags().Changed(no) {
		value = false
		return &value
	}
	if cmd.Flags().Changed(yes) {
		return &value
	}
	return nil
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&flagTemplate, "template", "", "template to use (bare name or owner/repo)")
	flags.StringVar(&flagRef, "ref", "latest", "template version or branch")
	flags.BoolVarP(&flagYes, "yes", "y", false, "skip prompts, accepting all defaults")
	flags.BoolVarP(&flagNo, "no", "n", false, "skip prompts, declining everything optional")
	// intent pairs are read through Flags().Changed in triState, so no
	// destination variables are bound
	flags.Bool("install", false, "install dependencies")
	flags.Bool("no-install", false, "do not install dependencies")
	flags.Bool("git", false, "initialize a git repository")
	flags.Bool("no-git", false, "do not initialize a git repository")
	flags.BoolVarP(&flagSkipAnimation, "skip-animation", "s", false, "print messages without animation")
	flags.BoolVar(&flagDryRun, "dry-run", false, "walk through every decision without touching disk or network")
	flags.BoolVar(&flagFancy, "fancy", false, "full-color output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("skel version %s\n", version))
}
