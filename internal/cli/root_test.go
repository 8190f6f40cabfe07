package cli

import (
	"testing"
)

// triState collapses a positive/negative flag pair into user intent.
// Changed state on rootCmd accumulates, so the cases run in one sequence:
// untouched, positive set, negative set, then both set.
func TestTriState(t *testing.T) {
	if got := triState(rootCmd, "install", "no-install"); got != nil {
		t.Fatalf("expected nil before any flag is given, got %v", *got)
	}

	if err := rootCmd.ParseFlags([]string{"--git"}); err != nil {
		t.Fatal(err)
	}
	got := triState(rootCmd, "git", "no-git")
	if got == nil || !*got {
		t.Error("expected --git to resolve true")
	}

	if err := rootCmd.ParseFlags([]string{"--no-install"}); err != nil {
		t.Fatal(err)
	}
	got = triState(rootCmd, "install", "no-install")
	if got == nil || *got {
		t.Error("expected --no-install to resolve false")
	}

	if err := rootCmd.ParseFlags([]string{"--install"}); err != nil {
		t.Fatal(err)
	}
	got = triState(rootCmd, "install", "no-install")
	if got == nil || *got {
		t.Error("expected the negative flag to win when both are given")
	}
}
