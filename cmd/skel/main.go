package main

import (
	"os"

	"github.com/skelhq/skel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
