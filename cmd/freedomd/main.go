package main

import (
	"os"

	"github.com/freedomd-dev/freedomd/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
