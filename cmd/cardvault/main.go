package main

import (
	"os"

	"github.com/cardvault-dev/cardvault/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
