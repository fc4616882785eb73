package main

import (
	"os"

	"github.com/statledger-dev/statledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
