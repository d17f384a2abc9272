package main

import (
	"os"

	"gamiclient/cmd/gamiclient/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
