package main

import (
	"os"

	"mnemo/cmd/mnemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
