package main

import (
	"os"

	"sevanear/cmd/sevanear/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
