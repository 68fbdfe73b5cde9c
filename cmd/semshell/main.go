package main

import (
	"os"

	"github.com/msto63/semshell/cmd/semshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
