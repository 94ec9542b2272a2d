package main

import (
	"os"

	"github.com/msto63/pwoli/cmd/pwoli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
