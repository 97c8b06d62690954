package main

import (
	"os"

	"github.com/asengupta/cyberquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
